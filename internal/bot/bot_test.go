package bot

import (
	"card-rewards/internal/display"
	"card-rewards/internal/domain"
	"card-rewards/internal/metrics"
	"card-rewards/internal/resilience"
	"card-rewards/internal/rewards"
	"card-rewards/internal/service"
	"card-rewards/internal/storage"
	"card-rewards/internal/storage/mocks"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeCategories отдаёт одну категорию; остальные методы не нужны боту.
type fakeCategories struct {
	storage.CategoryStorage
	categories []domain.Category
	err        error
}

func (f *fakeCategories) ListCategories(context.Context) ([]domain.Category, error) {
	return f.categories, f.err
}

func (f *fakeCategories) FindCategoryByName(_ context.Context, name string) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.categories {
		if strings.EqualFold(f.categories[i].Name, name) {
			return &f.categories[i], nil
		}
	}
	return nil, domain.NotFound("category", name)
}

type fakeSender struct {
	sent []tgbotapi.MessageConfig
}

func (s *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		s.sent = append(s.sent, msg)
	}
	return tgbotapi.Message{}, nil
}

var groceries = domain.Category{
	ID:   1,
	Name: "Groceries",
	SubCategories: []domain.SubCategory{
		{ID: 11, CategoryID: 1, Name: "Supermarkets"},
	},
}

type botFixture struct {
	users   *mocks.MockUserStorage
	catalog *mocks.MockCatalogRepository
	cards   *mocks.MockUserCardStorage
	rules   *mocks.MockRuleRepository
	usage   *mocks.MockCapUsageStorage
	bot     *Bot
}

func newBotFixture(t *testing.T) *botFixture {
	ctrl := gomock.NewController(t)
	f := &botFixture{
		users:   mocks.NewMockUserStorage(ctrl),
		catalog: mocks.NewMockCatalogRepository(ctrl),
		cards:   mocks.NewMockUserCardStorage(ctrl),
		rules:   mocks.NewMockRuleRepository(ctrl),
		usage:   mocks.NewMockCapUsageStorage(ctrl),
	}

	format := display.NewFormatter("$")
	ranker := rewards.NewRanker(f.rules, f.usage, nil)
	svc := Services{
		Auth:      service.NewAuthService(f.users, nil),
		Ranking:   service.NewRankingService(f.catalog, f.cards, f.users, ranker, format, metrics.NewMetrics()),
		UserCards: service.NewUserCardService(f.catalog, f.cards),
		Catalog: service.NewCatalogService(service.CatalogDeps{
			Categories: &fakeCategories{categories: []domain.Category{groceries}},
			Catalog:    f.catalog,
			RuleReader: f.rules,
		}),
	}
	f.bot = New(svc, format, resilience.Config{MaxRetries: 2, InitialBackoff: time.Millisecond}, nil)
	return f
}

func (f *botFixture) expectUser() {
	f.users.EXPECT().EnsureTelegramUser(gomock.Any(), int64(555)).
		Return(&domain.User{ID: 7, TelegramID: ptr(int64(555)), Role: domain.RoleUser}, nil)
}

func (f *botFixture) expectKnownUser() {
	f.users.EXPECT().GetUser(gomock.Any(), int64(7)).Return(&domain.User{ID: 7, Role: domain.RoleUser}, nil)
}

func ptr[T any](v T) *T {
	return &v
}

func TestBot_Help(t *testing.T) {
	f := newBotFixture(t)
	reply := f.bot.HandleText(context.Background(), 555, "/start")
	assert.Contains(t, reply, "/best")
}

func TestBot_Best(t *testing.T) {
	f := newBotFixture(t)
	f.expectUser()
	f.expectKnownUser()

	plain := domain.CreditCard{ID: 1, Name: "Plain", Bank: domain.Bank{ID: 1, Name: "Alpha"}, RewardType: domain.RewardCashback}
	f.catalog.EXPECT().GetCategory(gomock.Any(), int64(1)).Return(&groceries, nil)
	f.cards.EXPECT().ListUserCards(gomock.Any(), int64(7)).Return([]domain.UserCreditCard{
		{ID: 100, UserID: 7, Card: plain, Last4: "1234", ExpiryMonth: 12, ExpiryYear: 2030},
	}, nil)
	f.rules.EXPECT().GetRulesForCards(gomock.Any(), []int64{1}).Return(map[int64][]domain.RewardRule{
		1: {{
			ID: 1, CardID: 1, CategoryID: 1,
			TransactionType: domain.TxBoth,
			RewardType:      domain.RewardCashback,
			RewardValue:     decimal.NewFromInt(5),
		}},
	}, nil)

	reply := f.bot.HandleText(context.Background(), 555, "/best 100 groceries/supermarkets online")
	assert.Contains(t, reply, "Plain")
	assert.Contains(t, reply, "$5.00")
	assert.Contains(t, reply, "online")
}

func TestBot_Best_UnknownSubCategory(t *testing.T) {
	f := newBotFixture(t)
	f.expectUser()

	reply := f.bot.HandleText(context.Background(), 555, "/best 100 Groceries/Bakeries")
	assert.Contains(t, reply, "нет подкатегории")
}

func TestBot_Best_UnknownCategory(t *testing.T) {
	f := newBotFixture(t)
	f.expectUser()

	reply := f.bot.HandleText(context.Background(), 555, "/best 100 Travel")
	assert.Contains(t, reply, "Не найдено")
}

func TestBot_Best_NoCards(t *testing.T) {
	f := newBotFixture(t)
	f.expectUser()
	f.expectKnownUser()
	f.catalog.EXPECT().GetCategory(gomock.Any(), int64(1)).Return(&groceries, nil)
	f.cards.EXPECT().ListUserCards(gomock.Any(), int64(7)).Return([]domain.UserCreditCard{}, nil)

	reply := f.bot.HandleText(context.Background(), 555, "/best 100 Groceries")
	assert.Contains(t, reply, "нет карт")
}

func TestBot_BadAmount(t *testing.T) {
	f := newBotFixture(t)
	f.expectUser()

	reply := f.bot.HandleText(context.Background(), 555, "/best -5 Groceries")
	assert.Contains(t, reply, "amount")
}

func TestBot_RetriesTransientErrors(t *testing.T) {
	f := newBotFixture(t)
	gomock.InOrder(
		f.users.EXPECT().EnsureTelegramUser(gomock.Any(), int64(555)).
			Return(nil, &domain.TransientError{Op: "ensure user", Err: errors.New("conn reset")}),
		f.users.EXPECT().EnsureTelegramUser(gomock.Any(), int64(555)).
			Return(&domain.User{ID: 7, Role: domain.RoleUser}, nil),
	)
	f.cards.EXPECT().ListUserCards(gomock.Any(), int64(7)).Return(nil, nil)

	reply := f.bot.HandleText(context.Background(), 555, "/cards")
	assert.Contains(t, reply, "нет карт")
}

func TestBot_TransientExhausted(t *testing.T) {
	f := newBotFixture(t)
	f.users.EXPECT().EnsureTelegramUser(gomock.Any(), int64(555)).
		Return(nil, &domain.TransientError{Op: "ensure user", Err: errors.New("conn reset")}).
		Times(3)

	reply := f.bot.HandleText(context.Background(), 555, "/cards")
	assert.Contains(t, reply, "временно недоступен")
}

func TestBot_Cards(t *testing.T) {
	f := newBotFixture(t)
	f.expectUser()
	f.cards.EXPECT().ListUserCards(gomock.Any(), int64(7)).Return([]domain.UserCreditCard{
		{ID: 12, Card: domain.CreditCard{ID: 3, Name: "Sky_Miles", Bank: domain.Bank{Name: "Beta"}}, Last4: "4242", ExpiryMonth: 9, ExpiryYear: 2027},
	}, nil)

	reply := f.bot.HandleText(context.Background(), 555, "/cards")
	assert.Contains(t, reply, `Sky\_Miles`)
	assert.Contains(t, reply, "4242")
	assert.Contains(t, reply, "09/27")
}

func TestBot_AddCard(t *testing.T) {
	f := newBotFixture(t)
	f.expectUser()

	card := &domain.CreditCard{ID: 3, Name: "Sky", Bank: domain.Bank{Name: "Beta"}}
	f.catalog.EXPECT().GetCard(gomock.Any(), int64(3)).Return(card, nil)
	year := time.Now().Year() + 2
	f.cards.EXPECT().AddUserCard(gomock.Any(), int64(7), int64(3), "4242", 9, year).
		Return(&domain.UserCreditCard{ID: 12, Card: *card, Last4: "4242", ExpiryMonth: 9, ExpiryYear: year}, nil)

	reply := f.bot.HandleText(context.Background(), 555, fmt.Sprintf("/addcard 3 4242 09/%d", year))
	assert.Contains(t, reply, "Добавлена")
}

func TestBot_AddCard_BadLast4(t *testing.T) {
	f := newBotFixture(t)
	f.expectUser()

	reply := f.bot.HandleText(context.Background(), 555, "/addcard 3 42a2 09/40")
	assert.Contains(t, reply, "last4")
}

func TestBot_RemoveCard(t *testing.T) {
	f := newBotFixture(t)
	f.expectUser()
	f.cards.EXPECT().RemoveUserCard(gomock.Any(), int64(7), int64(12)).Return(nil)

	reply := f.bot.HandleText(context.Background(), 555, "/removecard 12")
	assert.Contains(t, reply, "удалена")
}

func TestBot_Categories(t *testing.T) {
	f := newBotFixture(t)

	reply := f.bot.HandleText(context.Background(), 555, "/categories")
	assert.Contains(t, reply, "Groceries: Supermarkets")
}

func TestBot_UnknownCommand(t *testing.T) {
	f := newBotFixture(t)
	f.expectUser()

	reply := f.bot.HandleText(context.Background(), 555, "/dance")
	assert.Contains(t, reply, "/help")
}

func TestBot_HandleUpdate(t *testing.T) {
	f := newBotFixture(t)
	sender := &fakeSender{}

	f.bot.HandleUpdate(context.Background(), sender, tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: "/help",
			From: &tgbotapi.User{ID: 555},
			Chat: &tgbotapi.Chat{ID: 42},
		},
	})

	require.Len(t, sender.sent, 1)
	assert.Equal(t, int64(42), sender.sent[0].ChatID)
	assert.Equal(t, tgbotapi.ModeMarkdown, sender.sent[0].ParseMode)

	// без сообщения отвечать некому
	f.bot.HandleUpdate(context.Background(), sender, tgbotapi.Update{})
	assert.Len(t, sender.sent, 1)
}
