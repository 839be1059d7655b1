// Package bot: Telegram-интерфейс к тем же сервисам, что и HTTP API.
package bot

import (
	"card-rewards/internal/display"
	"card-rewards/internal/domain"
	"card-rewards/internal/resilience"
	"card-rewards/internal/service"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const helpText = "💳 *Какой картой платить*\n\n" +
	"Команды:\n" +
	"`/best 1250 Продукты/Супермаркеты online` — лучшая карта для покупки\n" +
	"`/cards` — мои карты\n" +
	"`/categories` — категории и подкатегории\n" +
	"`/addcard 3 4242 09/27` — добавить карту (id из каталога, последние 4 цифры, срок)\n" +
	"`/removecard 12` — удалить карту из кошелька"

// Sender: часть tgbotapi.BotAPI, которая нужна для ответа.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Services struct {
	Auth      *service.AuthService
	Ranking   *service.RankingService
	UserCards *service.UserCardService
	Catalog   *service.CatalogService
}

type Bot struct {
	svc    Services
	format *display.Formatter
	retry  resilience.Config
	logger *slog.Logger
}

func New(svc Services, format *display.Formatter, retry resilience.Config, logger *slog.Logger) *Bot {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bot{svc: svc, format: format, retry: retry, logger: logger}
}

// HandleUpdate отвечает на одно сообщение. Прочие типы обновлений игнорируются.
func (b *Bot) HandleUpdate(ctx context.Context, api Sender, update tgbotapi.Update) {
	if update.Message == nil || update.Message.From == nil || update.Message.Chat == nil {
		return
	}

	chatID := update.Message.Chat.ID
	reply := b.HandleText(ctx, update.Message.From.ID, update.Message.Text)

	msg := tgbotapi.NewMessage(chatID, reply)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := api.Send(msg); err != nil {
		b.logger.Error("send reply failed", "chat_id", chatID, "error", err)
	}
}

// HandleText выполняет команду и возвращает текст ответа (Markdown).
func (b *Bot) HandleText(ctx context.Context, telegramID int64, raw string) string {
	text := strings.TrimSpace(fixEncoding(raw))
	cmd, args := splitCommand(text)
	b.logger.Info("bot command", "telegram_id", telegramID, "command", cmd)

	switch cmd {
	case "/start", "/help":
		return helpText
	case "/categories":
		return b.replyOrError(b.categories(ctx))
	}

	var userID int64
	err := b.withRetry(ctx, func() error {
		user, err := b.svc.Auth.TelegramUser(ctx, telegramID)
		if err != nil {
			return err
		}
		userID = user.ID
		return nil
	})
	if err != nil {
		return b.errorText(err)
	}

	switch cmd {
	case "/cards":
		return b.replyOrError(b.cards(ctx, userID))
	case "/addcard":
		return b.replyOrError(b.addCard(ctx, userID, args))
	case "/removecard":
		return b.replyOrError(b.removeCard(ctx, userID, args))
	case "/best":
		return b.replyOrError(b.best(ctx, userID, args))
	}
	return "Неизвестная команда. Напиши /help"
}

func (b *Bot) categories(ctx context.Context) (string, error) {
	var categories []domain.Category
	err := b.withRetry(ctx, func() (err error) {
		categories, err = b.svc.Catalog.ListCategories(ctx)
		return err
	})
	if err != nil {
		return "", err
	}
	if len(categories) == 0 {
		return "📭 Категорий пока нет", nil
	}

	lines := []string{"📂 *Категории*"}
	for _, cat := range categories {
		line := "- " + escape(cat.Name)
		if len(cat.SubCategories) > 0 {
			subs := make([]string, len(cat.SubCategories))
			for i, sc := range cat.SubCategories {
				subs[i] = escape(sc.Name)
			}
			line += ": " + strings.Join(subs, ", ")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func (b *Bot) cards(ctx context.Context, userID int64) (string, error) {
	var cards []domain.UserCreditCard
	err := b.withRetry(ctx, func() (err error) {
		cards, err = b.svc.UserCards.List(ctx, userID)
		return err
	})
	if err != nil {
		return "", err
	}
	if len(cards) == 0 {
		return "📭 У тебя пока нет карт. Добавь: `/addcard <id> <4 цифры> <ММ/ГГ>`", nil
	}

	lines := []string{"💳 *Мои карты*"}
	for _, uc := range cards {
		lines = append(lines, fmt.Sprintf("%d. %s (%s) •••• %s, до %02d/%02d",
			uc.ID, escape(uc.Card.Name), escape(uc.Card.Bank.Name), uc.Last4, uc.ExpiryMonth, uc.ExpiryYear%100))
	}
	return strings.Join(lines, "\n"), nil
}

func (b *Bot) addCard(ctx context.Context, userID int64, args string) (string, error) {
	parsed, err := parseAddCard(args)
	if err != nil {
		return "❌ " + err.Error(), nil
	}
	uc, err := b.svc.UserCards.Add(ctx, service.AddCardRequest{
		UserID:      userID,
		CardID:      parsed.CardID,
		Last4:       parsed.Last4,
		ExpiryMonth: parsed.ExpiryMonth,
		ExpiryYear:  parsed.ExpiryYear,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("✅ Добавлена %s •••• %s", escape(uc.Card.Name), uc.Last4), nil
}

func (b *Bot) removeCard(ctx context.Context, userID int64, args string) (string, error) {
	id, err := parseID(args)
	if err != nil {
		return "❌ " + err.Error(), nil
	}
	if err := b.svc.UserCards.Remove(ctx, userID, id); err != nil {
		return "", err
	}
	return "✅ Карта удалена", nil
}

func (b *Bot) best(ctx context.Context, userID int64, args string) (string, error) {
	q, err := parseBest(args)
	if err != nil {
		return "❌ " + err.Error(), nil
	}

	var category *domain.Category
	err = b.withRetry(ctx, func() (err error) {
		category, err = b.svc.Catalog.FindCategory(ctx, q.Category)
		return err
	})
	if err != nil {
		return "", err
	}

	req := service.RankRequest{
		UserID:          userID,
		Amount:          q.Amount,
		CategoryID:      category.ID,
		TransactionType: q.TransactionType,
	}
	if q.SubCategory != "" {
		sub, ok := findSubCategory(category, q.SubCategory)
		if !ok {
			return fmt.Sprintf("❌ В категории *%s* нет подкатегории *%s*", escape(category.Name), escape(q.SubCategory)), nil
		}
		req.SubCategoryID = &sub.ID
	}

	// Ранжирование ничего не пишет, поэтому повтор безопасен
	var rec *service.Recommendation
	err = b.withRetry(ctx, func() (err error) {
		rec, err = b.svc.Ranking.Rank(ctx, req)
		return err
	})
	if err != nil {
		return "", err
	}
	return b.formatRecommendation(category, q, rec), nil
}

func (b *Bot) formatRecommendation(category *domain.Category, q bestQuery, rec *service.Recommendation) string {
	if rec.Recommended == nil {
		return "📭 У тебя пока нет карт. Добавь: `/addcard <id> <4 цифры> <ММ/ГГ>`"
	}

	where := escape(category.Name)
	if q.SubCategory != "" {
		where += "/" + escape(q.SubCategory)
	}

	top := rec.Recommended
	lines := []string{
		fmt.Sprintf("🏆 *%s* (%s)", escape(top.CardName), escape(top.BankName)),
		fmt.Sprintf("%s за %s, %s, %s", top.Display, b.format.Money(q.Amount), where, strings.ToLower(q.TransactionType.String())),
	}
	if top.RewardExact.IsZero() {
		lines = append(lines, "⚠️ Ни одна карта ничего не даёт за эту покупку")
	}

	if len(rec.Results) > 1 {
		lines = append(lines, "", "Все карты:")
		for i, r := range rec.Results {
			line := fmt.Sprintf("%d. %s: %s", i+1, escape(r.CardName), r.Display)
			if note := flagNote(r.Flag); note != "" {
				line += " (" + note + ")"
			}
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func findSubCategory(cat *domain.Category, name string) (domain.SubCategory, bool) {
	for _, sc := range cat.SubCategories {
		if strings.EqualFold(sc.Name, name) {
			return sc, true
		}
	}
	return domain.SubCategory{}, false
}

func flagNote(f domain.Flag) string {
	switch f {
	case domain.FlagCapped:
		return "лимит исчерпан"
	case domain.FlagBelowMinimum:
		return "меньше минимальной суммы"
	case domain.FlagNoRule:
		return "нет правила"
	}
	return ""
}

func (b *Bot) withRetry(ctx context.Context, fn func() error) error {
	return resilience.RetryWithBackoff(ctx, b.retry, service.IsTransient, fn)
}

func (b *Bot) replyOrError(reply string, err error) string {
	if err != nil {
		return b.errorText(err)
	}
	return reply
}

func (b *Bot) errorText(err error) string {
	var (
		verr      *domain.ValidationError
		notFound  *domain.NotFoundError
		conflict  *domain.ConflictError
		integrity *domain.DataIntegrityError
	)
	switch {
	case errors.As(err, &verr):
		return fmt.Sprintf("❌ %s: %s", escape(verr.Field), escape(verr.Message))
	case errors.As(err, &notFound):
		return fmt.Sprintf("❌ Не найдено: %s %s", escape(notFound.Resource), escape(notFound.ID))
	case errors.As(err, &conflict):
		return "❌ " + escape(conflict.Message)
	case errors.As(err, &integrity):
		b.logger.Error("data integrity error", "card_id", integrity.CardID, "rule_ids", integrity.RuleIDs)
		return "⚠️ Правила карты настроены неоднозначно, администратор уже в курсе"
	case service.IsTransient(err):
		return "⏳ Сервис временно недоступен, попробуй позже"
	}
	b.logger.Error("bot command failed", "error", err)
	return "❌ Внутренняя ошибка"
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}
