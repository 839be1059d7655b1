package service

import (
	"card-rewards/internal/domain"
	"card-rewards/internal/metrics"
	"card-rewards/internal/storage/mocks"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recorderFixture struct {
	catalog *mocks.MockCatalogRepository
	cards   *mocks.MockUserCardStorage
	rules   *mocks.MockRuleRepository
	usage   *mocks.MockCapUsageStorage
	rec     *Recorder
}

func newRecorderFixture(t *testing.T) *recorderFixture {
	ctrl := gomock.NewController(t)
	f := &recorderFixture{
		catalog: mocks.NewMockCatalogRepository(ctrl),
		cards:   mocks.NewMockUserCardStorage(ctrl),
		rules:   mocks.NewMockRuleRepository(ctrl),
		usage:   mocks.NewMockCapUsageStorage(ctrl),
	}
	f.rec = NewRecorder(f.catalog, f.cards, f.rules, f.usage, metrics.NewMetrics(), nil)
	f.rec.now = func() time.Time { return fixedNow }
	return f
}

var heldCard = &domain.UserCreditCard{
	ID:     300,
	UserID: 7,
	Card:   domain.CreditCard{ID: 3, Name: "Capped", Bank: domain.Bank{ID: 1, Name: "Alpha"}},
	Last4:  "4242",
}

func cappedRule() domain.RewardRule {
	return domain.RewardRule{
		ID: 30, CardID: 3, CategoryID: 1, TransactionType: domain.TxBoth, RewardType: domain.RewardCashback,
		RewardValue: dec("5"), MonthlyCap: decimal.NewNullDecimal(dec("20")),
	}
}

func TestRecorder_AddsEarnedRewardToCapUsage(t *testing.T) {
	f := newRecorderFixture(t)

	f.catalog.EXPECT().GetCategory(gomock.Any(), int64(1)).Return(groceries, nil)
	f.cards.EXPECT().GetUserCard(gomock.Any(), int64(7), int64(300)).Return(heldCard, nil)
	f.rules.EXPECT().GetRulesForCard(gomock.Any(), int64(3)).Return([]domain.RewardRule{cappedRule()}, nil)
	f.usage.EXPECT().GetCapUsage(gomock.Any(), int64(7), march, []int64{30}).
		Return(map[int64]decimal.Decimal{30: dec("18")}, nil)
	f.usage.EXPECT().AddCapUsage(gomock.Any(), int64(7), int64(30), march, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ int64, _ time.Time, amount decimal.Decimal) error {
			assert.True(t, amount.Equal(dec("2")), amount.String())
			return nil
		})

	got, err := f.rec.Record(context.Background(), RecordRequest{
		UserID: 7, UserCardID: 300, Amount: dec("100"), CategoryID: 1, TransactionType: domain.TxOffline,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.FlagCapped, got.Flag)
	assert.Equal(t, "2025-03", got.Month)
	assert.Equal(t, int64(3), got.CardID)
	assert.True(t, got.RewardExact.Equal(dec("2")))
}

func TestRecorder_UsesMonthOfPurchase(t *testing.T) {
	f := newRecorderFixture(t)
	february := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	f.catalog.EXPECT().GetCategory(gomock.Any(), int64(1)).Return(groceries, nil)
	f.cards.EXPECT().GetUserCard(gomock.Any(), int64(7), int64(300)).Return(heldCard, nil)
	f.rules.EXPECT().GetRulesForCard(gomock.Any(), int64(3)).Return([]domain.RewardRule{cappedRule()}, nil)
	f.usage.EXPECT().GetCapUsage(gomock.Any(), int64(7), february, []int64{30}).Return(map[int64]decimal.Decimal{}, nil)
	f.usage.EXPECT().AddCapUsage(gomock.Any(), int64(7), int64(30), february, gomock.Any()).Return(nil)

	got, err := f.rec.Record(context.Background(), RecordRequest{
		UserID: 7, UserCardID: 300, Amount: dec("100"), CategoryID: 1, TransactionType: domain.TxOnline,
		OccurredAt: time.Date(2025, time.February, 27, 18, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-02", got.Month)
	assert.Equal(t, domain.FlagOK, got.Flag)
}

func TestRecorder_UncappedRuleDoesNotTouchUsage(t *testing.T) {
	f := newRecorderFixture(t)
	rule := cappedRule()
	rule.MonthlyCap = decimal.NullDecimal{}

	f.catalog.EXPECT().GetCategory(gomock.Any(), int64(1)).Return(groceries, nil)
	f.cards.EXPECT().GetUserCard(gomock.Any(), int64(7), int64(300)).Return(heldCard, nil)
	f.rules.EXPECT().GetRulesForCard(gomock.Any(), int64(3)).Return([]domain.RewardRule{rule}, nil)

	got, err := f.rec.Record(context.Background(), RecordRequest{
		UserID: 7, UserCardID: 300, Amount: dec("100"), CategoryID: 1, TransactionType: domain.TxOnline,
	})
	require.NoError(t, err)
	assert.True(t, got.Reward.Equal(dec("5")))
}

func TestRecorder_NoRule(t *testing.T) {
	f := newRecorderFixture(t)

	f.catalog.EXPECT().GetCategory(gomock.Any(), int64(1)).Return(groceries, nil)
	f.cards.EXPECT().GetUserCard(gomock.Any(), int64(7), int64(300)).Return(heldCard, nil)
	f.rules.EXPECT().GetRulesForCard(gomock.Any(), int64(3)).Return([]domain.RewardRule{}, nil)

	got, err := f.rec.Record(context.Background(), RecordRequest{
		UserID: 7, UserCardID: 300, Amount: dec("100"), CategoryID: 1, TransactionType: domain.TxOnline,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.FlagNoRule, got.Flag)
	assert.Nil(t, got.Rule)
	assert.True(t, got.Reward.IsZero())
}

func TestRecorder_CardNotHeld(t *testing.T) {
	f := newRecorderFixture(t)

	f.catalog.EXPECT().GetCategory(gomock.Any(), int64(1)).Return(groceries, nil)
	f.cards.EXPECT().GetUserCard(gomock.Any(), int64(7), int64(999)).Return(nil, domain.NotFound("user card", 999))

	_, err := f.rec.Record(context.Background(), RecordRequest{
		UserID: 7, UserCardID: 999, Amount: dec("100"), CategoryID: 1, TransactionType: domain.TxOnline,
	})
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRecorder_RejectsFuturePurchase(t *testing.T) {
	f := newRecorderFixture(t)

	_, err := f.rec.Record(context.Background(), RecordRequest{
		UserID: 7, UserCardID: 300, Amount: dec("100"), CategoryID: 1, TransactionType: domain.TxOnline,
		OccurredAt: fixedNow.Add(48 * time.Hour),
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "occurred_at", verr.Field)
}
