package service

import (
	"card-rewards/internal/domain"
	"card-rewards/internal/metrics"
	"card-rewards/internal/rewards"
	"card-rewards/internal/storage"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
)

type RecordRequest struct {
	UserID          int64
	UserCardID      int64
	Amount          decimal.Decimal
	CategoryID      int64
	SubCategoryID   *int64
	TransactionType domain.TransactionType
	OccurredAt      time.Time // нулевое значение: сейчас
}

// Recorder учитывает совершённые покупки в использовании месячных лимитов.
// Ранжирование его никогда не вызывает.
type Recorder struct {
	catalog storage.CatalogRepository
	cards   storage.UserCardStorage
	rules   storage.RuleRepository
	usage   storage.CapUsageStorage
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

func NewRecorder(
	catalog storage.CatalogRepository,
	cards storage.UserCardStorage,
	rules storage.RuleRepository,
	usage storage.CapUsageStorage,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{
		catalog: catalog,
		cards:   cards,
		rules:   rules,
		usage:   usage,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// Record считает вознаграждение по покупке и, если у правила есть лимит,
// прибавляет начисленное (в полной точности) к использованию лимита за месяц покупки.
func (r *Recorder) Record(ctx context.Context, req RecordRequest) (*domain.RecordedTransaction, error) {
	occurred := req.OccurredAt
	if occurred.IsZero() {
		occurred = r.now()
	}
	purchase := domain.Purchase{
		Amount:          req.Amount,
		CategoryID:      req.CategoryID,
		SubCategoryID:   req.SubCategoryID,
		TransactionType: req.TransactionType,
		Month:           domain.MonthStart(occurred),
	}
	if err := rewards.ValidatePurchase(purchase); err != nil {
		return nil, err
	}
	if occurred.After(r.now().Add(time.Minute)) {
		return nil, &domain.ValidationError{Field: "occurred_at", Message: "must not be in the future"}
	}

	category, err := r.catalog.GetCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := checkSubCategory(category, req.SubCategoryID); err != nil {
		return nil, err
	}

	userCard, err := r.cards.GetUserCard(ctx, req.UserID, req.UserCardID)
	if err != nil {
		return nil, err
	}

	rules, err := r.rules.GetRulesForCard(ctx, userCard.Card.ID)
	if err != nil {
		return nil, fmt.Errorf("get rules: %w", err)
	}
	rule, err := rewards.Match(rules, rewards.Query{
		CardID:          userCard.Card.ID,
		CategoryID:      purchase.CategoryID,
		SubCategoryID:   purchase.SubCategoryID,
		TransactionType: purchase.TransactionType,
	})
	if err != nil {
		return nil, err
	}

	capUsed := decimal.Zero
	capped := rule != nil && rule.MonthlyCap.Valid
	if capped {
		used, err := r.usage.GetCapUsage(ctx, req.UserID, purchase.Month, []int64{rule.ID})
		if err != nil {
			return nil, fmt.Errorf("get cap usage: %w", err)
		}
		capUsed = used[rule.ID]
	}

	calc := rewards.Calculate(rule, purchase.Amount, capUsed)
	if capped && calc.Exact.IsPositive() {
		if err := r.usage.AddCapUsage(ctx, req.UserID, rule.ID, purchase.Month, calc.Exact); err != nil {
			return nil, fmt.Errorf("add cap usage: %w", err)
		}
	}

	r.metrics.IncrRecorded(calc.Flag.String())
	r.logger.Info("purchase recorded",
		"user_id", req.UserID,
		"user_card_id", userCard.ID,
		"card_id", userCard.Card.ID,
		"month", purchase.Month.Format("2006-01"),
		"flag", calc.Flag.String(),
		"reward", calc.Exact.String(),
	)

	return &domain.RecordedTransaction{
		UserCardID:  userCard.ID,
		CardID:      userCard.Card.ID,
		Month:       purchase.Month.Format("2006-01"),
		Rule:        rule,
		Reward:      calc.Rounded,
		RewardExact: calc.Exact,
		Flag:        calc.Flag,
	}, nil
}
