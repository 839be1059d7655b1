package rewards

import (
	"card-rewards/internal/domain"
	"card-rewards/internal/storage"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// CapUsageReader: источник использованных лимитов. Ранжирование только читает.
type CapUsageReader interface {
	GetCapUsage(ctx context.Context, userID int64, month time.Time, ruleIDs []int64) (map[int64]decimal.Decimal, error)
}

// Ranker не хранит состояния между вызовами и может использоваться конкурентно.
type Ranker struct {
	rules  storage.RuleRepository
	usage  CapUsageReader
	logger *slog.Logger
}

// NewRanker: usage может быть nil: тогда считаем, что лимиты не расходовались.
func NewRanker(rules storage.RuleRepository, usage CapUsageReader, logger *slog.Logger) *Ranker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ranker{rules: rules, usage: usage, logger: logger}
}

// ValidatePurchase проверяет покупку до обращения к хранилищу.
func ValidatePurchase(p domain.Purchase) error {
	if err := ValidateAmount(p.Amount); err != nil {
		return err
	}
	if p.CategoryID <= 0 {
		return &domain.ValidationError{Field: "category_id", Message: "is required"}
	}
	if !p.TransactionType.IsQueryType() {
		return &domain.ValidationError{Field: "transaction_type", Message: "must be ONLINE or OFFLINE"}
	}
	return nil
}

// Rank считает вознаграждение по каждой карте и сортирует по убыванию.
// Даже если все карты дают 0, возвращается полный список.
func (r *Ranker) Rank(ctx context.Context, userID int64, p domain.Purchase, cards []domain.CreditCard) ([]domain.RankedResult, error) {
	if err := ValidatePurchase(p); err != nil {
		return nil, err
	}

	cards = uniqueCards(cards)
	if len(cards) == 0 {
		return []domain.RankedResult{}, nil
	}

	cardIDs := make([]int64, len(cards))
	for i, c := range cards {
		cardIDs[i] = c.ID
	}

	rulesByCard, err := r.rules.GetRulesForCards(ctx, cardIDs)
	if err != nil {
		return nil, fmt.Errorf("get rules: %w", err)
	}

	matched := make([]*domain.RewardRule, len(cards))
	var cappedRuleIDs []int64
	for i, c := range cards {
		rule, err := Match(rulesByCard[c.ID], Query{
			CardID:          c.ID,
			CategoryID:      p.CategoryID,
			SubCategoryID:   p.SubCategoryID,
			TransactionType: p.TransactionType,
		})
		if err != nil {
			var integrity *domain.DataIntegrityError
			if errors.As(err, &integrity) {
				r.logger.Error("ambiguous reward rules", "card_id", c.ID, "rule_ids", integrity.RuleIDs)
			}
			return nil, err
		}
		matched[i] = rule
		if rule != nil && rule.MonthlyCap.Valid {
			cappedRuleIDs = append(cappedRuleIDs, rule.ID)
		}
	}

	used := map[int64]decimal.Decimal{}
	if r.usage != nil && len(cappedRuleIDs) > 0 {
		used, err = r.usage.GetCapUsage(ctx, userID, p.Month, cappedRuleIDs)
		if err != nil {
			return nil, fmt.Errorf("get cap usage: %w", err)
		}
	}

	results := make([]domain.RankedResult, len(cards))
	for i, c := range cards {
		rule := matched[i]
		capUsed := decimal.Zero
		if rule != nil {
			capUsed = used[rule.ID]
		}
		calc := Calculate(rule, p.Amount, capUsed)

		kind := c.RewardType
		if rule != nil {
			kind = rule.RewardType
		}
		results[i] = domain.RankedResult{
			CardID:      c.ID,
			CardName:    c.Name,
			BankName:    c.Bank.Name,
			AnnualFee:   c.AnnualFee,
			Rule:        rule,
			RewardType:  kind,
			Reward:      calc.Rounded,
			RewardExact: calc.Exact,
			Flag:        calc.Flag,
		}
	}

	SortResults(results)

	r.logger.Debug("cards ranked",
		"user_id", userID,
		"category_id", p.CategoryID,
		"cards", len(results),
		"top_card_id", results[0].CardID,
	)
	return results, nil
}

// SortResults: вознаграждение ↓, годовое обслуживание ↑, название ↑, id ↑.
func SortResults(results []domain.RankedResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if c := a.RewardExact.Cmp(b.RewardExact); c != 0 {
			return c > 0
		}
		if c := a.AnnualFee.Cmp(b.AnnualFee); c != 0 {
			return c < 0
		}
		if a.CardName != b.CardName {
			return a.CardName < b.CardName
		}
		return a.CardID < b.CardID
	})
}

// uniqueCards: одна и та же карта может быть у пользователя дважды (разные last4).
func uniqueCards(cards []domain.CreditCard) []domain.CreditCard {
	seen := make(map[int64]bool, len(cards))
	out := make([]domain.CreditCard, 0, len(cards))
	for _, c := range cards {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	return out
}
