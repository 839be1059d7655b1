// Package rewards выбирает правило начисления, считает вознаграждение и ранжирует карты.
package rewards

import (
	"card-rewards/internal/domain"
	"sort"
)

// Query: что ищем для одной карты.
type Query struct {
	CardID          int64
	CategoryID      int64
	SubCategoryID   *int64
	TransactionType domain.TransactionType
}

// specificity: подкатегория весит больше, чем точный тип транзакции.
func specificity(r domain.RewardRule) int {
	score := 0
	if r.SubCategoryID != nil {
		score += 2
	}
	if r.TransactionType != domain.TxBoth {
		score++
	}
	return score
}

func eligible(r domain.RewardRule, q Query) bool {
	if r.CardID != q.CardID || r.CategoryID != q.CategoryID {
		return false
	}
	if r.SubCategoryID != nil {
		if q.SubCategoryID == nil || *r.SubCategoryID != *q.SubCategoryID {
			return false
		}
	}
	return r.TransactionType.Covers(q.TransactionType)
}

// Match возвращает самое специфичное правило или nil, если ничего не подходит.
// Ничья на всех осях: DataIntegrityError, порядок rules не влияет на результат.
func Match(rules []domain.RewardRule, q Query) (*domain.RewardRule, error) {
	best := -1
	var tied []domain.RewardRule

	for _, r := range rules {
		if !eligible(r, q) {
			continue
		}
		s := specificity(r)
		switch {
		case s > best:
			best = s
			tied = append(tied[:0], r)
		case s == best:
			tied = append(tied, r)
		}
	}

	switch len(tied) {
	case 0:
		return nil, nil
	case 1:
		rule := tied[0]
		return &rule, nil
	}

	ids := make([]int64, len(tied))
	for i, r := range tied {
		ids[i] = r.ID
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return nil, &domain.DataIntegrityError{CardID: q.CardID, RuleIDs: ids}
}
