package postgres

import (
	"card-rewards/internal/domain"
	"context"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
)

const ruleColumns = `id, card_id, category_id, sub_category_id, transaction_type, reward_type,
	reward_value, monthly_cap, minimum_spend`

func scanRule(row pgx.Row) (*domain.RewardRule, error) {
	var (
		rule       domain.RewardRule
		txType     string
		rewardType string
	)
	err := row.Scan(
		&rule.ID, &rule.CardID, &rule.CategoryID, &rule.SubCategoryID, &txType, &rewardType,
		&rule.RewardValue, &rule.MonthlyCap, &rule.MinimumSpend,
	)
	if err != nil {
		return nil, err
	}
	if rule.TransactionType, err = domain.ParseTransactionType(txType); err != nil {
		return nil, fmt.Errorf("rule %d: %w", rule.ID, err)
	}
	if rule.RewardType, err = domain.ParseRewardType(rewardType); err != nil {
		return nil, fmt.Errorf("rule %d: %w", rule.ID, err)
	}
	return &rule, nil
}

// === RuleRepository ===

func (s *Storage) GetRulesForCard(ctx context.Context, cardID int64) ([]domain.RewardRule, error) {
	byCard, err := s.GetRulesForCards(ctx, []int64{cardID})
	if err != nil {
		return nil, err
	}
	return byCard[cardID], nil
}

// GetRulesForCards возвращает правила всех карт за два запроса.
// Если хотя бы одной карты нет в каталоге: NotFound по наименьшему такому id.
func (s *Storage) GetRulesForCards(ctx context.Context, cardIDs []int64) (map[int64][]domain.RewardRule, error) {
	out := make(map[int64][]domain.RewardRule, len(cardIDs))
	if len(cardIDs) == 0 {
		return out, nil
	}

	rows, err := s.db.Query(ctx, "SELECT id FROM credit_cards WHERE id = ANY($1)", cardIDs)
	if err != nil {
		return nil, mapError("check cards", err)
	}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan card id: %w", err)
		}
		out[id] = []domain.RewardRule{}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, mapError("check cards", err)
	}

	var missing []int64
	for _, id := range cardIDs {
		if _, ok := out[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
		return nil, domain.NotFound("card", missing[0])
	}

	rows, err = s.db.Query(ctx, `
		SELECT `+ruleColumns+`
		FROM reward_rules
		WHERE card_id = ANY($1)
		ORDER BY card_id, id
	`, cardIDs)
	if err != nil {
		return nil, mapError("query rules", err)
	}
	defer rows.Close()

	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rule: %w", err)
		}
		out[rule.CardID] = append(out[rule.CardID], *rule)
	}
	return out, mapError("query rules", rows.Err())
}

// === RuleStorage ===

func (s *Storage) GetRule(ctx context.Context, id int64) (*domain.RewardRule, error) {
	rule, err := scanRule(s.db.QueryRow(ctx, "SELECT "+ruleColumns+" FROM reward_rules WHERE id = $1", id))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.NotFound("rule", id)
		}
		return nil, mapError("get rule", err)
	}
	return rule, nil
}

// CreateRule: дубликат по (карта, категория, подкатегория, тип): ConflictError от уникального индекса.
func (s *Storage) CreateRule(ctx context.Context, rule domain.RewardRule) (*domain.RewardRule, error) {
	created, err := scanRule(s.db.QueryRow(ctx, `
		INSERT INTO reward_rules
			(card_id, category_id, sub_category_id, transaction_type, reward_type, reward_value, monthly_cap, minimum_spend)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+ruleColumns,
		rule.CardID, rule.CategoryID, rule.SubCategoryID, rule.TransactionType.String(), rule.RewardType.String(),
		rule.RewardValue, rule.MonthlyCap, rule.MinimumSpend,
	))
	if err != nil {
		return nil, mapError("create rule", err)
	}
	return created, nil
}

func (s *Storage) UpdateRule(ctx context.Context, rule domain.RewardRule) (*domain.RewardRule, error) {
	updated, err := scanRule(s.db.QueryRow(ctx, `
		UPDATE reward_rules
		SET card_id = $2, category_id = $3, sub_category_id = $4, transaction_type = $5,
			reward_type = $6, reward_value = $7, monthly_cap = $8, minimum_spend = $9
		WHERE id = $1
		RETURNING `+ruleColumns,
		rule.ID, rule.CardID, rule.CategoryID, rule.SubCategoryID, rule.TransactionType.String(), rule.RewardType.String(),
		rule.RewardValue, rule.MonthlyCap, rule.MinimumSpend,
	))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.NotFound("rule", rule.ID)
		}
		return nil, mapError("update rule", err)
	}
	return updated, nil
}

// DeleteRule возвращает удалённое правило: вызывающему нужен card_id для сброса кэша.
func (s *Storage) DeleteRule(ctx context.Context, id int64) (*domain.RewardRule, error) {
	deleted, err := scanRule(s.db.QueryRow(ctx, "DELETE FROM reward_rules WHERE id = $1 RETURNING "+ruleColumns, id))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.NotFound("rule", id)
		}
		return nil, mapError("delete rule", err)
	}
	return deleted, nil
}
