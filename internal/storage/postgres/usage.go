package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// === CapUsageStorage ===

// GetCapUsage: правил без записей в ответе нет, вызывающий считает их нулём.
func (s *Storage) GetCapUsage(ctx context.Context, userID int64, month time.Time, ruleIDs []int64) (map[int64]decimal.Decimal, error) {
	used := make(map[int64]decimal.Decimal, len(ruleIDs))
	if len(ruleIDs) == 0 {
		return used, nil
	}

	rows, err := s.db.Query(ctx, `
		SELECT rule_id, used
		FROM rule_cap_usage
		WHERE user_id = $1 AND month = $2 AND rule_id = ANY($3)
	`, userID, month, ruleIDs)
	if err != nil {
		return nil, mapError("get cap usage", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ruleID int64
			amount decimal.Decimal
		)
		if err := rows.Scan(&ruleID, &amount); err != nil {
			return nil, fmt.Errorf("scan cap usage: %w", err)
		}
		used[ruleID] = amount
	}
	return used, mapError("get cap usage", rows.Err())
}

// AddCapUsage прибавляет amount к использованию лимита правила за месяц.
func (s *Storage) AddCapUsage(ctx context.Context, userID, ruleID int64, month time.Time, amount decimal.Decimal) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO rule_cap_usage (user_id, rule_id, month, used)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, rule_id, month)
		DO UPDATE SET used = rule_cap_usage.used + EXCLUDED.used
	`, userID, ruleID, month, amount)
	if err != nil {
		return mapError("add cap usage", err)
	}
	return nil
}
