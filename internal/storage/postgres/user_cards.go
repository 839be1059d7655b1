package postgres

import (
	"card-rewards/internal/domain"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// === UserCardStorage ===

const userCardQuery = `
	SELECT uc.id, uc.user_id, uc.last4, uc.expiry_month, uc.expiry_year, uc.created_at,
		c.id, c.name, c.annual_fee, c.reward_type, b.id, b.name
	FROM user_credit_cards uc
	JOIN credit_cards c ON c.id = uc.card_id
	JOIN banks b ON b.id = c.bank_id
`

func scanUserCard(row pgx.Row) (*domain.UserCreditCard, error) {
	var (
		uc         domain.UserCreditCard
		rewardType string
	)
	err := row.Scan(
		&uc.ID, &uc.UserID, &uc.Last4, &uc.ExpiryMonth, &uc.ExpiryYear, &uc.CreatedAt,
		&uc.Card.ID, &uc.Card.Name, &uc.Card.AnnualFee, &rewardType, &uc.Card.Bank.ID, &uc.Card.Bank.Name,
	)
	if err != nil {
		return nil, err
	}
	if uc.Card.RewardType, err = domain.ParseRewardType(rewardType); err != nil {
		return nil, fmt.Errorf("card %d: %w", uc.Card.ID, err)
	}
	return &uc, nil
}

func (s *Storage) ListUserCards(ctx context.Context, userID int64) ([]domain.UserCreditCard, error) {
	rows, err := s.db.Query(ctx, userCardQuery+" WHERE uc.user_id = $1 ORDER BY uc.created_at, uc.id", userID)
	if err != nil {
		return nil, mapError("list user cards", err)
	}
	defer rows.Close()

	cards := []domain.UserCreditCard{}
	for rows.Next() {
		uc, err := scanUserCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user card: %w", err)
		}
		cards = append(cards, *uc)
	}
	return cards, mapError("list user cards", rows.Err())
}

// GetUserCard ищет карту только среди карт этого пользователя.
func (s *Storage) GetUserCard(ctx context.Context, userID, userCardID int64) (*domain.UserCreditCard, error) {
	uc, err := scanUserCard(s.db.QueryRow(ctx, userCardQuery+" WHERE uc.user_id = $1 AND uc.id = $2", userID, userCardID))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.NotFound("user card", userCardID)
		}
		return nil, mapError("get user card", err)
	}
	return uc, nil
}

func (s *Storage) AddUserCard(ctx context.Context, userID, cardID int64, last4 string, expMonth, expYear int) (*domain.UserCreditCard, error) {
	var id int64
	err := s.db.QueryRow(ctx, `
		INSERT INTO user_credit_cards (user_id, card_id, last4, expiry_month, expiry_year)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, userID, cardID, last4, expMonth, expYear).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NotFound("card", cardID)
		}
		return nil, mapError("add user card", err)
	}
	return s.GetUserCard(ctx, userID, id)
}

func (s *Storage) RemoveUserCard(ctx context.Context, userID, userCardID int64) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM user_credit_cards WHERE user_id = $1 AND id = $2", userID, userCardID)
	if err != nil {
		return mapError("remove user card", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("user card", userCardID)
	}
	return nil
}
