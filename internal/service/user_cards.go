package service

import (
	"card-rewards/internal/domain"
	"card-rewards/internal/storage"
	"context"
	"log/slog"
	"regexp"
	"time"
)

var last4Re = regexp.MustCompile(`^[0-9]{4}$`)

type AddCardRequest struct {
	UserID      int64
	CardID      int64
	Last4       string
	ExpiryMonth int
	ExpiryYear  int // 2 или 4 цифры
}

type UserCardService struct {
	catalog storage.CatalogRepository
	cards   storage.UserCardStorage
	now     func() time.Time
}

func NewUserCardService(catalog storage.CatalogRepository, cards storage.UserCardStorage) *UserCardService {
	return &UserCardService{catalog: catalog, cards: cards, now: time.Now}
}

func (s *UserCardService) List(ctx context.Context, userID int64) ([]domain.UserCreditCard, error) {
	return s.cards.ListUserCards(ctx, userID)
}

// Add сохраняет карту пользователя. Полный номер не принимаем: только последние 4 цифры.
func (s *UserCardService) Add(ctx context.Context, req AddCardRequest) (*domain.UserCreditCard, error) {
	if !last4Re.MatchString(req.Last4) {
		return nil, &domain.ValidationError{Field: "last4", Message: "must be exactly 4 digits"}
	}
	if req.ExpiryMonth < 1 || req.ExpiryMonth > 12 {
		return nil, &domain.ValidationError{Field: "expiry_month", Message: "must be between 1 and 12"}
	}
	year := req.ExpiryYear
	if year >= 0 && year < 100 {
		year += 2000
	}
	now := s.now().UTC()
	if year < now.Year() || (year == now.Year() && req.ExpiryMonth < int(now.Month())) {
		return nil, &domain.ValidationError{Field: "expiry_year", Message: "card has expired"}
	}
	if year > now.Year()+20 {
		return nil, &domain.ValidationError{Field: "expiry_year", Message: "is too far in the future"}
	}

	if _, err := s.catalog.GetCard(ctx, req.CardID); err != nil {
		return nil, err
	}

	uc, err := s.cards.AddUserCard(ctx, req.UserID, req.CardID, req.Last4, req.ExpiryMonth, year)
	if err != nil {
		return nil, err
	}
	slog.Info("user card added", "user_id", req.UserID, "card_id", req.CardID, "user_card_id", uc.ID)
	return uc, nil
}

func (s *UserCardService) Remove(ctx context.Context, userID, userCardID int64) error {
	if err := s.cards.RemoveUserCard(ctx, userID, userCardID); err != nil {
		return err
	}
	slog.Info("user card removed", "user_id", userID, "user_card_id", userCardID)
	return nil
}
