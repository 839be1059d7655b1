package handler

import (
	"card-rewards/internal/domain"
	"card-rewards/internal/storage"
	"time"

	val "card-rewards/internal/validator"

	"github.com/shopspring/decimal"
)

// === DTO ===

type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type RankRequest struct {
	Amount          decimal.Decimal `json:"amount" validate:"decimalpos"`
	CategoryID      int64           `json:"category_id" validate:"required,gt=0"`
	SubCategoryID   *int64          `json:"sub_category_id" validate:"omitempty,gt=0"`
	TransactionType string          `json:"transaction_type" validate:"required,txtype"`
}

type AddCardRequest struct {
	CardID      int64  `json:"card_id" validate:"required,gt=0"`
	Last4       string `json:"last4" validate:"required,last4"`
	ExpiryMonth int    `json:"expiry_month" validate:"required,min=1,max=12"`
	ExpiryYear  int    `json:"expiry_year" validate:"required,min=0"`
}

// RecordTransactionRequest: card_id: id карты из кошелька пользователя (GET /cards).
type RecordTransactionRequest struct {
	UserCardID      int64           `json:"card_id" validate:"required,gt=0"`
	Amount          decimal.Decimal `json:"amount" validate:"decimalpos"`
	CategoryID      int64           `json:"category_id" validate:"required,gt=0"`
	SubCategoryID   *int64          `json:"sub_category_id" validate:"omitempty,gt=0"`
	TransactionType string          `json:"transaction_type" validate:"required,txtype"`
	OccurredAt      *time.Time      `json:"occurred_at"`
}

type NameRequest struct {
	Name string `json:"name" validate:"required,notblank,max=200"`
}

type CardRequest struct {
	Name       string          `json:"name" validate:"required,notblank,max=200"`
	BankID     int64           `json:"bank_id" validate:"required,gt=0"`
	AnnualFee  decimal.Decimal `json:"annual_fee" validate:"decimalnonneg"`
	RewardType string          `json:"reward_type" validate:"required,rewardtype"`
}

func (r CardRequest) toInput() storage.CardInput {
	kind, _ := domain.ParseRewardType(r.RewardType)
	return storage.CardInput{
		Name:       r.Name,
		BankID:     r.BankID,
		AnnualFee:  r.AnnualFee,
		RewardType: kind,
	}
}

type RuleRequest struct {
	CardID          int64               `json:"card_id" validate:"required,gt=0"`
	CategoryID      int64               `json:"category_id" validate:"required,gt=0"`
	SubCategoryID   *int64              `json:"sub_category_id" validate:"omitempty,gt=0"`
	TransactionType string              `json:"transaction_type" validate:"required,rulescope"`
	RewardType      string              `json:"reward_type" validate:"required,rewardtype"`
	RewardValue     decimal.Decimal     `json:"reward_value" validate:"decimalnonneg"`
	MonthlyCap      decimal.NullDecimal `json:"monthly_cap" validate:"omitempty,decimalnonneg"`
	MinimumSpend    decimal.NullDecimal `json:"minimum_spend" validate:"omitempty,decimalnonneg"`
}

func (r RuleRequest) toRule(id int64) domain.RewardRule {
	txType, _ := domain.ParseTransactionType(r.TransactionType)
	kind, _ := domain.ParseRewardType(r.RewardType)
	return domain.RewardRule{
		ID:              id,
		CardID:          r.CardID,
		CategoryID:      r.CategoryID,
		SubCategoryID:   r.SubCategoryID,
		TransactionType: txType,
		RewardType:      kind,
		RewardValue:     r.RewardValue,
		MonthlyCap:      r.MonthlyCap,
		MinimumSpend:    r.MinimumSpend,
	}
}

func validateStruct(v any) error {
	return val.Struct(v)
}
