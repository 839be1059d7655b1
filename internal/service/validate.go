package service

import (
	"card-rewards/internal/domain"
	"card-rewards/internal/storage"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

func requireName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return &domain.ValidationError{Field: field, Message: "must not be blank"}
	}
	return nil
}

func validateCard(in storage.CardInput) error {
	if err := requireName("name", in.Name); err != nil {
		return err
	}
	if in.BankID <= 0 {
		return &domain.ValidationError{Field: "bank_id", Message: "is required"}
	}
	if in.AnnualFee.IsNegative() {
		return &domain.ValidationError{Field: "annual_fee", Message: "must not be negative"}
	}
	switch in.RewardType {
	case domain.RewardCashback, domain.RewardPoints, domain.RewardMiles:
		return nil
	}
	return &domain.ValidationError{Field: "reward_type", Message: "must be CASHBACK, POINTS or MILES"}
}
