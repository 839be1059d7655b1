// internal/domain/models.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Bank struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Category struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	SubCategories []SubCategory `json:"sub_categories"`
}

// HasSubCategory: принадлежит ли подкатегория этой категории.
func (c Category) HasSubCategory(id int64) bool {
	for _, sc := range c.SubCategories {
		if sc.ID == id {
			return true
		}
	}
	return false
}

type SubCategory struct {
	ID         int64  `json:"id"`
	CategoryID int64  `json:"category_id"`
	Name       string `json:"name"`
}

type CreditCard struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Bank       Bank            `json:"bank"`
	AnnualFee  decimal.Decimal `json:"annual_fee"`
	RewardType RewardType      `json:"reward_type"` // только для отображения
}

// RewardRule: правило начисления для одной карты.
// RewardValue: процент для CASHBACK, единиц за единицу валюты для POINTS/MILES.
type RewardRule struct {
	ID              int64               `json:"id"`
	CardID          int64               `json:"card_id"`
	CategoryID      int64               `json:"category_id"`
	SubCategoryID   *int64              `json:"sub_category_id"`
	TransactionType TransactionType     `json:"transaction_type"`
	RewardType      RewardType          `json:"reward_type"`
	RewardValue     decimal.Decimal     `json:"reward_value"`
	MonthlyCap      decimal.NullDecimal `json:"monthly_cap"`
	MinimumSpend    decimal.NullDecimal `json:"minimum_spend"`
}

// UserCreditCard: карта пользователя. Полный номер не храним, только последние 4 цифры.
type UserCreditCard struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"-"`
	Card        CreditCard `json:"card"`
	Last4       string     `json:"last4"`
	ExpiryMonth int        `json:"expiry_month"`
	ExpiryYear  int        `json:"expiry_year"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	TelegramID   *int64    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Purchase: одна покупка, для которой выбираем карту.
// Month: начало календарного месяца, к которому относится использование лимитов.
type Purchase struct {
	Amount          decimal.Decimal
	CategoryID      int64
	SubCategoryID   *int64
	TransactionType TransactionType
	Month           time.Time
}

// RankedResult: строка рекомендации по одной карте.
type RankedResult struct {
	CardID      int64           `json:"card_id"`
	CardName    string          `json:"card_name"`
	BankName    string          `json:"bank_name"`
	AnnualFee   decimal.Decimal `json:"annual_fee"`
	Rule        *RewardRule     `json:"rule"`
	RewardType  RewardType      `json:"reward_type"`
	Reward      decimal.Decimal `json:"reward"`
	RewardExact decimal.Decimal `json:"reward_exact"`
	Display     string          `json:"display"`
	Flag        Flag            `json:"flag"`
}

// RecordedTransaction: результат записи покупки в учёт лимитов.
type RecordedTransaction struct {
	UserCardID  int64           `json:"user_card_id"`
	CardID      int64           `json:"card_id"`
	Month       string          `json:"month"`
	Rule        *RewardRule     `json:"rule"`
	Reward      decimal.Decimal `json:"reward"`
	RewardExact decimal.Decimal `json:"reward_exact"`
	Flag        Flag            `json:"flag"`
}

// MonthStart нормализует время к первому числу месяца (UTC).
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
