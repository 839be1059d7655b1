// internal/storage/storage.go
package storage

import (
	"card-rewards/internal/domain"
	"context"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/storage_mock.go -package=mocks card-rewards/internal/storage RuleRepository,CatalogRepository,UserCardStorage,CapUsageStorage,CardStorage,RuleStorage,UserStorage

// RuleRepository: чтение правил начисления. Неизвестная карта → *domain.NotFoundError.
type RuleRepository interface {
	GetRulesForCard(ctx context.Context, cardID int64) ([]domain.RewardRule, error)
	GetRulesForCards(ctx context.Context, cardIDs []int64) (map[int64][]domain.RewardRule, error)
}

// CatalogRepository: справочники для движка.
type CatalogRepository interface {
	GetCard(ctx context.Context, cardID int64) (*domain.CreditCard, error)
	GetCategory(ctx context.Context, categoryID int64) (*domain.Category, error)
}

type UserCardStorage interface {
	ListUserCards(ctx context.Context, userID int64) ([]domain.UserCreditCard, error)
	GetUserCard(ctx context.Context, userID, userCardID int64) (*domain.UserCreditCard, error)
	AddUserCard(ctx context.Context, userID, cardID int64, last4 string, expMonth, expYear int) (*domain.UserCreditCard, error)
	RemoveUserCard(ctx context.Context, userID, userCardID int64) error
}

// CapUsageStorage: сколько месячного лимита правила уже израсходовано пользователем.
type CapUsageStorage interface {
	GetCapUsage(ctx context.Context, userID int64, month time.Time, ruleIDs []int64) (map[int64]decimal.Decimal, error)
	AddCapUsage(ctx context.Context, userID, ruleID int64, month time.Time, amount decimal.Decimal) error
}

type BankStorage interface {
	ListBanks(ctx context.Context) ([]domain.Bank, error)
	CreateBank(ctx context.Context, name string) (*domain.Bank, error)
	RenameBank(ctx context.Context, id int64, name string) error
	DeleteBank(ctx context.Context, id int64) error
}

type CategoryStorage interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	FindCategoryByName(ctx context.Context, name string) (*domain.Category, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	RenameCategory(ctx context.Context, id int64, name string) error
	DeleteCategory(ctx context.Context, id int64) error
	CreateSubCategory(ctx context.Context, categoryID int64, name string) (*domain.SubCategory, error)
	DeleteSubCategory(ctx context.Context, categoryID, subCategoryID int64) error
}

// CardInput: поля карты, которые задаёт администратор.
type CardInput struct {
	Name       string
	BankID     int64
	AnnualFee  decimal.Decimal
	RewardType domain.RewardType
}

type CardStorage interface {
	ListCards(ctx context.Context) ([]domain.CreditCard, error)
	CreateCard(ctx context.Context, in CardInput) (*domain.CreditCard, error)
	UpdateCard(ctx context.Context, id int64, in CardInput) (*domain.CreditCard, error)
	DeleteCard(ctx context.Context, id int64) error
}

type RuleStorage interface {
	GetRule(ctx context.Context, id int64) (*domain.RewardRule, error)
	CreateRule(ctx context.Context, rule domain.RewardRule) (*domain.RewardRule, error)
	UpdateRule(ctx context.Context, rule domain.RewardRule) (*domain.RewardRule, error)
	DeleteRule(ctx context.Context, id int64) (*domain.RewardRule, error)
}

type UserStorage interface {
	CreateUser(ctx context.Context, email, passwordHash string, role domain.Role) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	EnsureTelegramUser(ctx context.Context, telegramID int64) (*domain.User, error)
	UpsertAdmin(ctx context.Context, email, passwordHash string) (*domain.User, error)
}
