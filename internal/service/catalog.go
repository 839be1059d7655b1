package service

import (
	"card-rewards/internal/domain"
	"card-rewards/internal/storage"
	"context"
	"log/slog"
)

// RuleInvalidator: локальный кэш правил.
type RuleInvalidator interface {
	Invalidate(cardIDs ...int64)
	InvalidateAll()
}

// RuleChangePublisher сообщает другим экземплярам об изменении правил.
type RuleChangePublisher interface {
	PublishRulesChanged(ctx context.Context, cardIDs ...int64) error
}

type CatalogDeps struct {
	Banks      storage.BankStorage
	Categories storage.CategoryStorage
	Cards      storage.CardStorage
	Rules      storage.RuleStorage
	Catalog    storage.CatalogRepository
	RuleReader storage.RuleRepository
	Cache      RuleInvalidator
	Publisher  RuleChangePublisher
	Logger     *slog.Logger
}

// CatalogService: справочники и правила. Изменения доступны только администратору
// (проверяется на уровне маршрутов), после изменения правил кэш сбрасывается.
type CatalogService struct {
	banks      storage.BankStorage
	categories storage.CategoryStorage
	cards      storage.CardStorage
	rules      storage.RuleStorage
	catalog    storage.CatalogRepository
	ruleReader storage.RuleRepository
	cache      RuleInvalidator
	publisher  RuleChangePublisher
	logger     *slog.Logger
}

func NewCatalogService(d CatalogDeps) *CatalogService {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return &CatalogService{
		banks:      d.Banks,
		categories: d.Categories,
		cards:      d.Cards,
		rules:      d.Rules,
		catalog:    d.Catalog,
		ruleReader: d.RuleReader,
		cache:      d.Cache,
		publisher:  d.Publisher,
		logger:     d.Logger,
	}
}

// === Банки ===

func (s *CatalogService) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	return s.banks.ListBanks(ctx)
}

func (s *CatalogService) CreateBank(ctx context.Context, name string) (*domain.Bank, error) {
	if err := requireName("name", name); err != nil {
		return nil, err
	}
	return s.banks.CreateBank(ctx, name)
}

func (s *CatalogService) RenameBank(ctx context.Context, id int64, name string) error {
	if err := requireName("name", name); err != nil {
		return err
	}
	return s.banks.RenameBank(ctx, id, name)
}

func (s *CatalogService) DeleteBank(ctx context.Context, id int64) error {
	return s.banks.DeleteBank(ctx, id)
}

// === Категории ===

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.ListCategories(ctx)
}

func (s *CatalogService) FindCategory(ctx context.Context, name string) (*domain.Category, error) {
	return s.categories.FindCategoryByName(ctx, name)
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if err := requireName("name", name); err != nil {
		return nil, err
	}
	return s.categories.CreateCategory(ctx, name)
}

func (s *CatalogService) RenameCategory(ctx context.Context, id int64, name string) error {
	if err := requireName("name", name); err != nil {
		return err
	}
	return s.categories.RenameCategory(ctx, id, name)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	return s.categories.DeleteCategory(ctx, id)
}

func (s *CatalogService) CreateSubCategory(ctx context.Context, categoryID int64, name string) (*domain.SubCategory, error) {
	if err := requireName("name", name); err != nil {
		return nil, err
	}
	return s.categories.CreateSubCategory(ctx, categoryID, name)
}

func (s *CatalogService) DeleteSubCategory(ctx context.Context, categoryID, subCategoryID int64) error {
	return s.categories.DeleteSubCategory(ctx, categoryID, subCategoryID)
}

// === Карты ===

func (s *CatalogService) ListCards(ctx context.Context) ([]domain.CreditCard, error) {
	return s.cards.ListCards(ctx)
}

func (s *CatalogService) GetCard(ctx context.Context, id int64) (*domain.CreditCard, error) {
	return s.catalog.GetCard(ctx, id)
}

func (s *CatalogService) CreateCard(ctx context.Context, in storage.CardInput) (*domain.CreditCard, error) {
	if err := validateCard(in); err != nil {
		return nil, err
	}
	return s.cards.CreateCard(ctx, in)
}

func (s *CatalogService) UpdateCard(ctx context.Context, id int64, in storage.CardInput) (*domain.CreditCard, error) {
	if err := validateCard(in); err != nil {
		return nil, err
	}
	return s.cards.UpdateCard(ctx, id, in)
}

// DeleteCard удаляет и правила карты, поэтому сбрасываем её кэш.
func (s *CatalogService) DeleteCard(ctx context.Context, id int64) error {
	if err := s.cards.DeleteCard(ctx, id); err != nil {
		return err
	}
	s.rulesChanged(ctx, id)
	return nil
}

// === Правила ===

// ListRules: правила карты через кэш. Неизвестная карта: NotFound.
func (s *CatalogService) ListRules(ctx context.Context, cardID int64) ([]domain.RewardRule, error) {
	return s.ruleReader.GetRulesForCard(ctx, cardID)
}

func (s *CatalogService) CreateRule(ctx context.Context, rule domain.RewardRule) (*domain.RewardRule, error) {
	if err := s.checkRule(ctx, rule); err != nil {
		return nil, err
	}
	created, err := s.rules.CreateRule(ctx, rule)
	if err != nil {
		return nil, err
	}
	s.logger.Info("reward rule created", "rule_id", created.ID, "card_id", created.CardID)
	s.rulesChanged(ctx, created.CardID)
	return created, nil
}

func (s *CatalogService) UpdateRule(ctx context.Context, rule domain.RewardRule) (*domain.RewardRule, error) {
	old, err := s.rules.GetRule(ctx, rule.ID)
	if err != nil {
		return nil, err
	}
	if err := s.checkRule(ctx, rule); err != nil {
		return nil, err
	}
	updated, err := s.rules.UpdateRule(ctx, rule)
	if err != nil {
		return nil, err
	}
	s.logger.Info("reward rule updated", "rule_id", updated.ID, "card_id", updated.CardID)
	if old.CardID != updated.CardID {
		s.rulesChanged(ctx, old.CardID, updated.CardID)
	} else {
		s.rulesChanged(ctx, updated.CardID)
	}
	return updated, nil
}

func (s *CatalogService) DeleteRule(ctx context.Context, id int64) error {
	deleted, err := s.rules.DeleteRule(ctx, id)
	if err != nil {
		return err
	}
	s.logger.Info("reward rule deleted", "rule_id", deleted.ID, "card_id", deleted.CardID)
	s.rulesChanged(ctx, deleted.CardID)
	return nil
}

// checkRule проверяет правило до записи: карта и категория существуют,
// подкатегория принадлежит категории, значения неотрицательны.
func (s *CatalogService) checkRule(ctx context.Context, rule domain.RewardRule) error {
	if err := ValidateRule(rule); err != nil {
		return err
	}
	if _, err := s.catalog.GetCard(ctx, rule.CardID); err != nil {
		return err
	}
	category, err := s.catalog.GetCategory(ctx, rule.CategoryID)
	if err != nil {
		return err
	}
	return checkSubCategory(category, rule.SubCategoryID)
}

// ValidateRule: проверки правила, не требующие хранилища.
func ValidateRule(rule domain.RewardRule) error {
	switch rule.TransactionType {
	case domain.TxOnline, domain.TxOffline, domain.TxBoth:
	default:
		return &domain.ValidationError{Field: "transaction_type", Message: "must be ONLINE, OFFLINE or BOTH"}
	}
	switch rule.RewardType {
	case domain.RewardCashback, domain.RewardPoints, domain.RewardMiles:
	default:
		return &domain.ValidationError{Field: "reward_type", Message: "must be CASHBACK, POINTS or MILES"}
	}
	if rule.RewardValue.IsNegative() {
		return &domain.ValidationError{Field: "reward_value", Message: "must not be negative"}
	}
	if rule.RewardType == domain.RewardCashback && rule.RewardValue.GreaterThan(hundred) {
		return &domain.ValidationError{Field: "reward_value", Message: "cashback percentage must not exceed 100"}
	}
	if rule.MonthlyCap.Valid && rule.MonthlyCap.Decimal.IsNegative() {
		return &domain.ValidationError{Field: "monthly_cap", Message: "must not be negative"}
	}
	if rule.MinimumSpend.Valid && rule.MinimumSpend.Decimal.IsNegative() {
		return &domain.ValidationError{Field: "minimum_spend", Message: "must not be negative"}
	}
	return nil
}

func (s *CatalogService) rulesChanged(ctx context.Context, cardIDs ...int64) {
	if s.cache != nil {
		s.cache.Invalidate(cardIDs...)
	}
	if s.publisher == nil {
		return
	}
	// Остальные экземпляры догонят по TTL, если сообщение потеряется
	if err := s.publisher.PublishRulesChanged(ctx, cardIDs...); err != nil {
		s.logger.Warn("publish rule change failed", "card_ids", cardIDs, "error", err)
	}
}
