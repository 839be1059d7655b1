package postgres

import (
	"card-rewards/internal/domain"
	"card-rewards/internal/storage"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// === BankStorage ===

func (s *Storage) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	rows, err := s.db.Query(ctx, "SELECT id, name FROM banks ORDER BY name")
	if err != nil {
		return nil, mapError("list banks", err)
	}
	defer rows.Close()

	banks := []domain.Bank{}
	for rows.Next() {
		var b domain.Bank
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("scan bank: %w", err)
		}
		banks = append(banks, b)
	}
	return banks, mapError("list banks", rows.Err())
}

func (s *Storage) CreateBank(ctx context.Context, name string) (*domain.Bank, error) {
	b := domain.Bank{Name: cleanName(name)}
	err := s.db.QueryRow(ctx, "INSERT INTO banks (name) VALUES ($1) RETURNING id", b.Name).Scan(&b.ID)
	if err != nil {
		return nil, mapError("create bank", err)
	}
	return &b, nil
}

func (s *Storage) RenameBank(ctx context.Context, id int64, name string) error {
	tag, err := s.db.Exec(ctx, "UPDATE banks SET name = $2 WHERE id = $1", id, cleanName(name))
	if err != nil {
		return mapError("rename bank", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("bank", id)
	}
	return nil
}

func (s *Storage) DeleteBank(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM banks WHERE id = $1", id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &domain.ConflictError{Message: "bank still has cards"}
		}
		return mapError("delete bank", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("bank", id)
	}
	return nil
}

// === CategoryStorage ===

func (s *Storage) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.db.Query(ctx, `
		SELECT c.id, c.name, sc.id, sc.name
		FROM categories c
		LEFT JOIN sub_categories sc ON sc.category_id = c.id
		ORDER BY c.name, sc.name
	`)
	if err != nil {
		return nil, mapError("list categories", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	index := make(map[int64]int)
	for rows.Next() {
		var (
			catID   int64
			catName string
			subID   *int64
			subName *string
		)
		if err := rows.Scan(&catID, &catName, &subID, &subName); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}

		i, ok := index[catID]
		if !ok {
			categories = append(categories, domain.Category{ID: catID, Name: catName, SubCategories: []domain.SubCategory{}})
			i = len(categories) - 1
			index[catID] = i
		}
		if subID != nil {
			categories[i].SubCategories = append(categories[i].SubCategories, domain.SubCategory{
				ID:         *subID,
				CategoryID: catID,
				Name:       *subName,
			})
		}
	}
	return categories, mapError("list categories", rows.Err())
}

// GetCategory возвращает категорию вместе с подкатегориями.
func (s *Storage) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	cat := domain.Category{ID: id, SubCategories: []domain.SubCategory{}}
	err := s.db.QueryRow(ctx, "SELECT name FROM categories WHERE id = $1", id).Scan(&cat.Name)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.NotFound("category", id)
		}
		return nil, mapError("get category", err)
	}
	if err := s.loadSubCategories(ctx, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *Storage) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	cat := domain.Category{SubCategories: []domain.SubCategory{}}
	err := s.db.QueryRow(ctx, "SELECT id, name FROM categories WHERE name ILIKE $1", cleanName(name)).Scan(&cat.ID, &cat.Name)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.NotFound("category", name)
		}
		return nil, mapError("find category", err)
	}
	if err := s.loadSubCategories(ctx, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *Storage) loadSubCategories(ctx context.Context, cat *domain.Category) error {
	rows, err := s.db.Query(ctx, "SELECT id, name FROM sub_categories WHERE category_id = $1 ORDER BY name", cat.ID)
	if err != nil {
		return mapError("list sub-categories", err)
	}
	defer rows.Close()

	for rows.Next() {
		sc := domain.SubCategory{CategoryID: cat.ID}
		if err := rows.Scan(&sc.ID, &sc.Name); err != nil {
			return fmt.Errorf("scan sub-category: %w", err)
		}
		cat.SubCategories = append(cat.SubCategories, sc)
	}
	return mapError("list sub-categories", rows.Err())
}

func (s *Storage) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	cat := domain.Category{Name: cleanName(name), SubCategories: []domain.SubCategory{}}
	err := s.db.QueryRow(ctx, "INSERT INTO categories (name) VALUES ($1) RETURNING id", cat.Name).Scan(&cat.ID)
	if err != nil {
		return nil, mapError("create category", err)
	}
	return &cat, nil
}

func (s *Storage) RenameCategory(ctx context.Context, id int64, name string) error {
	tag, err := s.db.Exec(ctx, "UPDATE categories SET name = $2 WHERE id = $1", id, cleanName(name))
	if err != nil {
		return mapError("rename category", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("category", id)
	}
	return nil
}

func (s *Storage) DeleteCategory(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &domain.ConflictError{Message: "category is used by reward rules"}
		}
		return mapError("delete category", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("category", id)
	}
	return nil
}

func (s *Storage) CreateSubCategory(ctx context.Context, categoryID int64, name string) (*domain.SubCategory, error) {
	sc := domain.SubCategory{CategoryID: categoryID, Name: cleanName(name)}
	err := s.db.QueryRow(ctx, `
		INSERT INTO sub_categories (category_id, name) VALUES ($1, $2) RETURNING id
	`, categoryID, sc.Name).Scan(&sc.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NotFound("category", categoryID)
		}
		return nil, mapError("create sub-category", err)
	}
	return &sc, nil
}

func (s *Storage) DeleteSubCategory(ctx context.Context, categoryID, subCategoryID int64) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM sub_categories WHERE id = $1 AND category_id = $2", subCategoryID, categoryID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &domain.ConflictError{Message: "sub-category is used by reward rules"}
		}
		return mapError("delete sub-category", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("sub-category", subCategoryID)
	}
	return nil
}

// === CardStorage ===

const cardColumns = `c.id, c.name, c.annual_fee, c.reward_type, b.id, b.name`

func scanCard(row pgx.Row) (*domain.CreditCard, error) {
	var (
		card       domain.CreditCard
		rewardType string
	)
	if err := row.Scan(&card.ID, &card.Name, &card.AnnualFee, &rewardType, &card.Bank.ID, &card.Bank.Name); err != nil {
		return nil, err
	}
	kind, err := domain.ParseRewardType(rewardType)
	if err != nil {
		return nil, fmt.Errorf("card %d: %w", card.ID, err)
	}
	card.RewardType = kind
	return &card, nil
}

func (s *Storage) ListCards(ctx context.Context) ([]domain.CreditCard, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+cardColumns+`
		FROM credit_cards c
		JOIN banks b ON b.id = c.bank_id
		ORDER BY b.name, c.name
	`)
	if err != nil {
		return nil, mapError("list cards", err)
	}
	defer rows.Close()

	cards := []domain.CreditCard{}
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		cards = append(cards, *card)
	}
	return cards, mapError("list cards", rows.Err())
}

func (s *Storage) GetCard(ctx context.Context, id int64) (*domain.CreditCard, error) {
	card, err := scanCard(s.db.QueryRow(ctx, `
		SELECT `+cardColumns+`
		FROM credit_cards c
		JOIN banks b ON b.id = c.bank_id
		WHERE c.id = $1
	`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.NotFound("card", id)
		}
		return nil, mapError("get card", err)
	}
	return card, nil
}

func (s *Storage) CreateCard(ctx context.Context, in storage.CardInput) (*domain.CreditCard, error) {
	var id int64
	err := s.db.QueryRow(ctx, `
		INSERT INTO credit_cards (name, bank_id, annual_fee, reward_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, cleanName(in.Name), in.BankID, in.AnnualFee, in.RewardType.String()).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NotFound("bank", in.BankID)
		}
		return nil, mapError("create card", err)
	}
	return s.GetCard(ctx, id)
}

func (s *Storage) UpdateCard(ctx context.Context, id int64, in storage.CardInput) (*domain.CreditCard, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE credit_cards
		SET name = $2, bank_id = $3, annual_fee = $4, reward_type = $5
		WHERE id = $1
	`, id, cleanName(in.Name), in.BankID, in.AnnualFee, in.RewardType.String())
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NotFound("bank", in.BankID)
		}
		return nil, mapError("update card", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.NotFound("card", id)
	}
	return s.GetCard(ctx, id)
}

// DeleteCard удаляет карту вместе с её правилами и картами пользователей (ON DELETE CASCADE).
func (s *Storage) DeleteCard(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM credit_cards WHERE id = $1", id)
	if err != nil {
		return mapError("delete card", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("card", id)
	}
	return nil
}
