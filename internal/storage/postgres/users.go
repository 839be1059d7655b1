package postgres

import (
	"card-rewards/internal/domain"
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

// === UserStorage ===

const userColumns = `id, COALESCE(email, ''), password_hash, role, telegram_id, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &role, &u.TelegramID, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.Role = domain.Role(role)
	return &u, nil
}

func (s *Storage) CreateUser(ctx context.Context, email, passwordHash string, role domain.Role) (*domain.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING `+userColumns,
		normalizeEmail(email), passwordHash, string(role),
	))
	if err != nil {
		return nil, mapError("create user", err)
	}
	return u, nil
}

func (s *Storage) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", normalizeEmail(email)))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.NotFound("user", email)
		}
		return nil, mapError("find user", err)
	}
	return u, nil
}

func (s *Storage) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.NotFound("user", id)
		}
		return nil, mapError("get user", err)
	}
	return u, nil
}

// EnsureTelegramUser создаёт пользователя при первом сообщении боту.
func (s *Storage) EnsureTelegramUser(ctx context.Context, telegramID int64) (*domain.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx, `
		INSERT INTO users (telegram_id) VALUES ($1)
		ON CONFLICT (telegram_id) DO UPDATE SET telegram_id = EXCLUDED.telegram_id
		RETURNING `+userColumns,
		telegramID,
	))
	if err != nil {
		return nil, mapError("ensure telegram user", err)
	}
	return u, nil
}

// UpsertAdmin создаёт администратора или повышает существующего пользователя.
func (s *Storage) UpsertAdmin(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, role)
		VALUES ($1, $2, 'admin')
		ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash, role = 'admin'
		RETURNING `+userColumns,
		normalizeEmail(email), passwordHash,
	))
	if err != nil {
		return nil, mapError("upsert admin", err)
	}
	return u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
