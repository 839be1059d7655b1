package service

import (
	"card-rewards/internal/auth"
	"card-rewards/internal/domain"
	"card-rewards/internal/storage"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
)

const minPasswordLen = 8

var errBadCredentials = &domain.UnauthorizedError{Message: "invalid email or password"}

type AuthService struct {
	users  storage.UserStorage
	tokens *auth.TokenService
}

func NewAuthService(users storage.UserStorage, tokens *auth.TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register создаёт обычного пользователя и сразу выдаёт токен.
func (s *AuthService) Register(ctx context.Context, email, password string) (string, *domain.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return "", nil, err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", nil, err
	}
	user, err := s.users.CreateUser(ctx, email, hash, domain.RoleUser)
	if err != nil {
		return "", nil, err
	}
	token, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	slog.Info("user registered", "user_id", user.ID)
	return token, user, nil
}

// Login не различает "нет пользователя" и "неверный пароль".
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return "", errBadCredentials
		}
		return "", err
	}
	if user.PasswordHash == "" {
		return "", errBadCredentials
	}
	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return "", errBadCredentials
		}
		return "", err
	}
	return s.tokens.GenerateToken(user.ID, user.Role)
}

// SeedAdmin создаёт администратора из конфигурации или повышает существующего пользователя.
func (s *AuthService) SeedAdmin(ctx context.Context, email, password string) error {
	if err := validateCredentials(email, password); err != nil {
		return err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	user, err := s.users.UpsertAdmin(ctx, email, hash)
	if err != nil {
		return err
	}
	slog.Info("admin ensured", "user_id", user.ID)
	return nil
}

// TelegramUser: пользователь, от имени которого работает бот.
func (s *AuthService) TelegramUser(ctx context.Context, telegramID int64) (*domain.User, error) {
	return s.users.EnsureTelegramUser(ctx, telegramID)
}

func validateCredentials(email, password string) error {
	if _, err := mail.ParseAddress(strings.TrimSpace(email)); err != nil {
		return &domain.ValidationError{Field: "email", Message: "must be a valid email"}
	}
	if len(password) < minPasswordLen {
		return &domain.ValidationError{Field: "password", Message: fmt.Sprintf("must be at least %d characters", minPasswordLen)}
	}
	return nil
}
