package postgres

import (
	"card-rewards/internal/domain"
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Коды SQLSTATE, которые разбираем отдельно.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeSerialization       = "40001"
	codeDeadlock            = "40P01"
	codeTooManyConnections  = "53300"
	codeAdminShutdown       = "57P01"
	codeCannotConnectNow    = "57P03"
)

// mapError переводит ошибки pgx в доменные.
// pgx.ErrNoRows здесь не обрабатывается: ресурс знает только вызывающий.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == codeUniqueViolation:
			return &domain.ConflictError{Message: conflictMessage(pgErr)}
		case pgErr.Code == codeForeignKeyViolation:
			return &domain.ValidationError{Field: constraintField(pgErr), Message: "references a record that does not exist"}
		case pgErr.Code == codeCheckViolation:
			return &domain.ValidationError{Field: constraintField(pgErr), Message: "violates check constraint " + pgErr.ConstraintName}
		case isTransientCode(pgErr.Code):
			return &domain.TransientError{Op: op, Err: err}
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if isTransient(err) {
		return &domain.TransientError{Op: op, Err: err}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isTransientCode(code string) bool {
	// класс 08: ошибки соединения
	if strings.HasPrefix(code, "08") {
		return true
	}
	switch code {
	case codeSerialization, codeDeadlock, codeTooManyConnections, codeAdminShutdown, codeCannotConnectNow:
		return true
	}
	return false
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func conflictMessage(pgErr *pgconn.PgError) string {
	switch pgErr.ConstraintName {
	case "reward_rules_scope_uniq":
		return "a rule for this card, category, sub-category and transaction type already exists"
	case "user_credit_cards_user_id_card_id_last4_key":
		return "this card is already in your wallet"
	case "users_email_key":
		return "email is already registered"
	}
	if pgErr.TableName != "" {
		return pgErr.TableName + ": record already exists"
	}
	return "record already exists"
}

// constraintField угадывает поле запроса по имени ограничения (<table>_<column>_fkey).
func constraintField(pgErr *pgconn.PgError) string {
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	name := strings.TrimPrefix(pgErr.ConstraintName, pgErr.TableName+"_")
	for _, suffix := range []string{"_fkey", "_check"} {
		name = strings.TrimSuffix(name, suffix)
	}
	if name == "" {
		return "request"
	}
	return name
}
