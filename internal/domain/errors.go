// internal/domain/errors.go
package domain

import (
	"fmt"
	"strings"
)

// ValidationError: некорректный ввод, отклоняем до любых вычислений.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on '%s': %s", e.Field, e.Message)
}

type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func NotFound(resource string, id any) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: fmt.Sprint(id)}
}

// DataIntegrityError: несколько правил одинаково специфичны для запроса.
// Такого не должно быть при соблюдении уникальности, поэтому не угадываем.
type DataIntegrityError struct {
	CardID  int64
	RuleIDs []int64
}

func (e *DataIntegrityError) Error() string {
	ids := make([]string, len(e.RuleIDs))
	for i, id := range e.RuleIDs {
		ids[i] = fmt.Sprint(id)
	}
	return fmt.Sprintf("data integrity error: card %d has ambiguous reward rules [%s]", e.CardID, strings.Join(ids, ", "))
}

// TransientError: хранилище временно недоступно. Повтор безопасен на стороне вызывающего.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient error [%s]: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "unauthorized"
}

type ForbiddenError struct {
	Action string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("forbidden: %s", e.Action)
}
