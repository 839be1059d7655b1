// Package service собирает движок вознаграждений, хранилище и инфраструктуру в операции API и бота.
package service

import (
	"card-rewards/internal/domain"
	"errors"
)

// Outcome: метка результата для метрик и логов.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var (
		verr      *domain.ValidationError
		notFound  *domain.NotFoundError
		integrity *domain.DataIntegrityError
		transient *domain.TransientError
	)
	switch {
	case errors.As(err, &verr):
		return "validation"
	case errors.As(err, &notFound):
		return "not_found"
	case errors.As(err, &integrity):
		return "data_integrity"
	case errors.As(err, &transient):
		return "transient"
	}
	return "error"
}

// IsTransient: повтор запроса может помочь.
func IsTransient(err error) bool {
	var transient *domain.TransientError
	return errors.As(err, &transient)
}

// checkSubCategory: подкатегория должна принадлежать выбранной категории.
func checkSubCategory(cat *domain.Category, subCategoryID *int64) error {
	if subCategoryID == nil {
		return nil
	}
	if !cat.HasSubCategory(*subCategoryID) {
		return &domain.ValidationError{Field: "sub_category_id", Message: "does not belong to the category"}
	}
	return nil
}
