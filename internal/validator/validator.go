// internal/validator/validator.go
package validator

import (
	"card-rewards/internal/domain"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var Validate *validator.Validate

var (
	nonBlank  = regexp.MustCompile(`\S`)
	fourDigit = regexp.MustCompile(`^[0-9]{4}$`)
)

func init() {
	Validate = validator.New()

	// В ошибках используем имена из json-тегов
	Validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	// decimal.Decimal проверяем как строку, NullDecimal без значения: как пустое поле
	Validate.RegisterCustomTypeFunc(func(v reflect.Value) interface{} {
		if d, ok := v.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	Validate.RegisterCustomTypeFunc(func(v reflect.Value) interface{} {
		if d, ok := v.Interface().(decimal.NullDecimal); ok && d.Valid {
			return d.Decimal.String()
		}
		return nil
	}, decimal.NullDecimal{})

	// Строка не пустая и не только пробелы
	_ = Validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return nonBlank.MatchString(fl.Field().String())
	})

	// Последние 4 цифры карты
	_ = Validate.RegisterValidation("last4", func(fl validator.FieldLevel) bool {
		return fourDigit.MatchString(fl.Field().String())
	})

	// Тип покупки: только ONLINE / OFFLINE
	_ = Validate.RegisterValidation("txtype", func(fl validator.FieldLevel) bool {
		t, err := domain.ParseTransactionType(fl.Field().String())
		return err == nil && t.IsQueryType()
	})

	// Scope правила: ONLINE / OFFLINE / BOTH
	_ = Validate.RegisterValidation("rulescope", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseTransactionType(fl.Field().String())
		return err == nil
	})

	_ = Validate.RegisterValidation("rewardtype", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseRewardType(fl.Field().String())
		return err == nil
	})

	_ = Validate.RegisterValidation("decimalpos", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive()
	})

	_ = Validate.RegisterValidation("decimalnonneg", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && !d.IsNegative()
	})
}

// Struct валидирует v и собирает ошибки в одну понятную строку.
// Первая ошибка возвращается как *domain.ValidationError.
func Struct(v any) error {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &domain.ValidationError{Field: "request", Message: err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fieldErrorToString(e))
	}
	return &domain.ValidationError{Field: verrs[0].Field(), Message: strings.Join(msgs, "; ")}
}

func fieldErrorToString(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", e.Field())
	case "last4":
		return fmt.Sprintf("%s must be exactly 4 digits", e.Field())
	case "txtype":
		return fmt.Sprintf("%s must be ONLINE or OFFLINE", e.Field())
	case "rulescope":
		return fmt.Sprintf("%s must be ONLINE, OFFLINE or BOTH", e.Field())
	case "rewardtype":
		return fmt.Sprintf("%s must be CASHBACK, POINTS or MILES", e.Field())
	case "decimalpos", "gt":
		return fmt.Sprintf("%s must be greater than 0", e.Field())
	case "decimalnonneg":
		return fmt.Sprintf("%s must not be negative", e.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", e.Field())
	case "min":
		if e.Param() == "1" {
			return fmt.Sprintf("%s must not be empty", e.Field())
		}
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
