// internal/storage/postgres/postgres.go
package postgres

import (
	"strings"
	"unicode"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Storage реализует все интерфейсы internal/storage поверх одного пула.
type Storage struct {
	db *pgxpool.Pool
}

func NewStorage(db *pgxpool.Pool) *Storage {
	return &Storage{db: db}
}

// cleanName очищает название от невидимых и проблемных символов.
// Telegram и копипаста из банковских приложений приносят NO-BREAK SPACE и управляющие символы.
func cleanName(s string) string {
	result := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			result = append(result, ' ')
		case unicode.IsControl(r), r == unicode.ReplacementChar:
			// пропускаем
		case unicode.IsPrint(r):
			result = append(result, r)
		}
	}
	return strings.Join(strings.Fields(string(result)), " ")
}
