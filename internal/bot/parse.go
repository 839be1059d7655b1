package bot

import (
	"card-rewards/internal/domain"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
)

// fixEncoding чинит текст, пришедший в windows-1251 вместо UTF-8.
func fixEncoding(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	decoder := charmap.Windows1251.NewDecoder()
	fixed, err := decoder.String(s)
	if err == nil && utf8.ValidString(fixed) {
		return fixed
	}

	return strings.ToValidUTF8(s, "")
}

// splitCommand: "/best@my_bot 100 Taxi" → "/best", "100 Taxi".
func splitCommand(text string) (string, string) {
	cmd, args, _ := strings.Cut(text, " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	return strings.ToLower(cmd), strings.Join(strings.Fields(args), " ")
}

type bestQuery struct {
	Amount          decimal.Decimal
	Category        string
	SubCategory     string
	TransactionType domain.TransactionType
}

// parseBest разбирает "<сумма> <категория>[/<подкатегория>] [online|offline]".
// Без типа покупка считается офлайн.
func parseBest(args string) (bestQuery, error) {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		return bestQuery{}, fmt.Errorf("используй: /best <сумма> <категория>[/<подкатегория>] [online|offline]")
	}

	amount, err := parseAmount(fields[0])
	if err != nil {
		return bestQuery{}, err
	}

	q := bestQuery{Amount: amount, TransactionType: domain.TxOffline}
	rest := fields[1:]
	if last := strings.ToLower(rest[len(rest)-1]); len(rest) > 1 && (last == "online" || last == "offline") {
		q.TransactionType, _ = domain.ParseTransactionType(last)
		rest = rest[:len(rest)-1]
	}

	category, sub, _ := strings.Cut(strings.Join(rest, " "), "/")
	q.Category = strings.TrimSpace(category)
	q.SubCategory = strings.TrimSpace(sub)
	if q.Category == "" {
		return bestQuery{}, fmt.Errorf("укажи категорию")
	}
	return q, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("неверная сумма: %q", s)
	}
	return amount, nil
}

type addCardArgs struct {
	CardID      int64
	Last4       string
	ExpiryMonth int
	ExpiryYear  int
}

// parseAddCard разбирает "<id карты> <последние 4 цифры> <ММ/ГГ>".
func parseAddCard(args string) (addCardArgs, error) {
	fields := strings.Fields(args)
	if len(fields) != 3 {
		return addCardArgs{}, fmt.Errorf("используй: /addcard <id карты> <последние 4 цифры> <ММ/ГГ>")
	}

	cardID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil || cardID <= 0 {
		return addCardArgs{}, fmt.Errorf("неверный id карты: %q", fields[0])
	}

	mm, yy, ok := strings.Cut(fields[2], "/")
	month, errM := strconv.Atoi(mm)
	year, errY := strconv.Atoi(yy)
	if !ok || errM != nil || errY != nil {
		return addCardArgs{}, fmt.Errorf("срок действия в формате ММ/ГГ: %q", fields[2])
	}

	return addCardArgs{CardID: cardID, Last4: fields[1], ExpiryMonth: month, ExpiryYear: year}, nil
}

func parseID(args string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(args), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("укажи id: %q", args)
	}
	return id, nil
}
