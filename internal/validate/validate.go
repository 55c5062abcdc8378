package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"estoque/internal/domain"
)

const (
	maxText = 120
	// int64 cents tops out at 19 digits; stay well below it.
	maxPriceDigits = 15
	// Quantities fit a 32-bit INTEGER column on every driver.
	MaxQuantity = 999999999
)

var (
	reNonDigit = regexp.MustCompile(`[^0-9]`)
	reUint     = regexp.MustCompile(`^[0-9]{1,9}$`)
	reDigits   = regexp.MustCompile(`^[0-9]+$`)
	reID       = regexp.MustCompile(`^[0-9]{1,18}$`)
)

// Text trims s and enforces a non-empty, bounded display string.
func Text(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > maxText {
		return "", false
	}
	return s, true
}

// Quantity accepts a non-negative integer with optional surrounding spaces.
func Quantity(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if !reUint.MatchString(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// Price keeps only the digits of s and reads them as cents:
// "1050" and "R$ 10,50" both give 10.50.
func Price(s string) (decimal.Decimal, bool) {
	digits := reNonDigit.ReplaceAllString(s, "")
	if digits == "" || len(digits) > maxPriceDigits {
		return decimal.Zero, false
	}
	cents, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return decimal.Zero, false
	}
	return domain.CentsToPrice(cents), true
}

// ID parses a numeric product id. Whether it exists is for the store to say.
func ID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if !reID.MatchString(s) {
		return 0, false
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

const msgMaxQuantity = "Quantidade máxima é 999999999."

// overMax reports a well-formed integer that is simply too large.
func overMax(s string) bool {
	return reDigits.MatchString(strings.TrimSpace(s))
}

// NewProduct turns raw form fields into an insert command. Missing fields
// are reported together, the way the insert form always has.
func NewProduct(supplier, name, qty, price string) (domain.NewProduct, error) {
	if strings.TrimSpace(supplier) == "" || strings.TrimSpace(name) == "" ||
		strings.TrimSpace(qty) == "" || strings.TrimSpace(price) == "" {
		return domain.NewProduct{}, domain.Invalid("", "Todos os campos devem ser preenchidos.")
	}
	sup, ok := Text(supplier)
	if !ok {
		return domain.NewProduct{}, domain.Invalid("fornecedor", "Fornecedor inválido.")
	}
	nm, ok := Text(name)
	if !ok {
		return domain.NewProduct{}, domain.Invalid("produto", "Nome do produto inválido.")
	}
	q, ok := Quantity(qty)
	if !ok && overMax(qty) {
		return domain.NewProduct{}, domain.Invalid("quantidade", msgMaxQuantity)
	}
	if !ok {
		return domain.NewProduct{}, domain.Invalid("quantidade", "Quantidade deve ser um número inteiro não negativo.")
	}
	p, ok := Price(price)
	if !ok {
		return domain.NewProduct{}, domain.Invalid("preco", "Preço inválido.")
	}
	return domain.NewProduct{Supplier: sup, Name: nm, Quantity: q, UnitPrice: p}, nil
}

// Removal turns raw form fields into a removal command.
func Removal(productID, amount string) (domain.Removal, error) {
	if strings.TrimSpace(productID) == "" || strings.TrimSpace(amount) == "" {
		return domain.Removal{}, domain.Invalid("", "Preencha todos os campos.")
	}
	id, ok := ID(productID)
	if !ok {
		return domain.Removal{}, domain.Invalid("produto_id", "Produto inválido.")
	}
	n, ok := Quantity(amount)
	if !ok && overMax(amount) {
		return domain.Removal{}, domain.Invalid("quantidade", msgMaxQuantity)
	}
	if !ok || n < 1 {
		return domain.Removal{}, domain.Invalid("quantidade", "Quantidade deve ser um número inteiro positivo.")
	}
	return domain.Removal{ProductID: id, Amount: n}, nil
}
