package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("Produto não encontrado.")

// ValidationError is a user-correctable input problem; Msg is shown as is.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return e.Msg }

func Invalid(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}

type InsufficientStockError struct {
	ProductID int64
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Apenas %d em estoque.", e.Available)
}
