package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateItem = errors.New("DUPLICATE_ITEM")
	ErrItemNotFound  = errors.New("ITEM_NOT_FOUND")
	ErrUserNotFound  = errors.New("USER_NOT_FOUND")
)

// ValidationError membawa detail per-field supaya client bisa menampilkan
// pesan di masing-masing input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validasi gagal (" + strings.Join(parts, "; ") + ")"
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

// InsufficientStockError dikembalikan saat transaksi keluar melebihi stok
// tersedia. Stok item tidak berubah saat error ini terjadi.
type InsufficientStockError struct {
	ItemName  string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Stok tidak mencukupi. Tersedia: %d, diminta: %d", e.Available, e.Requested)
}
