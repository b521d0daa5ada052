package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/facturador/internal/domain/entity"
)

// Total = cantidad × precio con aritmética decimal exacta.
func TestComputeTotal(t *testing.T) {
	inv := &entity.Invoice{
		Quantity: 3,
		Price:    decimal.RequireFromString("19.99"),
	}
	inv.ComputeTotal()

	assert.Equal(t, "59.97", inv.Total.StringFixed(2))
	assert.True(t, inv.Total.Equal(decimal.RequireFromString("59.97")), "sin deriva de flotantes")
}

// El nombre del PDF lleva el ID y la fecha compacta.
func TestPDFFileName(t *testing.T) {
	inv := &entity.Invoice{
		ID:   42,
		Date: time.Date(2024, 1, 15, 10, 30, 0, 0, time.Local),
	}

	assert.Equal(t, "invoice_42_20240115103000.pdf", inv.PDFFileName())
}

// DateString usa el formato persistido YYYY-MM-DD HH:MM:SS.
func TestDateString(t *testing.T) {
	inv := &entity.Invoice{
		Date: time.Date(2024, 1, 15, 10, 30, 5, 0, time.Local),
	}

	assert.Equal(t, "2024-01-15 10:30:05", inv.DateString())
}
