package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato con el que se persiste y se muestra la fecha de la factura.
const DateLayout = "2006-01-02 15:04:05"

// Invoice representa una factura: un único ítem con cantidad, precio y total.
// El ID lo asigna el almacén al insertar; Filename se deriva del ID dentro de
// la misma transacción, de modo que dos facturas nunca comparten archivo.
type Invoice struct {
	ID            int64
	CustomerName  string
	CustomerEmail string
	Item          string
	Quantity      int64
	Price         decimal.Decimal
	Total         decimal.Decimal // Quantity × Price, calculado al crear; no se recalcula después
	Date          time.Time
	Filename      string // nombre del PDF generado; vacío en filas anteriores a la columna
}

// ComputeTotal fija Total = Price × Quantity.
func (i *Invoice) ComputeTotal() {
	i.Total = i.Price.Mul(decimal.NewFromInt(i.Quantity))
}

// DateString devuelve la fecha en el formato persistido (YYYY-MM-DD HH:MM:SS).
func (i *Invoice) DateString() string {
	return i.Date.Format(DateLayout)
}

// PDFFileName deriva el nombre del PDF a partir del ID asignado y la fecha.
// El ID garantiza unicidad aunque dos facturas se creen en el mismo segundo.
func (i *Invoice) PDFFileName() string {
	return fmt.Sprintf("invoice_%d_%s.pdf", i.ID, i.Date.Format("20060102150405"))
}
