package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/facturador/internal/domain"
	"github.com/tu-usuario/facturador/internal/domain/entity"
	"github.com/tu-usuario/facturador/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre SQLite.
type InvoiceRepo struct {
	db *sql.DB
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(db *sql.DB) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

// Create inserta la factura y resuelve su filename en una sola transacción.
// El nombre del PDF se deriva del ID autoincremental recién asignado, así que
// dos peticiones en el mismo segundo nunca colisionan en archivo.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", domain.ErrStorage, err)
	}
	defer tx.Rollback()

	const insert = `
		INSERT INTO invoices (customer_name, customer_email, item, quantity, price, total, date, filename)
		VALUES (?, ?, ?, ?, ?, ?, ?, '')
		RETURNING id`
	err = tx.QueryRowContext(ctx, insert,
		inv.CustomerName, inv.CustomerEmail, inv.Item,
		inv.Quantity, inv.Price.String(), inv.Total.String(), inv.DateString(),
	).Scan(&inv.ID)
	if err != nil {
		return fmt.Errorf("%w: insert invoice: %v", domain.ErrStorage, err)
	}

	inv.Filename = inv.PDFFileName()
	if _, err := tx.ExecContext(ctx, `UPDATE invoices SET filename = ? WHERE id = ?`, inv.Filename, inv.ID); err != nil {
		return fmt.Errorf("%w: set filename: %v", domain.ErrStorage, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrStorage, err)
	}
	return nil
}

// ListAll devuelve todas las facturas, la más reciente primero.
func (r *InvoiceRepo) ListAll(ctx context.Context) ([]*entity.Invoice, error) {
	const query = `
		SELECT id, customer_name, customer_email, item, quantity, price, total, date, filename
		FROM invoices ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: list invoices: %v", domain.ErrStorage, err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterar filas: %v", domain.ErrStorage, err)
	}
	return list, nil
}

// Delete elimina una fila por ID (compensación cuando el PDF no se pudo generar).
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%w: delete invoice %d: %v", domain.ErrStorage, id, err)
	}
	return nil
}

func scanInvoice(rows *sql.Rows) (*entity.Invoice, error) {
	var (
		inv          entity.Invoice
		price, total float64
		date         string
		filename     sql.NullString // NULL en filas anteriores a la columna
	)
	if err := rows.Scan(
		&inv.ID, &inv.CustomerName, &inv.CustomerEmail, &inv.Item,
		&inv.Quantity, &price, &total, &date, &filename,
	); err != nil {
		return nil, fmt.Errorf("%w: scan invoice: %v", domain.ErrStorage, err)
	}
	inv.Price = decimal.NewFromFloat(price)
	inv.Total = decimal.NewFromFloat(total)
	inv.Filename = filename.String
	if t, err := time.ParseInLocation(entity.DateLayout, date, time.Local); err == nil {
		inv.Date = t
	}
	return &inv, nil
}
