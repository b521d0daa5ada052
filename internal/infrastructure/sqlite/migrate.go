package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// migration es un paso de esquema con nombre. Cada paso debe ser idempotente:
// Migrate se ejecuta completo en cada arranque, sin tabla de control de versiones.
type migration struct {
	name  string
	apply func(ctx context.Context, tx *sql.Tx) error
}

// migrations se aplica en orden. Nunca eliminar ni reordenar pasos ya publicados.
var migrations = []migration{
	{name: "create_invoices_table", apply: createInvoicesTable},
	{name: "add_filename_column", apply: addFilenameColumn},
}

// Migrate lleva el esquema al estado esperado. Es seguro invocarlo en cada
// arranque sobre cualquier estado previo de la tabla: crea cuando falta,
// agrega solo la columna ausente y nunca toca filas existentes.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, m := range migrations {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("migración %s: begin: %w", m.name, err)
		}
		if err := m.apply(ctx, tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migración %s: %w", m.name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("migración %s: commit: %w", m.name, err)
		}
	}
	return nil
}

// createInvoicesTable crea la tabla con la estructura original (sin filename).
func createInvoicesTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS invoices (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			customer_name  TEXT,
			customer_email TEXT,
			item           TEXT,
			quantity       INTEGER,
			price          REAL,
			total          REAL,
			date           TEXT
		)`)
	return err
}

// addFilenameColumn agrega la columna filename si la tabla es anterior a ella.
// Las filas existentes quedan con NULL; nunca se duplica la columna.
func addFilenameColumn(ctx context.Context, tx *sql.Tx) error {
	has, err := hasColumn(ctx, tx, "invoices", "filename")
	if err != nil {
		return err
	}
	if has {
		return nil
	}
	_, err = tx.ExecContext(ctx, `ALTER TABLE invoices ADD COLUMN filename TEXT`)
	return err
}

// hasColumn consulta PRAGMA table_info para saber si la columna ya existe.
func hasColumn(ctx context.Context, tx *sql.Tx, table, column string) (bool, error) {
	rows, err := tx.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("table_info %s: %w", table, err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &defaultVal, &pk); err != nil {
			return false, fmt.Errorf("scan table_info: %w", err)
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
