// Package sqlite implementa la persistencia sobre un archivo SQLite
// (driver puro Go modernc.org/sqlite, sin cgo).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/tu-usuario/facturador/pkg/config"
)

// Open abre (o crea) el archivo de base de datos y verifica la conexión.
// busy_timeout evita errores SQLITE_BUSY con escrituras concurrentes sobre el mismo archivo.
func Open(ctx context.Context, cfg config.StoreConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping base de datos: %w", err)
	}
	return db, nil
}
