package billing

import (
	"context"

	"github.com/tu-usuario/facturador/internal/domain/entity"
)

// InvoicePDFRenderer genera el documento PDF de una factura y devuelve sus bytes.
type InvoicePDFRenderer interface {
	Render(ctx context.Context, inv *entity.Invoice) ([]byte, error)
}

// FileStore materializa los PDF en disco y resuelve nombres para descarga.
// Resolve valida el nombre (sin separadores ni "..") y retorna la ruta solo si
// el archivo existe.
type FileStore interface {
	Save(name string, data []byte) error
	Resolve(name string) (string, error)
	Remove(name string) error
}
