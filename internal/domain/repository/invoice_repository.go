package repository

import (
	"context"

	"github.com/tu-usuario/facturador/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para facturas.
type InvoiceRepository interface {
	// Create inserta la factura en una sola transacción: asigna el ID
	// autoincremental, deriva el nombre del PDF a partir de ese ID y lo
	// persiste en la misma fila. Al retornar, inv.ID e inv.Filename están poblados.
	Create(ctx context.Context, inv *entity.Invoice) error
	// ListAll devuelve todas las facturas ordenadas por ID descendente (más reciente primero).
	ListAll(ctx context.Context) ([]*entity.Invoice, error)
	// Delete elimina una fila; se usa como compensación cuando la generación
	// del PDF falla después del insert.
	Delete(ctx context.Context, id int64) error
}
