package billing

import (
	"context"
	"fmt"

	"github.com/tu-usuario/facturador/internal/application/dto"
	"github.com/tu-usuario/facturador/internal/domain/repository"
)

// HistoryUseCase listado de todas las facturas creadas (solo lectura).
type HistoryUseCase struct {
	repo     repository.InvoiceRepository
	currency string
}

// NewHistoryUseCase construye el caso de uso. currency es el símbolo que
// antecede a los importes en el listado.
func NewHistoryUseCase(repo repository.InvoiceRepository, currency string) *HistoryUseCase {
	return &HistoryUseCase{repo: repo, currency: currency}
}

// List devuelve todas las facturas, la más reciente primero, con los importes
// ya formateados a dos decimales.
func (uc *HistoryUseCase) List(ctx context.Context) ([]dto.InvoiceRow, error) {
	invoices, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}
	rows := make([]dto.InvoiceRow, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, dto.InvoiceRow{
			ID:            inv.ID,
			CustomerName:  inv.CustomerName,
			CustomerEmail: inv.CustomerEmail,
			Item:          inv.Item,
			Quantity:      inv.Quantity,
			Price:         uc.currency + inv.Price.StringFixed(2),
			Total:         uc.currency + inv.Total.StringFixed(2),
			Date:          inv.DateString(),
			Filename:      inv.Filename,
		})
	}
	return rows, nil
}
