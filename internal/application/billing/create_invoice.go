package billing

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/facturador/internal/application/dto"
	"github.com/tu-usuario/facturador/internal/domain"
	"github.com/tu-usuario/facturador/internal/domain/entity"
	"github.com/tu-usuario/facturador/internal/domain/repository"
)

// CreateInvoiceUseCase crea la factura: valida y parsea el formulario, inserta
// la fila (el almacén asigna ID y filename), genera el PDF y lo escribe en la
// carpeta de facturas. Si el PDF falla después del insert, elimina la fila
// para no dejar registros apuntando a archivos que nunca existieron.
type CreateInvoiceUseCase struct {
	repo     repository.InvoiceRepository
	renderer InvoicePDFRenderer
	files    FileStore
	now      func() time.Time
}

// NewCreateInvoiceUseCase construye el caso de uso.
func NewCreateInvoiceUseCase(repo repository.InvoiceRepository, renderer InvoicePDFRenderer, files FileStore) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		repo:     repo,
		renderer: renderer,
		files:    files,
		now:      time.Now,
	}
}

// Create procesa una petición de creación. Devuelve la factura persistida y
// los bytes del PDF listos para enviarse como adjunto.
func (uc *CreateInvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*entity.Invoice, []byte, error) {
	inv, err := uc.parse(in)
	if err != nil {
		return nil, nil, err
	}

	// La fecha se fija una sola vez y se persiste truncada a segundos,
	// igual que se muestra en el documento.
	inv.Date = uc.now().Truncate(time.Second)
	inv.ComputeTotal()

	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, nil, fmt.Errorf("crear factura: %w", err)
	}

	pdfBytes, err := uc.renderer.Render(ctx, inv)
	if err != nil {
		uc.compensate(ctx, inv)
		return nil, nil, fmt.Errorf("generar PDF de factura %d: %w", inv.ID, err)
	}
	if err := uc.files.Save(inv.Filename, pdfBytes); err != nil {
		uc.compensate(ctx, inv)
		return nil, nil, fmt.Errorf("guardar PDF de factura %d: %w", inv.ID, err)
	}

	return inv, pdfBytes, nil
}

// parse valida los cinco campos del formulario. Cualquier fallo de parseo se
// rechaza con ErrInvalidInput antes de cualquier escritura.
func (uc *CreateInvoiceUseCase) parse(in dto.CreateInvoiceRequest) (*entity.Invoice, error) {
	name := strings.TrimSpace(in.CustomerName)
	email := strings.TrimSpace(in.CustomerEmail)
	item := strings.TrimSpace(in.Item)
	if name == "" || email == "" || item == "" {
		return nil, fmt.Errorf("%w: customer_name, customer_email e item son obligatorios", domain.ErrInvalidInput)
	}

	quantity, err := strconv.ParseInt(strings.TrimSpace(in.Quantity), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: quantity debe ser un entero: %q", domain.ErrInvalidInput, in.Quantity)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if err != nil {
		return nil, fmt.Errorf("%w: price debe ser numérico: %q", domain.ErrInvalidInput, in.Price)
	}

	return &entity.Invoice{
		CustomerName:  name,
		CustomerEmail: email,
		Item:          item,
		Quantity:      quantity,
		Price:         price,
	}, nil
}

// compensate revierte el insert cuando la generación o escritura del PDF falló.
// Un fallo del propio delete no oculta el error original; solo queda registrado
// en el error de la capa superior.
func (uc *CreateInvoiceUseCase) compensate(ctx context.Context, inv *entity.Invoice) {
	_ = uc.files.Remove(inv.Filename)
	_ = uc.repo.Delete(ctx, inv.ID)
}
