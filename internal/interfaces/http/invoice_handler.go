package http

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/facturador/internal/application/billing"
	"github.com/tu-usuario/facturador/internal/application/dto"
	"github.com/tu-usuario/facturador/internal/domain"
)

// InvoiceHandler maneja las peticiones HTTP de facturación.
type InvoiceHandler struct {
	createUC   *billing.CreateInvoiceUseCase
	historyUC  *billing.HistoryUseCase
	downloadUC *billing.DownloadUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(createUC *billing.CreateInvoiceUseCase, historyUC *billing.HistoryUseCase, downloadUC *billing.DownloadUseCase) *InvoiceHandler {
	return &InvoiceHandler{
		createUC:   createUC,
		historyUC:  historyUC,
		downloadUC: downloadUC,
	}
}

// Home muestra el formulario de creación de facturas.
// GET /
func (h *InvoiceHandler) Home(c *fiber.Ctx) error {
	return renderPage(c, "index.html", nil)
}

// Create crea una factura, genera su PDF y lo devuelve como adjunto.
// POST /create_invoice
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo del formulario inválido"})
	}
	inv, pdfBytes, err := h.createUC.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", inv.Filename))
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}

// History muestra el listado de todas las facturas, la más reciente primero.
// GET /history
func (h *InvoiceHandler) History(c *fiber.Ctx) error {
	rows, err := h.historyUC.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return renderPage(c, "history.html", fiber.Map{"Invoices": rows})
}

// Download descarga un PDF generado previamente.
// GET /download/:filename
func (h *InvoiceHandler) Download(c *fiber.Ctx) error {
	name := c.Params("filename")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	path, err := h.downloadUC.Open(c.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre de archivo inválido"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	// Download adjunta el archivo y cierra el handle al terminar la respuesta.
	return c.Download(path, name)
}
