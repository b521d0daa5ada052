package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/facturador/internal/application/billing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CreateInvoice *billing.CreateInvoiceUseCase
	History       *billing.HistoryUseCase
	Download      *billing.DownloadUseCase
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	handler := NewInvoiceHandler(deps.CreateInvoice, deps.History, deps.Download)

	app.Get("/", handler.Home)
	app.Post("/create_invoice", handler.Create)
	app.Get("/history", handler.History)
	app.Get("/download/:filename", handler.Download)
}
