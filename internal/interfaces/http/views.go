package http

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pages plantillas HTML embebidas en el binario (formulario e historial).
var pages = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// renderPage ejecuta una plantilla y envía el HTML resultante.
func renderPage(c *fiber.Ctx, name string, data any) error {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
