// Package pdf genera el documento de factura de una página con Maroto v2.
//
// Layout de la página A4, de arriba hacia abajo:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la empresa (bold) + línea de contacto     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Título centrado: INVOICE                                    │
//	│  Bill To: nombre / email / fecha                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Item | Quantity | Unit Price | Total (una sola fila) │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Total Amount: $X.XX (bold)                                  │
//	│  Thank you for your business! (italic)                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	mcfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/facturador/internal/domain/entity"
	"github.com/tu-usuario/facturador/pkg/config"
)

var (
	colorDark = &props.Color{Red: 30, Green: 30, Blue: 30}
	colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoInvoiceRenderer implementa billing.InvoicePDFRenderer usando Maroto v2.
type MarotoInvoiceRenderer struct {
	company config.CompanyConfig
}

// NewMarotoInvoiceRenderer construye el renderer con los datos del emisor.
func NewMarotoInvoiceRenderer(company config.CompanyConfig) *MarotoInvoiceRenderer {
	return &MarotoInvoiceRenderer{company: company}
}

// Render genera el PDF de la factura y devuelve sus bytes.
// La factura siempre tiene exactamente un ítem, así que la tabla lleva una
// única fila de datos y el documento nunca pasa de una página.
func (g *MarotoInvoiceRenderer) Render(_ context.Context, inv *entity.Invoice) ([]byte, error) {
	cfg := mcfg.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 12}).
		WithTitle("Invoice", true).
		WithAuthor(g.company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRows()...)
	m.AddRows(titleRow())
	m.AddRows(g.billToRows(inv)...)
	m.AddRows(g.tableRows(inv)...)
	m.AddRows(g.totalRow(inv))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRows: nombre de la empresa en bold y la línea de contacto debajo.
func (g *MarotoInvoiceRenderer) headerRows() []core.Row {
	return []core.Row{
		row.New(12).Add(col.New(12).Add(
			text.New(g.company.Name, props.Text{
				Style: fontstyle.Bold, Size: 24, Color: colorDark, Top: 1,
			}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New(g.company.ContactLine(), props.Text{
				Size: 12, Color: colorGray, Top: 1,
			}),
		)),
		line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}),
	}
}

// titleRow: título INVOICE centrado.
func titleRow() core.Row {
	return row.New(16).Add(col.New(12).Add(
		text.New("INVOICE", props.Text{
			Style: fontstyle.Bold, Size: 18, Align: align.Center, Top: 4,
		}),
	))
}

// billToRows: bloque del cliente (nombre, email y fecha de emisión).
func (g *MarotoInvoiceRenderer) billToRows(inv *entity.Invoice) []core.Row {
	value := func(s string) core.Row {
		return row.New(7).Add(col.New(12).Add(
			text.New(s, props.Text{Size: 12, Top: 1}),
		))
	}
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("Bill To:", props.Text{Style: fontstyle.Bold, Size: 12, Top: 2}),
		)),
		value("Name: " + inv.CustomerName),
		value("Email: " + inv.CustomerEmail),
		value("Date: " + inv.DateString()),
		row.New(4),
	}
}

// tableRows: cabecera bordeada con {Item, Quantity, Unit Price, Total} y la
// única fila de datos de la factura.
func (g *MarotoInvoiceRenderer) tableRows(inv *entity.Invoice) []core.Row {
	header := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	cell := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 11, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return []core.Row{
		line.NewRow(1, props.Line{Color: colorDark, Thickness: 0.4}),
		row.New(9).Add(
			header("Item", 6, align.Left),
			header("Quantity", 2, align.Center),
			header("Unit Price", 2, align.Center),
			header("Total", 2, align.Center),
		),
		line.NewRow(1, props.Line{Color: colorDark, Thickness: 0.4}),
		row.New(9).Add(
			cell(inv.Item, 6, align.Left),
			cell(fmt.Sprintf("%d", inv.Quantity), 2, align.Center),
			cell(g.money(inv.Price.StringFixed(2)), 2, align.Center),
			cell(g.money(inv.Total.StringFixed(2)), 2, align.Center),
		),
		line.NewRow(1, props.Line{Color: colorDark, Thickness: 0.4}),
	}
}

// totalRow: restatement del total en bold.
func (g *MarotoInvoiceRenderer) totalRow(inv *entity.Invoice) core.Row {
	return row.New(14).Add(col.New(12).Add(
		text.New("Total Amount: "+g.money(inv.Total.StringFixed(2)), props.Text{
			Style: fontstyle.Bold, Size: 14, Top: 5,
		}),
	))
}

// footerRow: línea de agradecimiento en itálica.
func footerRow() core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("Thank you for your business!", props.Text{
			Style: fontstyle.Italic, Size: 12, Top: 4, Color: colorGray,
		}),
	))
}

// money antepone el símbolo de moneda a un importe ya formateado a dos decimales.
func (g *MarotoInvoiceRenderer) money(amount string) string {
	return g.company.Currency + amount
}
