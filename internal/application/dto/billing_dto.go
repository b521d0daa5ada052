package dto

// CreateInvoiceRequest campos del formulario POST /create_invoice.
// Quantity y Price llegan como texto del formulario; el caso de uso los parsea
// y rechaza con error de validación antes de tocar la base de datos.
type CreateInvoiceRequest struct {
	CustomerName  string `form:"customer_name"`
	CustomerEmail string `form:"customer_email"`
	Item          string `form:"item"`
	Quantity      string `form:"quantity"`
	Price         string `form:"price"`
}

// InvoiceRow fila del listado /history.
type InvoiceRow struct {
	ID            int64
	CustomerName  string
	CustomerEmail string
	Item          string
	Quantity      int64
	Price         string // formateado a dos decimales
	Total         string // formateado a dos decimales
	Date          string
	Filename      string // vacío en filas anteriores a la columna filename
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
