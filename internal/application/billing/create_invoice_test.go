package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/facturador/internal/application/billing"
	"github.com/tu-usuario/facturador/internal/application/dto"
	"github.com/tu-usuario/facturador/internal/domain"
	"github.com/tu-usuario/facturador/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeRepo simula el almacén: asigna IDs secuenciales y deriva filename igual
// que el repositorio real.
type fakeRepo struct {
	nextID  int64
	rows    map[int64]*entity.Invoice
	deleted []int64
	failure error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, rows: map[int64]*entity.Invoice{}}
}

func (r *fakeRepo) Create(_ context.Context, inv *entity.Invoice) error {
	if r.failure != nil {
		return r.failure
	}
	inv.ID = r.nextID
	r.nextID++
	inv.Filename = inv.PDFFileName()
	cp := *inv
	r.rows[inv.ID] = &cp
	return nil
}

func (r *fakeRepo) ListAll(_ context.Context) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for id := r.nextID - 1; id >= 1; id-- {
		if inv, ok := r.rows[id]; ok {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	delete(r.rows, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeRenderer struct {
	failure error
	last    *entity.Invoice
}

func (f *fakeRenderer) Render(_ context.Context, inv *entity.Invoice) ([]byte, error) {
	f.last = inv
	if f.failure != nil {
		return nil, f.failure
	}
	return []byte("%PDF-fake"), nil
}

type fakeFiles struct {
	saved   map[string][]byte
	removed []string
	failure error
}

func newFakeFiles() *fakeFiles {
	return &fakeFiles{saved: map[string][]byte{}}
}

func (f *fakeFiles) Save(name string, data []byte) error {
	if f.failure != nil {
		return f.failure
	}
	f.saved[name] = data
	return nil
}

func (f *fakeFiles) Resolve(name string) (string, error) {
	if _, ok := f.saved[name]; !ok {
		return "", domain.ErrNotFound
	}
	return "/tmp/" + name, nil
}

func (f *fakeFiles) Remove(name string) error {
	f.removed = append(f.removed, name)
	delete(f.saved, name)
	return nil
}

func validRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		CustomerName:  "Acme",
		CustomerEmail: "a@acme.com",
		Item:          "Widget",
		Quantity:      "3",
		Price:         "19.99",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// El total debe ser exactamente cantidad × precio, sin deriva de flotantes.
func TestCreate_CalculaTotalExacto(t *testing.T) {
	repo := newFakeRepo()
	uc := billing.NewCreateInvoiceUseCase(repo, &fakeRenderer{}, newFakeFiles())

	inv, pdfBytes, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, inv)

	assert.Equal(t, "59.97", inv.Total.StringFixed(2), "3 × 19.99 debe dar 59.97")
	assert.Equal(t, int64(1), inv.ID, "el almacén asigna el primer ID")
	assert.NotEmpty(t, pdfBytes)
}

// El filename se deriva del ID asignado: dos creaciones consecutivas nunca
// comparten archivo aunque ocurran en el mismo segundo.
func TestCreate_FilenameUnicoPorID(t *testing.T) {
	repo := newFakeRepo()
	files := newFakeFiles()
	uc := billing.NewCreateInvoiceUseCase(repo, &fakeRenderer{}, files)

	first, _, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	second, _, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.Filename, second.Filename)
	assert.Contains(t, files.saved, first.Filename)
	assert.Contains(t, files.saved, second.Filename)
}

// Cantidad no numérica: rechazo antes de cualquier escritura.
func TestCreate_CantidadInvalidaNoEscribe(t *testing.T) {
	repo := newFakeRepo()
	uc := billing.NewCreateInvoiceUseCase(repo, &fakeRenderer{}, newFakeFiles())

	in := validRequest()
	in.Quantity = "abc"
	_, _, err := uc.Create(context.Background(), in)

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.rows, "no debe crearse ninguna fila con un parseo fallido")
}

// Precio no numérico: mismo rechazo.
func TestCreate_PrecioInvalidoNoEscribe(t *testing.T) {
	repo := newFakeRepo()
	uc := billing.NewCreateInvoiceUseCase(repo, &fakeRenderer{}, newFakeFiles())

	in := validRequest()
	in.Price = "mucho"
	_, _, err := uc.Create(context.Background(), in)

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.rows)
}

// Campos de texto vacíos también son entrada inválida.
func TestCreate_CamposVaciosRechazados(t *testing.T) {
	uc := billing.NewCreateInvoiceUseCase(newFakeRepo(), &fakeRenderer{}, newFakeFiles())

	in := validRequest()
	in.CustomerName = "   "
	_, _, err := uc.Create(context.Background(), in)

	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Si el PDF falla después del insert, la fila se elimina (compensación):
// nunca queda un registro apuntando a un archivo inexistente.
func TestCreate_CompensaCuandoFallaElPDF(t *testing.T) {
	repo := newFakeRepo()
	renderer := &fakeRenderer{failure: errors.New("disco lleno")}
	uc := billing.NewCreateInvoiceUseCase(repo, renderer, newFakeFiles())

	_, _, err := uc.Create(context.Background(), validRequest())

	require.Error(t, err)
	assert.Empty(t, repo.rows, "la fila insertada debe eliminarse")
	assert.Equal(t, []int64{1}, repo.deleted)
}

// Si la escritura del archivo falla, misma compensación.
func TestCreate_CompensaCuandoFallaLaEscritura(t *testing.T) {
	repo := newFakeRepo()
	files := newFakeFiles()
	files.failure = errors.New("carpeta no escribible")
	uc := billing.NewCreateInvoiceUseCase(repo, &fakeRenderer{}, files)

	_, _, err := uc.Create(context.Background(), validRequest())

	require.Error(t, err)
	assert.Empty(t, repo.rows)
}

// La fecha se persiste truncada a segundos, igual que se muestra.
func TestCreate_FechaTruncadaASegundos(t *testing.T) {
	repo := newFakeRepo()
	uc := billing.NewCreateInvoiceUseCase(repo, &fakeRenderer{}, newFakeFiles())

	inv, _, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, inv.Date.Truncate(time.Second), inv.Date)
	_, perr := time.ParseInLocation(entity.DateLayout, inv.DateString(), time.Local)
	assert.NoError(t, perr, "DateString debe tener el formato YYYY-MM-DD HH:MM:SS")
}

// El historial sale ordenado del más reciente al más antiguo y con los
// importes formateados a dos decimales con símbolo de moneda.
func TestHistory_OrdenYFormato(t *testing.T) {
	repo := newFakeRepo()
	createUC := billing.NewCreateInvoiceUseCase(repo, &fakeRenderer{}, newFakeFiles())
	historyUC := billing.NewHistoryUseCase(repo, "$")

	_, _, err := createUC.Create(context.Background(), validRequest())
	require.NoError(t, err)
	second := validRequest()
	second.Item = "Gadget"
	_, _, err = createUC.Create(context.Background(), second)
	require.NoError(t, err)

	rows, err := historyUC.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Gadget", rows[0].Item, "el más reciente va primero")
	assert.Greater(t, rows[0].ID, rows[1].ID)
	assert.Equal(t, "$19.99", rows[0].Price)
	assert.Equal(t, "$59.97", rows[0].Total)
}

// Download delega en el FileStore: nombre desconocido → ErrNotFound.
func TestDownload_ArchivoInexistente(t *testing.T) {
	uc := billing.NewDownloadUseCase(newFakeFiles())

	_, err := uc.Open(context.Background(), "invoice_999_20250101000000.pdf")

	require.ErrorIs(t, err, domain.ErrNotFound)
}
