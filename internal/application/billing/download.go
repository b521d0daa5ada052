package billing

import "context"

// DownloadUseCase resuelve un nombre de archivo de factura a su ruta en disco.
type DownloadUseCase struct {
	files FileStore
}

// NewDownloadUseCase construye el caso de uso.
func NewDownloadUseCase(files FileStore) *DownloadUseCase {
	return &DownloadUseCase{files: files}
}

// Open valida el nombre contra path traversal y retorna la ruta del PDF.
// Retorna domain.ErrInvalidInput para nombres malformados y domain.ErrNotFound
// cuando el archivo nunca se generó.
func (uc *DownloadUseCase) Open(_ context.Context, name string) (string, error) {
	return uc.files.Resolve(name)
}
