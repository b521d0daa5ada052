// Package storage administra la carpeta de PDFs generados. Es el único punto
// del sistema que convierte nombres de archivo en rutas, de modo que la
// validación contra path traversal vive en un solo lugar.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tu-usuario/facturador/internal/domain"
)

// InvoiceDir carpeta donde se escriben y se leen los PDF de facturas.
type InvoiceDir struct {
	dir string
}

// New construye el almacén de archivos sobre dir.
func New(dir string) *InvoiceDir {
	return &InvoiceDir{dir: dir}
}

// EnsureDir crea la carpeta si no existe.
func (s *InvoiceDir) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("crear carpeta de facturas: %w", err)
	}
	return nil
}

// Save escribe el PDF con el nombre dado. Un fallo de E/S se reporta siempre;
// nunca se deja un archivo a medias sin avisar.
func (s *InvoiceDir) Save(name string, data []byte) error {
	path, err := s.safePath(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("escribir PDF %s: %w", name, err)
	}
	return nil
}

// Resolve devuelve la ruta del archivo si el nombre es válido y el archivo
// existe. Nombres con separadores, "..", o rutas absolutas se rechazan con
// ErrInvalidInput; un archivo ausente retorna ErrNotFound.
func (s *InvoiceDir) Resolve(name string) (string, error) {
	path, err := s.safePath(name)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("stat %s: %w", name, err)
	}
	if info.IsDir() {
		return "", domain.ErrNotFound
	}
	return path, nil
}

// Remove borra el archivo si existe (compensación; ignora archivo ausente).
func (s *InvoiceDir) Remove(name string) error {
	path, err := s.safePath(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("eliminar PDF %s: %w", name, err)
	}
	return nil
}

// safePath valida el nombre y lo une a la carpeta base. El nombre debe ser un
// componente simple: sin separadores, sin "..", no absoluto, no vacío.
func (s *InvoiceDir) safePath(name string) (string, error) {
	if name == "" ||
		name != filepath.Base(name) ||
		strings.ContainsAny(name, `/\`) ||
		name == "." || name == ".." {
		return "", fmt.Errorf("%w: nombre de archivo %q", domain.ErrInvalidInput, name)
	}
	return filepath.Join(s.dir, name), nil
}
