package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Store   StoreConfig
	Company CompanyConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig configuración de persistencia: archivo SQLite y carpeta de PDFs generados.
type StoreConfig struct {
	Path        string // ruta del archivo de base de datos
	InvoicesDir string // carpeta donde se escriben los PDF
}

// CompanyConfig datos del emisor que aparecen en el encabezado del PDF.
type CompanyConfig struct {
	Name     string
	Email    string
	Phone    string
	Currency string // símbolo de moneda para los importes
}

// ContactLine devuelve la línea de contacto del encabezado.
func (c CompanyConfig) ContactLine() string {
	return fmt.Sprintf("Email: %s | Phone: %s", c.Email, c.Phone)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, DB_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "facturador"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Store: StoreConfig{
			Path:        getString(v, "DB_PATH", "database.db"),
			InvoicesDir: getString(v, "INVOICES_DIR", "invoices"),
		},
		Company: CompanyConfig{
			Name:     getString(v, "COMPANY_NAME", "MY COMPANY NAME"),
			Email:    getString(v, "COMPANY_EMAIL", "info@company.com"),
			Phone:    getString(v, "COMPANY_PHONE", "123-456-7890"),
			Currency: getString(v, "CURRENCY_SYMBOL", "$"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
