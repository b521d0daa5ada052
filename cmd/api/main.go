package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/facturador/internal/application/billing"
	infrapdf "github.com/tu-usuario/facturador/internal/infrastructure/pdf"
	"github.com/tu-usuario/facturador/internal/infrastructure/sqlite"
	"github.com/tu-usuario/facturador/internal/infrastructure/storage"
	apphttp "github.com/tu-usuario/facturador/internal/interfaces/http"
	"github.com/tu-usuario/facturador/pkg/config"
	"github.com/tu-usuario/facturador/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	db, err := sqlite.Open(ctx, cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a SQLite")
	}
	defer db.Close()

	if err := sqlite.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("migrar esquema")
	}

	files := storage.New(cfg.Store.InvoicesDir)
	if err := files.EnsureDir(); err != nil {
		log.Fatal().Err(err).Msg("carpeta de facturas")
	}

	invoiceRepo := sqlite.NewInvoiceRepository(db)
	renderer := infrapdf.NewMarotoInvoiceRenderer(cfg.Company)

	createInvoiceUC := billing.NewCreateInvoiceUseCase(invoiceRepo, renderer, files)
	historyUC := billing.NewHistoryUseCase(invoiceRepo, cfg.Company.Currency)
	downloadUC := billing.NewDownloadUseCase(files)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(apphttp.RequestID())
	app.Use(apphttp.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	apphttp.Router(app, apphttp.RouterDeps{
		CreateInvoice: createInvoiceUC,
		History:       historyUC,
		Download:      downloadUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
