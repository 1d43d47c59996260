// Servidor stub da API de estoque para desenvolvimento local: os mesmos
// endpoints do backend remoto, com dados em memória e carga de exemplo.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	apphttp "github.com/seu-usuario/controle-estoque/internal/interfaces/http"
	"github.com/seu-usuario/controle-estoque/pkg/config"
	"github.com/seu-usuario/controle-estoque/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("addr", cfg.Stub.Addr()).
		Msg("iniciando servidor stub")

	armazem := apphttp.NewArmazem()
	armazem.SeedDemo()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name + " (stub)",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	apphttp.Router(app, apphttp.RouterDeps{Armazem: armazem, Log: log})

	go func() {
		if err := app.Listen(cfg.Stub.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("servidor stub encerrado")
}
