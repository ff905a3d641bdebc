package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"joyeria-backend/internal/client"
	"joyeria-backend/internal/config"
	"joyeria-backend/internal/logger"
	"joyeria-backend/internal/repository"
	"joyeria-backend/internal/server"
	"joyeria-backend/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger.New(logger.Options{
		Service: "joyeria-backend",
		Env:     cfg.Environment.Name,
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
	})

	db := client.InitMysqlClient(cfg.DatabaseURL)
	mpClient := client.NewMercadoPagoClient(&cfg.MercadoPago)

	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	procedureRepo := repository.NewProcedureRepository(db)
	webhookEventRepo := repository.NewWebhookEventRepository(db)

	checkoutService := service.NewCheckoutService(
		mpClient,
		productRepo,
		orderRepo,
		cfg.BaseURL,
		cfg.MercadoPago.StatementDescriptor,
	)
	webhookService := service.NewWebhookService(mpClient, orderRepo, procedureRepo, webhookEventRepo)
	catalogService := service.NewCatalogService(productRepo)
	orderService := service.NewOrderService(orderRepo)
	authService := service.NewAuthService(&cfg.Admin)

	srv := server.NewServer(checkoutService, webhookService, catalogService, orderService, authService)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	slog.Info("starting HTTP server", "addr", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	slog.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
		os.Exit(1)
	}
}
