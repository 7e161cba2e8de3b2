package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"storefront-gateway/internal/client"
	"storefront-gateway/internal/config"
	"storefront-gateway/internal/logger"
	"storefront-gateway/internal/server"
	"storefront-gateway/internal/service"
	"storefront-gateway/internal/session"
	"storefront-gateway/internal/validation"

	"storefront-gateway/internal/repository"
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

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Printf("Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := client.InitSqliteClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalw("database init failed", "err", err)
	}

	commerceClient := client.NewCommerceClient(&cfg.Commerce, log)
	paymentClient := client.NewPaymentClient(&cfg.Payment)
	contentClient := client.NewContentClient(&cfg.Content)

	journalRepo := repository.NewJournalRepository(db)

	v := validation.New()
	registry := session.NewRegistry()
	cookies := session.NewCookies(cfg.Session.CookieName, cfg.Environment.IsProduction())

	checkoutService := service.NewCheckoutService(commerceClient, paymentClient, journalRepo, v, &cfg.Commerce, log)
	authService := service.NewAuthService(commerceClient, log)
	profileService := service.NewProfileService(commerceClient, v, log)
	catalogService := service.NewCatalogService(commerceClient, contentClient, &cfg.Commerce, &cfg.Content, log)

	srv := server.NewServer(checkoutService, authService, profileService, catalogService, registry, cookies, v, log)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Infow("starting HTTP server", "addr", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatalw("HTTP server error", "err", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Infow("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		log.Fatalw("HTTP server shutdown error", "err", err)
	}
}
