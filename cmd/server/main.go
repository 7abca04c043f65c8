package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MagnetoUSP/PixV3/config"
	"github.com/MagnetoUSP/PixV3/internal/database"
	"github.com/MagnetoUSP/PixV3/internal/repository"
	"github.com/MagnetoUSP/PixV3/internal/router"
	"github.com/MagnetoUSP/PixV3/pkg/pix"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // .env is optional
	cfg := config.Load()

	var store repository.StatusStore
	switch {
	case cfg.Database.DSN == "":
		log.Printf("[STORE] STATUS_STORE_DSN not set, using in-memory status store (non-durable)")
		store = repository.NewMemoryStatusStore()
	default:
		db, err := database.NewDB(&cfg.Database)
		if err != nil {
			log.Printf("[STORE] status store unreachable (%v), falling back to in-memory store (non-durable)", err)
			store = repository.NewMemoryStatusStore()
			break
		}
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		store = repository.NewGormStatusStore(db)
	}

	var provider pix.Provider
	if cfg.MercadoPago.AccessToken == "" {
		log.Printf("[MP] PAYMENT_PROVIDER_ACCESS_TOKEN not set; create/webhook will report missing configuration")
	} else {
		mp, err := pix.NewMercadoPagoProvider(cfg.MercadoPago.AccessToken)
		if err != nil {
			log.Printf("[MP] provider init failed (%v); create/webhook will report missing configuration", err)
		} else {
			provider = mp
		}
	}

	engine := router.Setup(cfg, store, provider)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Printf("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown:", err)
	}
	fmt.Println("server stopped")
}
