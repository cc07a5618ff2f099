package main

import (
	"context"
	"log"
	"net/http"

	"fuego-be/internal/assets"
	"fuego-be/internal/cart"
	"fuego-be/internal/catalog"
	"fuego-be/internal/checkout"
	"fuego-be/internal/config"
	"fuego-be/internal/db"
	"fuego-be/internal/logger"
	"fuego-be/internal/search"
	"fuego-be/internal/server"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	cat := catalog.New()

	cartRepo := cart.NewRepository(database)
	cartStore := cart.NewStore(context.Background(), cartRepo)
	defer cartStore.Close()

	srv := server.New(server.Options{
		Catalog:        cat,
		Search:         search.NewIndex(cat),
		Cart:           cartStore,
		Checkout:       checkout.NewBuilder(cfg.WhatsAppPhone),
		Assets:         assets.NewService(cfg.ImagesDir),
		AllowedOrigins: cfg.AllowedOrigins,
	})

	log.Printf("🚀 API server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, srv.Router()))
}
