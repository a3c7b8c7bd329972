package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/RawAuto/CoffeeShop-API/internal/config"
	"github.com/RawAuto/CoffeeShop-API/internal/database"
	"github.com/RawAuto/CoffeeShop-API/internal/feed"
	"github.com/RawAuto/CoffeeShop-API/internal/router"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	if err := database.Migrate(cfg.DatabaseURL, "file://migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations up to date")

	hub := feed.NewHub()
	go hub.Run()

	r := router.New(cfg, pool, hub)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatal(err)
	}
}
