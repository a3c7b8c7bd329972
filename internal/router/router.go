package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RawAuto/CoffeeShop-API/internal/config"
	"github.com/RawAuto/CoffeeShop-API/internal/feed"
	"github.com/RawAuto/CoffeeShop-API/internal/handler"
	"github.com/RawAuto/CoffeeShop-API/internal/repository"
	"github.com/RawAuto/CoffeeShop-API/internal/service"
)

// New creates a Chi router with all application routes wired up.
func New(cfg *config.Config, pool *pgxpool.Pool, hub *feed.Hub) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Location"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := pool.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"degraded"}`))
			return
		}
		w.Write([]byte(`{"status":"ok"}`))
	})

	// WebSocket order feed
	r.Get("/ws/orders", func(w http.ResponseWriter, r *http.Request) {
		feed.ServeWS(hub, w, r)
	})

	drinkService := service.NewDrinkService(repository.NewDrinkRepository(pool))
	orderService := service.NewOrderService(repository.NewOrderRepository(pool), drinkService)

	r.Route("/api/v1", func(r chi.Router) {
		drinkHandler := handler.NewDrinkHandler(drinkService)
		r.Route("/drinks", drinkHandler.RegisterRoutes)

		orderHandler := handler.NewOrderHandler(orderService, hub)
		r.Route("/orders", orderHandler.RegisterRoutes)
	})

	return r
}
