package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/RawAuto/CoffeeShop-API/internal/domain"
)

// DrinkServicer defines the drink operations needed by drink handlers.
// Satisfied by *service.DrinkService; narrow interface for testability.
type DrinkServicer interface {
	GetAllDrinks(ctx context.Context) ([]domain.Drink, error)
	GetDrinkByID(ctx context.Context, id int64) (*domain.Drink, error)
	GetDrinkBySlug(ctx context.Context, slug string) (*domain.Drink, error)
}

// DrinkHandler handles the read-only drink catalog endpoints.
type DrinkHandler struct {
	drinks DrinkServicer
}

// NewDrinkHandler creates a new DrinkHandler.
func NewDrinkHandler(drinks DrinkServicer) *DrinkHandler {
	return &DrinkHandler{drinks: drinks}
}

// RegisterRoutes registers drink endpoints on the given Chi router.
// Expected to be mounted at /api/v1/drinks
func (h *DrinkHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
}

// --- Response types ---

type drinkResponse struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Type         string     `json:"type"`
	BasePrice    string     `json:"base_price"`
	HasMilk      bool       `json:"has_milk"`
	AllowedSizes []string   `json:"allowed_sizes"`
	Components   []string   `json:"components"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

func toDrinkResponse(d domain.Drink) drinkResponse {
	sizes := make([]string, len(d.AllowedSizes))
	for i, s := range d.AllowedSizes {
		sizes[i] = string(s)
	}
	components := d.Components
	if components == nil {
		components = []string{}
	}
	return drinkResponse{
		ID:           d.ID,
		Name:         d.Name,
		Slug:         d.Slug,
		Type:         string(d.Type),
		BasePrice:    d.BasePrice.StringFixed(2),
		HasMilk:      d.HasMilk,
		AllowedSizes: sizes,
		Components:   components,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// --- Handlers ---

// List returns the whole drink catalog.
func (h *DrinkHandler) List(w http.ResponseWriter, r *http.Request) {
	drinks, err := h.drinks.GetAllDrinks(r.Context())
	if err != nil {
		log.Printf("ERROR: list drinks: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp := make([]drinkResponse, len(drinks))
	for i, d := range drinks {
		resp[i] = toDrinkResponse(d)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single drink. A numeric path segment is treated as an
// id, anything else as a slug.
func (h *DrinkHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "id")

	var (
		drink *domain.Drink
		err   error
	)
	if id, perr := strconv.ParseInt(key, 10, 64); perr == nil {
		drink, err = h.drinks.GetDrinkByID(r.Context(), id)
	} else {
		drink, err = h.drinks.GetDrinkBySlug(r.Context(), key)
	}
	if err != nil {
		log.Printf("ERROR: get drink %q: %v", key, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if drink == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "drink not found"})
		return
	}

	writeJSON(w, http.StatusOK, toDrinkResponse(*drink))
}
