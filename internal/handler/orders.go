package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/RawAuto/CoffeeShop-API/internal/domain"
	"github.com/RawAuto/CoffeeShop-API/internal/service"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

// OrderServicer defines the order operations needed by order handlers.
// Satisfied by *service.OrderService; narrow interface for testability.
type OrderServicer interface {
	GetAllOrders(ctx context.Context, limit, offset int) ([]domain.Order, error)
	CountOrders(ctx context.Context) (int64, error)
	GetOrderByID(ctx context.Context, id int64) (*domain.Order, error)
	CreateOrder(ctx context.Context, customerName string, items []service.CreateOrderItemInput, notes *string) (*domain.Order, domain.ValidationResult, error)
	UpdateOrder(ctx context.Context, id int64, input service.UpdateOrderInput) (*domain.Order, domain.ValidationResult, error)
	DeleteOrder(ctx context.Context, id int64) (domain.ValidationResult, error)
}

// Broadcaster publishes order change events to the live feed.
// Satisfied by *feed.Hub.
type Broadcaster interface {
	Broadcast(eventType string, payload interface{})
}

// OrderHandler handles the order lifecycle endpoints.
type OrderHandler struct {
	orders OrderServicer
	feed   Broadcaster
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orders OrderServicer, feed Broadcaster) *OrderHandler {
	return &OrderHandler{orders: orders, feed: feed}
}

// RegisterRoutes registers order endpoints on the given Chi router.
// Expected to be mounted at /api/v1/orders
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// --- Request / Response types ---

type createOrderItemRequest struct {
	DrinkID  *int64  `json:"drink_id"`
	Size     *string `json:"size"`
	Quantity *int    `json:"quantity"`
	CupText  *string `json:"cup_text"`
}

type createOrderRequest struct {
	CustomerName string                   `json:"customer_name"`
	Notes        *string                  `json:"notes"`
	Items        []createOrderItemRequest `json:"items"`
}

type orderItemResponse struct {
	ID        int64      `json:"id"`
	DrinkID   int64      `json:"drink_id"`
	DrinkName string     `json:"drink_name,omitempty"`
	Size      string     `json:"size"`
	Quantity  int        `json:"quantity"`
	CupText   *string    `json:"cup_text"`
	Price     string     `json:"price"`
	Subtotal  string     `json:"subtotal"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type orderResponse struct {
	ID           int64               `json:"id"`
	CustomerName string              `json:"customer_name"`
	Status       string              `json:"status"`
	Notes        *string             `json:"notes"`
	Items        []orderItemResponse `json:"items"`
	Total        string              `json:"total"`
	CreatedAt    *time.Time          `json:"created_at,omitempty"`
	UpdatedAt    *time.Time          `json:"updated_at,omitempty"`
}

type orderListResponse struct {
	Data []orderResponse `json:"data"`
	Meta listMeta        `json:"meta"`
}

type listMeta struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

func toOrderResponse(o domain.Order) orderResponse {
	items := make([]orderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = orderItemResponse{
			ID:        item.ID,
			DrinkID:   item.DrinkID,
			DrinkName: item.DrinkName,
			Size:      string(item.Size),
			Quantity:  item.Quantity,
			CupText:   item.CupText,
			Price:     item.Price.StringFixed(2),
			Subtotal:  item.Subtotal().StringFixed(2),
			CreatedAt: item.CreatedAt,
		}
	}
	return orderResponse{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Status:       string(o.Status),
		Notes:        o.Notes,
		Items:        items,
		Total:        o.Total().StringFixed(2),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

// --- Handlers ---

// List returns a page of orders, newest first.
// Query params: limit (default 50, clamped to [1,100]), offset (default 0).
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := 0
	if s := r.URL.Query().Get("offset"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			offset = n
		}
	}

	orders, err := h.orders.GetAllOrders(r.Context(), limit, offset)
	if err != nil {
		log.Printf("ERROR: list orders: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	total, err := h.orders.CountOrders(r.Context())
	if err != nil {
		log.Printf("ERROR: count orders: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp := orderListResponse{
		Data: make([]orderResponse, len(orders)),
		Meta: listMeta{Total: total, Limit: limit, Offset: offset},
	}
	for i, o := range orders {
		resp.Data[i] = toOrderResponse(o)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create validates and persists a new order.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	items := make([]service.CreateOrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.CreateOrderItemInput{
			DrinkID:  item.DrinkID,
			Size:     item.Size,
			Quantity: item.Quantity,
			CupText:  item.CupText,
		}
	}

	order, result, err := h.orders.CreateOrder(r.Context(), req.CustomerName, items, req.Notes)
	if err != nil {
		log.Printf("ERROR: create order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if !result.IsValid() {
		writeValidationFailure(w, result)
		return
	}

	resp := toOrderResponse(*order)
	h.feed.Broadcast("order.created", resp)

	w.Header().Set("Location", fmt.Sprintf("/api/v1/orders/%d", order.ID))
	writeJSON(w, http.StatusCreated, resp)
}

// Get returns a single order with its items.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	order, err := h.orders.GetOrderByID(r.Context(), id)
	if err != nil {
		log.Printf("ERROR: get order %d: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if order == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": fmt.Sprintf("Order with ID %d not found", id)})
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(*order))
}

// Update applies a partial update to an order. The body is decoded as
// a raw key map so a present-but-null notes key can be told apart from
// an absent one; customer_name and status sent as null are treated as
// absent.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	var input service.UpdateOrderInput
	if msg, ok := raw["customer_name"]; ok {
		if err := json.Unmarshal(msg, &input.CustomerName); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid customer_name"})
			return
		}
	}
	if msg, ok := raw["status"]; ok {
		if err := json.Unmarshal(msg, &input.Status); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status"})
			return
		}
	}
	if msg, ok := raw["notes"]; ok {
		input.NotesSet = true
		if err := json.Unmarshal(msg, &input.Notes); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid notes"})
			return
		}
	}

	order, result, err := h.orders.UpdateOrder(r.Context(), id, input)
	if err != nil {
		log.Printf("ERROR: update order %d: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if !result.IsValid() {
		writeValidationFailure(w, result)
		return
	}

	resp := toOrderResponse(*order)
	h.feed.Broadcast("order.updated", resp)

	writeJSON(w, http.StatusOK, resp)
}

// Delete removes an order and its items.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	result, err := h.orders.DeleteOrder(r.Context(), id)
	if err != nil {
		log.Printf("ERROR: delete order %d: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if !result.IsValid() {
		writeValidationFailure(w, result)
		return
	}

	h.feed.Broadcast("order.deleted", map[string]int64{"id": id})

	w.WriteHeader(http.StatusNoContent)
}
