package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Blac-guru/lenoxhill-healthcare/internal/models"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/transport"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AddToCartRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
}

func (s *Server) GetCartItems(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	sessionID := chi.URLParam(r, "sessionId")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := s.Store.ListCartItems(ctx, sessionID)
	if err != nil {
		log.Error("cart list: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to fetch cart items", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, items)
}

func (s *Server) AddToCart(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req AddToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("cart add: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := s.Val.Struct(req); err != nil {
		log.Warn("cart add: validation error")
		details := validationDetails(s.Val.ValidationErrors(err))
		transport.WriteError(w, http.StatusBadRequest, "validation error", details)
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	item := models.CartItem{
		ID:        uuid.NewString(),
		SessionID: req.SessionID,
		ProductID: req.ProductID,
		Quantity:  quantity,
		CreatedAt: time.Now().In(s.Cfg.Timezone),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	stored, err := s.Store.AddToCart(ctx, item)
	if err != nil {
		log.Error("cart add: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to add to cart", nil)
		return
	}

	log.Info("cart add: ok",
		slog.String("session_id", stored.SessionID),
		slog.String("product_id", stored.ProductID),
		slog.Int("quantity", stored.Quantity),
	)
	transport.WriteJSON(w, http.StatusCreated, stored)
}

func (s *Server) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	sessionID := chi.URLParam(r, "sessionId")
	productID := chi.URLParam(r, "productId")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.Store.RemoveFromCart(ctx, sessionID, productID); err != nil {
		log.Error("cart remove: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to remove item from cart", nil)
		return
	}

	log.Info("cart remove: ok", slog.String("session_id", sessionID), slog.String("product_id", productID))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) ClearCart(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	sessionID := chi.URLParam(r, "sessionId")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.Store.ClearCart(ctx, sessionID); err != nil {
		log.Error("cart clear: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to clear cart", nil)
		return
	}

	log.Info("cart clear: ok", slog.String("session_id", sessionID))
	w.WriteHeader(http.StatusNoContent)
}
