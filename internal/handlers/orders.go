package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Blac-guru/lenoxhill-healthcare/internal/models"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/transport"
	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,phone"`
	Total     string `json:"total" validate:"required,decimal"`
	Items     string `json:"items" validate:"required,json"`
	Status    string `json:"status"`
}

func (s *Server) CreateOrder(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req CreateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("orders create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := s.Val.Struct(req); err != nil {
		log.Warn("orders create: validation error")
		details := validationDetails(s.Val.ValidationErrors(err))
		transport.WriteError(w, http.StatusBadRequest, "validation error", details)
		return
	}

	status := req.Status
	if status == "" {
		status = models.OrderStatusPending
	}

	// Items is the client-composed cart snapshot; it is checked to be JSON
	// and otherwise stored opaquely, with no recomputation of the total.
	order := models.Order{
		ID:        uuid.NewString(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Total:     req.Total,
		Status:    status,
		Items:     req.Items,
		CreatedAt: time.Now().In(s.Cfg.Timezone),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.Store.CreateOrder(ctx, order); err != nil {
		log.Error("orders create: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to create order", nil)
		return
	}

	if s.Mailer != nil {
		if _, err := s.Mailer.SendOrderConfirmation(ctx, order); err != nil {
			log.Warn("orders create: confirmation mail failed", slog.String("error", err.Error()))
		}
	}

	log.Info("orders create: stored", slog.String("order_id", order.ID), slog.String("total", order.Total))
	transport.WriteJSON(w, http.StatusCreated, order)
}
