package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Blac-guru/lenoxhill-healthcare/internal/httpx"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/models"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/store"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/transport"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AdminStatusRequest deliberately allows any non-empty status string; the
// records only observe their "pending"/"new" creation defaults server-side.
type AdminStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type AdminServiceRequest struct {
	Name           string `json:"name" validate:"required"`
	Description    string `json:"description" validate:"required"`
	TargetAudience string `json:"targetAudience" validate:"required"`
	Hours          string `json:"hours" validate:"required"`
	Location       string `json:"location" validate:"required"`
	Icon           string `json:"icon" validate:"required"`
	EstimatedCost  string `json:"estimatedCost" validate:"omitempty,decimal"`
	Available      *bool  `json:"available"`
}

type AdminProductRequest struct {
	Name                 string `json:"name" validate:"required"`
	Description          string `json:"description" validate:"required"`
	Price                string `json:"price" validate:"required,decimal"`
	Category             string `json:"category" validate:"required"`
	TargetAge            string `json:"targetAge" validate:"required"`
	InStock              *bool  `json:"inStock"`
	PrescriptionRequired bool   `json:"prescriptionRequired"`
	ImageURL             string `json:"imageUrl" validate:"omitempty,url"`
}

func (s *Server) adminLimitOffset(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	limit, offset, err := httpx.ParseLimitOffset(r.URL.Query(), 50, 200)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return 0, 0, false
	}
	return limit, offset, true
}

func (s *Server) AdminListAppointments(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	limit, offset, ok := s.adminLimitOffset(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := s.Store.ListAppointments(ctx, limit, offset)
	if err != nil {
		log.Error("admin appointments list: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to fetch appointments", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, items)
}

func (s *Server) AdminUpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id := chi.URLParam(r, "id")

	var req AdminStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("admin appointments status: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("admin appointments status: validation error")
		details := validationDetails(s.Val.ValidationErrors(err))
		transport.WriteError(w, http.StatusBadRequest, "validation error", details)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	updated, err := s.Store.UpdateAppointmentStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("admin appointments status: not found", slog.String("appointment_id", id))
			transport.WriteError(w, http.StatusNotFound, "appointment not found", nil)
			return
		}
		log.Error("admin appointments status: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to update appointment", nil)
		return
	}

	log.Info("admin appointments status: ok", slog.String("appointment_id", id), slog.String("status", req.Status))
	transport.WriteJSON(w, http.StatusOK, updated)
}

func (s *Server) AdminListContacts(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	limit, offset, ok := s.adminLimitOffset(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := s.Store.ListContactMessages(ctx, limit, offset)
	if err != nil {
		log.Error("admin contacts list: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to fetch contacts", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, items)
}

func (s *Server) AdminUpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id := chi.URLParam(r, "id")

	var req AdminStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("admin contacts status: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("admin contacts status: validation error")
		details := validationDetails(s.Val.ValidationErrors(err))
		transport.WriteError(w, http.StatusBadRequest, "validation error", details)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	updated, err := s.Store.UpdateContactMessageStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("admin contacts status: not found", slog.String("contact_id", id))
			transport.WriteError(w, http.StatusNotFound, "contact message not found", nil)
			return
		}
		log.Error("admin contacts status: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to update contact message", nil)
		return
	}

	log.Info("admin contacts status: ok", slog.String("contact_id", id), slog.String("status", req.Status))
	transport.WriteJSON(w, http.StatusOK, updated)
}

func (s *Server) AdminListOrders(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	limit, offset, ok := s.adminLimitOffset(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := s.Store.ListOrders(ctx, limit, offset)
	if err != nil {
		log.Error("admin orders list: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to fetch orders", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, items)
}

func (s *Server) AdminUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id := chi.URLParam(r, "id")

	var req AdminStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("admin orders status: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("admin orders status: validation error")
		details := validationDetails(s.Val.ValidationErrors(err))
		transport.WriteError(w, http.StatusBadRequest, "validation error", details)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	updated, err := s.Store.UpdateOrderStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("admin orders status: not found", slog.String("order_id", id))
			transport.WriteError(w, http.StatusNotFound, "order not found", nil)
			return
		}
		log.Error("admin orders status: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to update order", nil)
		return
	}

	log.Info("admin orders status: ok", slog.String("order_id", id), slog.String("status", req.Status))
	transport.WriteJSON(w, http.StatusOK, updated)
}

func (s *Server) AdminCreateService(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req AdminServiceRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("admin services create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("admin services create: validation error")
		details := validationDetails(s.Val.ValidationErrors(err))
		transport.WriteError(w, http.StatusBadRequest, "validation error", details)
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	service := models.Service{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Description:    req.Description,
		TargetAudience: req.TargetAudience,
		Hours:          req.Hours,
		Location:       req.Location,
		Icon:           req.Icon,
		EstimatedCost:  req.EstimatedCost,
		Available:      available,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.Store.CreateService(ctx, service); err != nil {
		log.Error("admin services create: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to create service", nil)
		return
	}

	if s.Cache != nil {
		_ = s.Cache.Delete(r.Context(), servicesCacheKey)
	}

	log.Info("admin services create: ok", slog.String("service_id", service.ID))
	transport.WriteJSON(w, http.StatusCreated, service)
}

func (s *Server) AdminCreateProduct(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req AdminProductRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("admin products create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("admin products create: validation error")
		details := validationDetails(s.Val.ValidationErrors(err))
		transport.WriteError(w, http.StatusBadRequest, "validation error", details)
		return
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product := models.Product{
		ID:                   uuid.NewString(),
		Name:                 req.Name,
		Description:          req.Description,
		Price:                req.Price,
		Category:             req.Category,
		TargetAge:            req.TargetAge,
		InStock:              inStock,
		PrescriptionRequired: req.PrescriptionRequired,
		ImageURL:             req.ImageURL,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.Store.CreateProduct(ctx, product); err != nil {
		log.Error("admin products create: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to create product", nil)
		return
	}

	if s.Cache != nil {
		_ = s.Cache.DeletePrefix(r.Context(), "products:")
	}

	log.Info("admin products create: ok", slog.String("product_id", product.ID))
	transport.WriteJSON(w, http.StatusCreated, product)
}
