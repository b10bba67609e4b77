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

type CreateAppointmentRequest struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,phone"`
	ServiceID     string `json:"serviceId" validate:"required"`
	PreferredDate string `json:"preferredDate" validate:"required,date"`
	PreferredTime string `json:"preferredTime" validate:"required,clock"`
	Notes         string `json:"notes"`
}

func (s *Server) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req CreateAppointmentRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("appointments create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := s.Val.Struct(req); err != nil {
		log.Warn("appointments create: validation error")
		details := validationDetails(s.Val.ValidationErrors(err))
		transport.WriteError(w, http.StatusBadRequest, "validation error", details)
		return
	}

	// serviceId is stored as sent; it is not checked against the service
	// catalog. The storefront always submits ids it fetched moments before.
	appointment := models.Appointment{
		ID:            uuid.NewString(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		ServiceID:     req.ServiceID,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Notes:         req.Notes,
		Status:        models.AppointmentStatusPending,
		CreatedAt:     time.Now().In(s.Cfg.Timezone),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.Store.CreateAppointment(ctx, appointment); err != nil {
		log.Error("appointments create: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to create appointment", nil)
		return
	}

	if s.Mailer != nil {
		if svc, err := s.Store.GetService(ctx, appointment.ServiceID); err == nil {
			if _, err := s.Mailer.SendAppointmentConfirmation(ctx, appointment, svc); err != nil {
				log.Warn("appointments create: confirmation mail failed", slog.String("error", err.Error()))
			}
		}
	}

	log.Info("appointments create: stored",
		slog.String("appointment_id", appointment.ID),
		slog.String("service_id", appointment.ServiceID),
	)
	transport.WriteJSON(w, http.StatusCreated, appointment)
}

func (s *Server) GetAppointments(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := s.Store.ListAppointments(ctx, 0, 0)
	if err != nil {
		log.Error("appointments list: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to fetch appointments", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, items)
}
