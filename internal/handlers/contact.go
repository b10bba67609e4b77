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

type ContactRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,phone"`
	Subject   string `json:"subject" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

func (s *Server) CreateContact(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req ContactRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("contact create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := s.Val.Struct(req); err != nil {
		log.Warn("contact create: validation error")
		details := validationDetails(s.Val.ValidationErrors(err))
		transport.WriteError(w, http.StatusBadRequest, "validation error", details)
		return
	}

	msg := models.ContactMessage{
		ID:        uuid.NewString(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    models.ContactStatusNew,
		CreatedAt: time.Now().In(s.Cfg.Timezone),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.Store.CreateContactMessage(ctx, msg); err != nil {
		log.Error("contact create: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to store message", nil)
		return
	}

	log.Info("contact create: stored", slog.String("contact_id", msg.ID))
	transport.WriteJSON(w, http.StatusCreated, msg)
}
