package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Blac-guru/lenoxhill-healthcare/internal/cache"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/config"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/middleware"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/models"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/store"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/validation"
)

type Mailer interface {
	SendAppointmentConfirmation(ctx context.Context, appointment models.Appointment, service models.Service) (string, error)
	SendOrderConfirmation(ctx context.Context, order models.Order) (string, error)
}

type Server struct {
	Cfg    *config.Config
	Store  store.Store
	Val    *validation.Validator
	Log    *slog.Logger
	Cache  cache.Cache
	Mailer Mailer
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}
