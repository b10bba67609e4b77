package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Blac-guru/lenoxhill-healthcare/internal/store"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/transport"
	"github.com/go-chi/chi/v5"
)

const servicesCacheKey = "services:all"

func (s *Server) GetServices(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	if s.Cache != nil {
		if cached, ok, err := s.Cache.Get(r.Context(), servicesCacheKey); err == nil && ok {
			log.Info("services: cache hit")
			writeCachedJSON(w, http.StatusOK, cached)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := s.Store.ListServices(ctx)
	if err != nil {
		log.Error("services: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to fetch services", nil)
		return
	}

	if payload, err := encodeJSON(items); err == nil && s.Cache != nil {
		_ = s.Cache.Set(r.Context(), servicesCacheKey, payload, time.Duration(s.Cfg.CacheTTLSeconds)*time.Second)
	}

	log.Info("services: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, items)
}

func (s *Server) GetService(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	svc, err := s.Store.GetService(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("services get: not found", slog.String("service_id", id))
			transport.WriteError(w, http.StatusNotFound, "service not found", nil)
			return
		}
		log.Error("services get: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to fetch service", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, svc)
}
