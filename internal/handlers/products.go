package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/Blac-guru/lenoxhill-healthcare/internal/store"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/transport"
	"github.com/go-chi/chi/v5"
)

func productsCacheKey(filter store.ProductFilter) string {
	v := url.Values{}
	v.Set("category", filter.Category)
	v.Set("targetAge", filter.TargetAge)
	v.Set("search", filter.Search)
	return "products:" + v.Encode()
}

func (s *Server) GetProducts(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	q := r.URL.Query()
	filter := store.ProductFilter{
		Category:  q.Get("category"),
		TargetAge: q.Get("targetAge"),
		Search:    q.Get("search"),
	}

	cacheKey := productsCacheKey(filter)
	if s.Cache != nil {
		if cached, ok, err := s.Cache.Get(r.Context(), cacheKey); err == nil && ok {
			log.Info("products: cache hit")
			writeCachedJSON(w, http.StatusOK, cached)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := s.Store.ListProducts(ctx, filter)
	if err != nil {
		log.Error("products: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to fetch products", nil)
		return
	}

	if payload, err := encodeJSON(items); err == nil && s.Cache != nil {
		_ = s.Cache.Set(r.Context(), cacheKey, payload, time.Duration(s.Cfg.CacheTTLSeconds)*time.Second)
	}

	log.Info("products: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, items)
}

func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	p, err := s.Store.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("products get: not found", slog.String("product_id", id))
			transport.WriteError(w, http.StatusNotFound, "product not found", nil)
			return
		}
		log.Error("products get: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to fetch product", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, p)
}
