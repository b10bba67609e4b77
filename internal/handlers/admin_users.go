package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Blac-guru/lenoxhill-healthcare/internal/auth"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/models"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/store"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/transport"
	"github.com/google/uuid"
)

type AdminRegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	SetupKey string `json:"setupKey" validate:"required"`
}

type AdminUserCreateRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// AdminRegister bootstraps the first admin account; it is open but gated by
// ADMIN_SETUP_KEY.
func (s *Server) AdminRegister(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req AdminRegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("admin register: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	if err := s.Val.Struct(req); err != nil {
		log.Warn("admin register: validation error")
		details := validationDetails(s.Val.ValidationErrors(err))
		transport.WriteError(w, http.StatusBadRequest, "validation error", details)
		return
	}

	if s.Cfg.AdminSetupKey == "" {
		log.Warn("admin register: setup key missing")
		transport.WriteError(w, http.StatusServiceUnavailable, "admin registration not configured", nil)
		return
	}
	if subtle.ConstantTimeCompare([]byte(req.SetupKey), []byte(s.Cfg.AdminSetupKey)) != 1 {
		log.Warn("admin register: invalid setup key", slog.String("username", req.Username))
		transport.WriteError(w, http.StatusUnauthorized, "invalid setup key", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := s.createAdminUser(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, errUsernameTaken) {
			log.Warn("admin register: duplicate", slog.String("username", req.Username))
			transport.WriteError(w, http.StatusConflict, "username already exists", nil)
			return
		}
		log.Error("admin register: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to create user", nil)
		return
	}

	log.Info("admin register: ok", slog.String("user_id", user.ID))
	transport.WriteJSON(w, http.StatusCreated, user)
}

func (s *Server) AdminCreateUser(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req AdminUserCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("admin users create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	if err := s.Val.Struct(req); err != nil {
		log.Warn("admin users create: validation error")
		details := validationDetails(s.Val.ValidationErrors(err))
		transport.WriteError(w, http.StatusBadRequest, "validation error", details)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := s.createAdminUser(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, errUsernameTaken) {
			log.Warn("admin users create: duplicate", slog.String("username", req.Username))
			transport.WriteError(w, http.StatusConflict, "username already exists", nil)
			return
		}
		log.Error("admin users create: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to create user", nil)
		return
	}

	log.Info("admin users create: ok", slog.String("user_id", user.ID))
	transport.WriteJSON(w, http.StatusCreated, user)
}

var errUsernameTaken = errors.New("username already exists")

func (s *Server) createAdminUser(ctx context.Context, username, password string) (models.User, error) {
	if _, err := s.Store.GetUserByUsername(ctx, username); err == nil {
		return models.User{}, errUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return models.User{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		CreatedAt:    time.Now().In(s.Cfg.Timezone),
	}
	if err := s.Store.CreateUser(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
