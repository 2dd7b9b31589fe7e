package authhandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"taskboard/internal/domain/auth"
	"taskboard/internal/transport/http/api"
	"taskboard/internal/transport/http/middleware"
)

type Handler struct {
	Secret       string
	PasswordHash string
	TokenTTL     time.Duration
}

func NewHandler(secret, passwordHash string, tokenTTL time.Duration) *Handler {
	return &Handler{Secret: secret, PasswordHash: passwordHash, TokenTTL: tokenTTL}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", requestID)
		return
	}
	if payload.Password == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "password is required", requestID)
		return
	}

	if err := auth.CheckPassword(h.PasswordHash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid password", requestID)
		return
	}

	token, err := auth.GenerateToken(h.Secret, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "failed to issue session token", requestID)
		return
	}

	api.Success(w, map[string]any{
		"token":     token,
		"expiresIn": int64(h.TokenTTL.Seconds()),
	}, requestID)
}
