package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kemasghani/beReactNative/internal/models"
	"github.com/kemasghani/beReactNative/internal/repository"
)

type AuthHandler struct {
	repo repository.UserRepository
	log  *slog.Logger
}

func NewAuthHandler(repo repository.UserRepository, log *slog.Logger) *AuthHandler {
	return &AuthHandler{repo: repo, log: log}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	u := models.User{
		Username: req.Username,
		Password: req.Password,
	}

	if err := h.repo.Register(r.Context(), &u); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			writeError(w, http.StatusBadRequest, "duplicate_username", "Username already taken")
		case errors.Is(err, repository.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
		default:
			h.log.Error("failed to register user", slog.Any("err", err))
			writeError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Registration successful"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	if err := h.repo.Authenticate(r.Context(), req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid username or password")
		default:
			h.log.Error("failed to authenticate user", slog.Any("err", err))
			writeError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Login successful"})
}

func (h *AuthHandler) GetUserID(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		writeError(w, http.StatusBadRequest, "invalid_input", "username is required")
		return
	}

	userID, err := h.repo.GetIDByUsername(r.Context(), username)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found", "User not found")
		case errors.Is(err, repository.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
		default:
			h.log.Error("failed to get user id", slog.Any("err", err))
			writeError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"userId": userID})
}
