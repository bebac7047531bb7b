package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kemasghani/beReactNative/internal/models"
	"github.com/kemasghani/beReactNative/internal/repository"
)

type SupplierHandler struct {
	repo repository.SupplierRepository
	log  *slog.Logger
}

func NewSupplierHandler(repo repository.SupplierRepository, log *slog.Logger) *SupplierHandler {
	return &SupplierHandler{repo: repo, log: log}
}

type supplierCreateRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req supplierCreateRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	s := models.Supplier{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	}

	if err := h.repo.Create(r.Context(), &s); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
		default:
			h.log.Error("failed to create supplier", slog.Any("err", err))
			writeError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Supplier added successfully",
		"supplierId": s.SupplierID,
	})
}
