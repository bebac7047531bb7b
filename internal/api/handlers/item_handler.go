package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/kemasghani/beReactNative/internal/models"
	"github.com/kemasghani/beReactNative/internal/repository"
	"github.com/kemasghani/beReactNative/internal/upload"
)

const maxUploadBytes = 32 << 20

type ItemHandler struct {
	repo     repository.ItemRepository
	receiver *upload.Receiver
	log      *slog.Logger
}

func NewItemHandler(repo repository.ItemRepository, receiver *upload.Receiver, log *slog.Logger) *ItemHandler {
	return &ItemHandler{repo: repo, receiver: receiver, log: log}
}

// Create handles the multipart item form. The image file is persisted first
// and the stored path goes into the item row, so a returned item always
// references a file that exists on disk.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid multipart form")
		return
	}

	imagePath, err := h.receiver.SaveFromRequest(r, "image")
	if err != nil {
		if errors.Is(err, upload.ErrNoFile) {
			writeError(w, http.StatusBadRequest, "missing_file", "image file is required")
			return
		}
		h.log.Error("failed to store upload", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	quantity, _ := strconv.Atoi(r.FormValue("quantity"))

	item := models.Item{
		Name:        r.FormValue("name"),
		ImagePath:   imagePath,
		Description: r.FormValue("description"),
		Quantity:    quantity,
	}

	if err := h.repo.Create(r.Context(), &item); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
		default:
			h.log.Error("failed to create item", slog.Any("err", err))
			writeError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Item added successfully",
		"itemId":  item.ItemID,
	})
}
