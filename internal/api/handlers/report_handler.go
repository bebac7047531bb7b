package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kemasghani/beReactNative/internal/models"
	"github.com/kemasghani/beReactNative/internal/repository"
)

type ReportHandler struct {
	repo repository.ReportRepository
	log  *slog.Logger
}

func NewReportHandler(repo repository.ReportRepository, log *slog.Logger) *ReportHandler {
	return &ReportHandler{repo: repo, log: log}
}

type reportCreateRequest struct {
	Date    string  `json:"date"`
	Income  float64 `json:"income"`
	Outcome float64 `json:"outcome"`
}

func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req reportCreateRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "date must look like 2006-01-02")
		return
	}

	rep := models.Report{
		Date:    date,
		Income:  req.Income,
		Outcome: req.Outcome,
	}

	if err := h.repo.Create(r.Context(), &rep); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
		default:
			h.log.Error("failed to create report", slog.Any("err", err))
			writeError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Report added successfully",
		"reportId": rep.ReportID,
	})
}

func (h *ReportHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	reports, err := h.repo.GetAll(r.Context())
	if err != nil {
		h.log.Error("failed to list reports", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	if reports == nil {
		reports = []models.Report{}
	}

	writeJSON(w, http.StatusOK, reports)
}
