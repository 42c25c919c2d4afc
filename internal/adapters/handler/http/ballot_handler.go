package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/voteportal/internal/core/domain"
	"github.com/vncsmyrnk/voteportal/internal/core/ports"
)

type BallotHandler struct {
	service ports.CaptureService
}

func NewBallotHandler(service ports.CaptureService) *BallotHandler {
	return &BallotHandler{
		service: service,
	}
}

type voterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	District string `json:"district"`
}

type selectionRequest struct {
	OptionID string `json:"option_id"`
}

func (h *BallotHandler) GetBallot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Form(r.Context()))
}

func (h *BallotHandler) ResetBallot(w http.ResponseWriter, r *http.Request) {
	h.service.Reset(r.Context())
	writeJSON(w, http.StatusOK, h.service.Form(r.Context()))
}

func (h *BallotHandler) UpdateVoter(w http.ResponseWriter, r *http.Request) {
	var req voterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// An empty district is allowed here and reported on submit.
	if req.District != "" {
		if _, err := domain.ParseDistrict(req.District); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	h.service.UpdateVoterInfo(r.Context(), domain.VoterInfo{
		Name:     req.Name,
		Email:    req.Email,
		District: req.District,
	})
	writeJSON(w, http.StatusOK, h.service.Form(r.Context()))
}

func (h *BallotHandler) Select(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryID")

	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Select(r.Context(), categoryID, req.OptionID); err != nil {
		if errors.Is(err, domain.ErrUnknownCategory) || errors.Is(err, domain.ErrUnknownOption) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, h.service.Form(r.Context()))
}

func (h *BallotHandler) Submit(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.Submit(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrMissingVoterInfo) || errors.Is(err, domain.ErrNoSelections) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		slog.Error("failed to submit ballot", "error", err, "recorded", len(records))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	slog.Info("ballot submitted", "records", len(records))
	writeJSON(w, http.StatusCreated, records)
}
