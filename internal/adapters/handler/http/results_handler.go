package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/voteportal/internal/core/domain"
	"github.com/vncsmyrnk/voteportal/internal/core/ports"
)

type ResultsHandler struct {
	service ports.TallyService
}

func NewResultsHandler(service ports.TallyService) *ResultsHandler {
	return &ResultsHandler{
		service: service,
	}
}

func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *ResultsHandler) GetCategoryResult(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryID")

	result, err := h.service.CategoryResult(r.Context(), categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownCategory) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
