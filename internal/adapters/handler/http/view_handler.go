package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vncsmyrnk/voteportal/internal/core/domain"
	"github.com/vncsmyrnk/voteportal/internal/core/ports"
)

type ViewHandler struct {
	service ports.ViewService
}

func NewViewHandler(service ports.ViewService) *ViewHandler {
	return &ViewHandler{
		service: service,
	}
}

type viewRequest struct {
	View string `json:"view"`
}

type viewResponse struct {
	View domain.View `json:"view"`
}

func (h *ViewHandler) GetView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, viewResponse{View: h.service.Active(r.Context())})
}

func (h *ViewHandler) SelectView(w http.ResponseWriter, r *http.Request) {
	var req viewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	v, err := h.service.Select(r.Context(), req.View)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownView) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, viewResponse{View: v})
}
