package http

import (
	"net/http"

	"github.com/vncsmyrnk/voteportal/internal/core/domain"
)

type CatalogHandler struct {
	catalog domain.Catalog
}

func NewCatalogHandler(catalog domain.Catalog) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
	}
}

type districtResponse struct {
	ID    domain.District `json:"id"`
	Label string          `json:"label"`
}

func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Categories())
}

func (h *CatalogHandler) GetDistricts(w http.ResponseWriter, r *http.Request) {
	districts := make([]districtResponse, 0, len(domain.Districts))
	for _, d := range domain.Districts {
		districts = append(districts, districtResponse{ID: d, Label: d.Label()})
	}
	writeJSON(w, http.StatusOK, districts)
}
