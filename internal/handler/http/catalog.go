package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-square/internal/utils"
	"github.com/MKhiriev/go-square/models"
)

type locationsResponse struct {
	Locations []models.Location `json:"locations"`
}

type catalogResponse struct {
	Objects []models.CatalogObject `json:"objects"`
}

func (h *Handler) listLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.services.CatalogService.ListLocations(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, locationsResponse{Locations: locations}, http.StatusOK)
}

// listCatalog accepts ?types=ITEM,TAX as well as repeated ?types= values.
func (h *Handler) listCatalog(w http.ResponseWriter, r *http.Request) {
	objects, err := h.services.CatalogService.ListCatalog(r.Context(), catalogTypes(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if objects == nil {
		objects = []models.CatalogObject{}
	}

	utils.WriteJSON(w, catalogResponse{Objects: objects}, http.StatusOK)
}

func catalogTypes(r *http.Request) []models.CatalogObjectType {
	var types []models.CatalogObjectType
	for _, raw := range r.URL.Query()["types"] {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, models.CatalogObjectType(strings.ToUpper(t)))
			}
		}
	}
	return types
}
