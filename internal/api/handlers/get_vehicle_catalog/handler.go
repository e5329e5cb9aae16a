package get_vehicle_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-ServiceCenter/internal/api/handlers"
)

type Handler struct {
	catalog CatalogProvider
	logger  Logger
}

func NewHandler(catalog CatalogProvider, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := CatalogResponse{
		Vehicles: make(map[string]VehicleDataResponse),
	}

	for _, vType := range h.catalog.VehicleTypes() {
		data, ok := h.catalog.VehicleData(vType)
		if !ok {
			continue
		}
		response.Vehicles[string(vType)] = VehicleDataResponse{
			Brands:     data.Brands,
			Categories: data.Categories,
			Models:     data.Models,
		}
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
