package get_repair_types

import (
	"net/http"

	"github.com/m04kA/SMC-ServiceCenter/internal/api/handlers"
)

// RepairTypesResponse HTTP response model: тип ТС -> категория ремонта -> работы
type RepairTypesResponse struct {
	RepairTypes map[string]map[string][]string `json:"repairTypes"`
}

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

// Handle GET /api/v1/catalog/repair-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := RepairTypesResponse{
		RepairTypes: make(map[string]map[string][]string),
	}

	for _, vType := range h.catalog.VehicleTypes() {
		response.RepairTypes[string(vType)] = h.catalog.RepairTypes(vType)
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
