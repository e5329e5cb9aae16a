package search_vehicles

import (
	"net/http"

	"github.com/m04kA/SMC-ServiceCenter/internal/api/handlers"
	"github.com/m04kA/SMC-ServiceCenter/internal/domain"
)

const msgInvalidVehicleType = "неизвестный тип транспортного средства"

// SearchResultResponse один результат поиска
type SearchResultResponse struct {
	Type     string `json:"type"`
	Brand    string `json:"brand"`
	Category string `json:"category"`
	Model    string `json:"model"`
}

// SearchResponse HTTP response model
type SearchResponse struct {
	Results []SearchResultResponse `json:"results"`
	Total   int                    `json:"total"`
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

// Handle GET /api/v1/catalog/search?q=swift&type=Car
// Пустой запрос и отсутствие совпадений дают пустой список.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var vehicleType *domain.VehicleType
	if rawType := r.URL.Query().Get("type"); rawType != "" {
		vType := domain.VehicleType(rawType)
		if !vType.IsValid() {
			h.logger.Warn("GET /catalog/search - Invalid vehicle type %q", rawType)
			handlers.RespondBadRequest(w, msgInvalidVehicleType)
			return
		}
		vehicleType = &vType
	}

	found := h.catalog.Search(query, vehicleType)

	results := make([]SearchResultResponse, 0, len(found))
	for _, item := range found {
		results = append(results, SearchResultResponse{
			Type:     string(item.Type),
			Brand:    item.Brand,
			Category: item.Category,
			Model:    item.Model,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, SearchResponse{
		Results: results,
		Total:   len(results),
	})
}
