package search_vehicles

import (
	"github.com/m04kA/SMC-ServiceCenter/internal/catalog"
	"github.com/m04kA/SMC-ServiceCenter/internal/domain"
)

type CatalogProvider interface {
	Search(query string, vehicleType *domain.VehicleType) []catalog.SearchResult
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
