package get_vehicle_catalog

import (
	"github.com/m04kA/SMC-ServiceCenter/internal/catalog"
	"github.com/m04kA/SMC-ServiceCenter/internal/domain"
)

type CatalogProvider interface {
	VehicleTypes() []domain.VehicleType
	VehicleData(vehicleType domain.VehicleType) (catalog.VehicleData, bool)
	ServiceItems(vehicleType domain.VehicleType, serviceType domain.ServiceType) []string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
