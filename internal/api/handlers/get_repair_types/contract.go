package get_repair_types

import (
	"github.com/m04kA/SMC-ServiceCenter/internal/domain"
)

type CatalogProvider interface {
	VehicleTypes() []domain.VehicleType
	RepairTypes(vehicleType domain.VehicleType) map[string][]string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
