package catalog

import "github.com/m04kA/SMC-ServiceCenter/internal/domain"

// Списки работ для типов услуг с фиксированным набором опций.
// Для ремонта набор работ берется из таксономии ремонтов (repairs.go),
// для Custom набор не ограничен.

var carMaintenanceItems = []string{
	"Engine Oil Change",
	"Oil Filter Replacement",
	"Air Filter Cleaning/Replacement",
	"Coolant Check/Top-up",
	"Brake Fluid Check",
	"Wheel Alignment",
	"Wheel Balancing",
	"Tire Rotation",
	"Battery Check",
	"AC Service",
	"General Inspection",
}

var carWashingItems = []string{
	"Basic Wash (Exterior)",
	"Premium Wash (Exterior + Interior)",
	"Deep Cleaning",
	"Interior Vacuuming",
	"Dashboard Polishing",
	"Seat Cleaning",
	"Carpet Cleaning",
	"Waxing & Polishing",
	"Ceramic Coating",
	"Underbody Wash",
}

var carInspectionItems = []string{
	"Pre-purchase Inspection",
	"Annual Safety Check",
	"Insurance Inspection",
	"Warranty Inspection",
	"Performance Check",
	"Emission Test",
	"Brake System Inspection",
	"Suspension Inspection",
	"Electrical System Check",
	"AC System Check",
}

var motorcycleMaintenanceItems = []string{
	"Engine Oil Change",
	"Oil Filter Replacement",
	"Air Filter Cleaning",
	"Chain Cleaning and Lubrication",
	"Brake Pad Check",
	"Clutch Adjustment",
	"Spark Plug Check/Replacement",
	"Battery Check",
	"General Inspection",
}

var motorcycleWashingItems = []string{
	"Basic Wash",
	"Premium Wash",
	"Chain Cleaning",
	"Deep Cleaning",
	"Polishing",
	"Ceramic Coating",
	"Engine Cleaning",
}

var motorcycleInspectionItems = []string{
	"Pre-purchase Inspection",
	"Annual Safety Check",
	"Insurance Inspection",
	"Warranty Inspection",
	"Performance Check",
	"Emission Test",
	"Brake System Inspection",
	"Suspension Inspection",
	"Electrical System Check",
}

var serviceItemCatalog = map[domain.VehicleType]map[domain.ServiceType][]string{
	domain.VehicleCar: {
		domain.ServiceRegularMaintenance: carMaintenanceItems,
		domain.ServiceWashing:            carWashingItems,
		domain.ServiceInspection:         carInspectionItems,
	},
	domain.VehicleMotorcycle: {
		domain.ServiceRegularMaintenance: motorcycleMaintenanceItems,
		domain.ServiceWashing:            motorcycleWashingItems,
		domain.ServiceInspection:         motorcycleInspectionItems,
	},
}
