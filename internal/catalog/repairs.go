package catalog

import "github.com/m04kA/SMC-ServiceCenter/internal/domain"

// Таксономия ремонтных работ: категория ремонта -> список работ.
// Порядок категорий фиксирован отдельными списками.

var carRepairCategories = []string{
	"Engine",
	"Transmission",
	"Brakes",
	"Suspension",
	"Electrical",
	"AC",
	"Body",
}

var carRepairs = map[string][]string{
	"Engine": {
		"Engine Overhaul",
		"Piston Replacement",
		"Cylinder Head Repair",
		"Timing Belt Replacement",
		"Engine Mount Replacement",
	},
	"Transmission": {
		"Clutch Replacement",
		"Gearbox Repair",
		"Automatic Transmission Service",
		"Differential Repair",
		"Drive Shaft Replacement",
	},
	"Brakes": {
		"Brake Pad Replacement",
		"Brake Disc Replacement",
		"Brake Caliper Repair",
		"Brake Line Replacement",
		"ABS System Repair",
	},
	"Suspension": {
		"Shock Absorber Replacement",
		"Spring Replacement",
		"Control Arm Replacement",
		"Ball Joint Replacement",
		"Wheel Bearing Replacement",
	},
	"Electrical": {
		"Battery Replacement",
		"Alternator Repair",
		"Starter Motor Replacement",
		"ECU Repair",
		"Wiring Harness Repair",
	},
	"AC": {
		"AC Compressor Replacement",
		"AC Condenser Repair",
		"AC Evaporator Replacement",
		"AC Gas Refill",
		"AC Control Unit Repair",
	},
	"Body": {
		"Dent Removal",
		"Paint Work",
		"Panel Replacement",
		"Glass Replacement",
		"Bumper Repair",
	},
}

var motorcycleRepairCategories = []string{
	"Engine",
	"Transmission",
	"Brakes",
	"Suspension",
	"Electrical",
	"Body",
}

var motorcycleRepairs = map[string][]string{
	"Engine": {
		"Engine Overhaul",
		"Piston Replacement",
		"Cylinder Head Repair",
		"Valve Adjustment",
		"Engine Mount Replacement",
	},
	"Transmission": {
		"Clutch Replacement",
		"Gearbox Repair",
		"Chain & Sprocket Replacement",
		"Primary Drive Repair",
		"Gear Shifter Repair",
	},
	"Brakes": {
		"Brake Pad Replacement",
		"Brake Disc Replacement",
		"Brake Caliper Repair",
		"Brake Line Replacement",
		"ABS System Repair",
	},
	"Suspension": {
		"Front Fork Repair",
		"Rear Shock Replacement",
		"Swing Arm Repair",
		"Wheel Bearing Replacement",
		"Steering Head Bearing Replacement",
	},
	"Electrical": {
		"Battery Replacement",
		"Alternator Repair",
		"Starter Motor Replacement",
		"ECU Repair",
		"Wiring Harness Repair",
	},
	"Body": {
		"Fairing Repair",
		"Paint Work",
		"Panel Replacement",
		"Mirror Replacement",
		"Seat Repair",
	},
}

var repairCatalog = map[domain.VehicleType]struct {
	categories []string
	items      map[string][]string
}{
	domain.VehicleCar:        {categories: carRepairCategories, items: carRepairs},
	domain.VehicleMotorcycle: {categories: motorcycleRepairCategories, items: motorcycleRepairs},
}
