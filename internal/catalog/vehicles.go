package catalog

import "github.com/m04kA/SMC-ServiceCenter/internal/domain"

// ModelEntry одна позиция каталога: модель с привязкой к бренду и категории
type ModelEntry struct {
	Brand    string
	Category string
	Model    string
}

// Порядок брендов и категорий фиксирует порядок обхода каталога
// (бренд -> категория -> модель) и порядок элементов в ответах API.

var carBrands = []string{
	"Maruti Suzuki",
	"Tata",
	"Mahindra",
	"Hyundai",
	"Toyota",
	"Honda",
	"Kia",
	"Volkswagen",
	"Skoda",
	"MG",
}

var carCategories = []string{
	"Hatchback",
	"Sedan",
	"SUV",
	"MPV",
	"Electric",
	"Pickup",
}

var carEntries = []ModelEntry{
	// Maruti Suzuki
	{"Maruti Suzuki", "Hatchback", "Alto"},
	{"Maruti Suzuki", "Hatchback", "WagonR"},
	{"Maruti Suzuki", "Hatchback", "Swift"},
	{"Maruti Suzuki", "Hatchback", "Baleno"},
	{"Maruti Suzuki", "Hatchback", "Celerio"},
	{"Maruti Suzuki", "Hatchback", "S-Presso"},
	{"Maruti Suzuki", "Hatchback", "Ignis"},
	{"Maruti Suzuki", "Sedan", "Dzire"},
	{"Maruti Suzuki", "Sedan", "Ciaz"},
	{"Maruti Suzuki", "Sedan", "SX4"},
	{"Maruti Suzuki", "SUV", "Brezza"},
	{"Maruti Suzuki", "SUV", "Grand Vitara"},
	{"Maruti Suzuki", "SUV", "Ertiga"},
	{"Maruti Suzuki", "SUV", "XL6"},
	{"Maruti Suzuki", "SUV", "Jimny"},
	{"Maruti Suzuki", "SUV", "Fronx"},
	{"Maruti Suzuki", "MPV", "Eeco"},
	{"Maruti Suzuki", "MPV", "Omni"},
	{"Maruti Suzuki", "Electric", "eVX"},

	// Tata
	{"Tata", "Hatchback", "Tiago"},
	{"Tata", "Hatchback", "Altroz"},
	{"Tata", "Hatchback", "Punch"},
	{"Tata", "Hatchback", "Nano"},
	{"Tata", "Sedan", "Tigor"},
	{"Tata", "Sedan", "Indigo"},
	{"Tata", "Sedan", "Manza"},
	{"Tata", "SUV", "Nexon"},
	{"Tata", "SUV", "Harrier"},
	{"Tata", "SUV", "Safari"},
	{"Tata", "SUV", "Gravitas"},
	{"Tata", "Electric", "Nexon EV"},
	{"Tata", "Electric", "Tigor EV"},

	// Mahindra
	{"Mahindra", "SUV", "XUV700"},
	{"Mahindra", "SUV", "XUV300"},
	{"Mahindra", "SUV", "Scorpio"},
	{"Mahindra", "SUV", "Bolero"},
	{"Mahindra", "SUV", "Thar"},
	{"Mahindra", "SUV", "XUV400"},
	{"Mahindra", "Electric", "e2o"},
	{"Mahindra", "Electric", "eVerito"},
	{"Mahindra", "Pickup", "Bolero Pickup"},
	{"Mahindra", "Pickup", "Jeeto"},
	{"Mahindra", "Pickup", "Bolero Maxi Truck"},

	// Hyundai
	{"Hyundai", "Hatchback", "i10"},
	{"Hyundai", "Hatchback", "i20"},
	{"Hyundai", "Hatchback", "Grand i10"},
	{"Hyundai", "Hatchback", "Santro"},
	{"Hyundai", "Sedan", "Verna"},
	{"Hyundai", "Sedan", "Aura"},
	{"Hyundai", "Sedan", "Elantra"},
	{"Hyundai", "Sedan", "Sonata"},
	{"Hyundai", "SUV", "Creta"},
	{"Hyundai", "SUV", "Venue"},
	{"Hyundai", "SUV", "Alcazar"},
	{"Hyundai", "SUV", "Tucson"},
	{"Hyundai", "SUV", "Kona Electric"},
	{"Hyundai", "MPV", "Starex"},

	// Toyota
	{"Toyota", "Sedan", "Camry"},
	{"Toyota", "Sedan", "Corolla"},
	{"Toyota", "Sedan", "Etios"},
	{"Toyota", "SUV", "Fortuner"},
	{"Toyota", "SUV", "Urban Cruiser"},
	{"Toyota", "SUV", "Land Cruiser"},
	{"Toyota", "MPV", "Innova"},
	{"Toyota", "MPV", "Vellfire"},
	{"Toyota", "Electric", "bZ4X"},

	// Honda
	{"Honda", "Hatchback", "Jazz"},
	{"Honda", "Hatchback", "Brio"},
	{"Honda", "Hatchback", "Amaze"},
	{"Honda", "Sedan", "City"},
	{"Honda", "Sedan", "Civic"},
	{"Honda", "Sedan", "Accord"},
	{"Honda", "SUV", "WR-V"},
	{"Honda", "SUV", "Elevate"},
	{"Honda", "SUV", "CR-V"},
	{"Honda", "MPV", "BR-V"},

	// Kia
	{"Kia", "Hatchback", "Sonet"},
	{"Kia", "Sedan", "Carens"},
	{"Kia", "SUV", "Seltos"},
	{"Kia", "SUV", "Carnival"},
	{"Kia", "SUV", "EV6"},

	// Volkswagen
	{"Volkswagen", "Hatchback", "Polo"},
	{"Volkswagen", "Hatchback", "Virtus"},
	{"Volkswagen", "Sedan", "Vento"},
	{"Volkswagen", "SUV", "Taigun"},
	{"Volkswagen", "SUV", "T-Roc"},

	// Skoda
	{"Skoda", "Sedan", "Rapid"},
	{"Skoda", "Sedan", "Superb"},
	{"Skoda", "Sedan", "Octavia"},
	{"Skoda", "SUV", "Kodiaq"},
	{"Skoda", "SUV", "Karoq"},

	// MG
	{"MG", "SUV", "Hector"},
	{"MG", "SUV", "Astor"},
	{"MG", "SUV", "Gloster"},
	{"MG", "SUV", "Comet"},
	{"MG", "Electric", "ZS EV"},
}

var motorcycleBrands = []string{
	"Honda",
	"Bajaj",
	"TVS",
	"Royal Enfield",
	"KTM",
	"Yamaha",
	"Suzuki",
	"Hero",
	"Jawa",
	"BMW",
}

var motorcycleCategories = []string{
	"Commuter",
	"Sports",
	"Scooter",
	"Adventure",
	"Classic",
	"Cruiser",
	"Modern Classic",
	"Naked",
	"Perak",
	"Bobber",
}

var motorcycleEntries = []ModelEntry{
	// Honda
	{"Honda", "Commuter", "Shine"},
	{"Honda", "Commuter", "Unicorn"},
	{"Honda", "Commuter", "Livo"},
	{"Honda", "Commuter", "SP 125"},
	{"Honda", "Commuter", "CB Shine"},
	{"Honda", "Commuter", "Dream Yuga"},
	{"Honda", "Sports", "CBR 150R"},
	{"Honda", "Sports", "CBR 250R"},
	{"Honda", "Sports", "CBR 650R"},
	{"Honda", "Sports", "CB300R"},
	{"Honda", "Scooter", "Activa"},
	{"Honda", "Scooter", "Dio"},
	{"Honda", "Scooter", "Grazia"},
	{"Honda", "Scooter", "Aviator"},
	{"Honda", "Adventure", "CB200X"},
	{"Honda", "Adventure", "CB500X"},

	// Bajaj
	{"Bajaj", "Commuter", "Pulsar 150"},
	{"Bajaj", "Commuter", "Platina"},
	{"Bajaj", "Commuter", "CT 100"},
	{"Bajaj", "Commuter", "Pulsar 125"},
	{"Bajaj", "Commuter", "Pulsar NS160"},
	{"Bajaj", "Sports", "Pulsar 220F"},
	{"Bajaj", "Sports", "Dominar 400"},
	{"Bajaj", "Sports", "Pulsar NS200"},
	{"Bajaj", "Sports", "Pulsar RS200"},
	{"Bajaj", "Scooter", "Chetak"},
	{"Bajaj", "Scooter", "Platina 110"},

	// TVS
	{"TVS", "Commuter", "Apache RTR 160"},
	{"TVS", "Commuter", "Sport"},
	{"TVS", "Commuter", "Star City"},
	{"TVS", "Commuter", "Radeon"},
	{"TVS", "Sports", "Apache RR 310"},
	{"TVS", "Sports", "Apache RTR 200"},
	{"TVS", "Sports", "Apache RTR 180"},
	{"TVS", "Scooter", "Jupiter"},
	{"TVS", "Scooter", "NTorq"},
	{"TVS", "Scooter", "Scooty Pep+"},
	{"TVS", "Scooter", "Scooty Zest"},

	// Royal Enfield
	{"Royal Enfield", "Adventure", "Himalayan"},
	{"Royal Enfield", "Adventure", "Scram 411"},
	{"Royal Enfield", "Classic", "Classic 350"},
	{"Royal Enfield", "Classic", "Classic 500"},
	{"Royal Enfield", "Classic", "Classic 650"},
	{"Royal Enfield", "Cruiser", "Meteor 350"},
	{"Royal Enfield", "Cruiser", "Thunderbird"},
	{"Royal Enfield", "Cruiser", "Super Meteor 650"},
	{"Royal Enfield", "Modern Classic", "Interceptor 650"},
	{"Royal Enfield", "Modern Classic", "Continental GT 650"},

	// KTM
	{"KTM", "Adventure", "Adventure 400"},
	{"KTM", "Adventure", "Adventure 390"},
	{"KTM", "Adventure", "Adventure 250"},
	{"KTM", "Adventure", "390 Adventure"},
	{"KTM", "Naked", "Duke 125"},
	{"KTM", "Naked", "Duke 250"},

	// Yamaha
	{"Yamaha", "Commuter", "FZ"},
	{"Yamaha", "Commuter", "FZ-S"},
	{"Yamaha", "Commuter", "FZ-X"},
	{"Yamaha", "Commuter", "FZ25"},
	{"Yamaha", "Sports", "R15"},
	{"Yamaha", "Sports", "MT-15"},
	{"Yamaha", "Sports", "MT-03"},
	{"Yamaha", "Scooter", "Fascino"},
	{"Yamaha", "Scooter", "Ray ZR"},
	{"Yamaha", "Scooter", "Aerox 155"},

	// Suzuki
	{"Suzuki", "Commuter", "Intruder"},
	{"Suzuki", "Commuter", "Access 125"},
	{"Suzuki", "Sports", "Gixxer"},
	{"Suzuki", "Sports", "Gixxer SF"},
	{"Suzuki", "Sports", "V-Strom 250"},
	{"Suzuki", "Adventure", "V-Strom 650"},

	// Hero
	{"Hero", "Commuter", "Splendor"},
	{"Hero", "Commuter", "HF Deluxe"},
	{"Hero", "Commuter", "Passion"},
	{"Hero", "Commuter", "Glamour"},
	{"Hero", "Commuter", "Xtreme"},
	{"Hero", "Sports", "Xtreme 160R"},
	{"Hero", "Sports", "Karizma"},
	{"Hero", "Sports", "Xpulse"},
	{"Hero", "Scooter", "Maestro Edge"},
	{"Hero", "Scooter", "Pleasure+"},
	{"Hero", "Scooter", "Destini"},

	// Jawa
	{"Jawa", "Classic", "Jawa"},
	{"Jawa", "Classic", "Jawa 42"},
	{"Jawa", "Perak", "Perak"},
	{"Jawa", "Bobber", "42 Bobber"},

	// BMW
	{"BMW", "Sports", "S1000RR"},
	{"BMW", "Sports", "M1000RR"},
	{"BMW", "Adventure", "GS 310"},
	{"BMW", "Adventure", "F850GS"},
	{"BMW", "Naked", "G310R"},
}

// vehicleCatalog статические данные каталога по типам ТС
var vehicleCatalog = map[domain.VehicleType]struct {
	brands     []string
	categories []string
	entries    []ModelEntry
}{
	domain.VehicleCar:        {brands: carBrands, categories: carCategories, entries: carEntries},
	domain.VehicleMotorcycle: {brands: motorcycleBrands, categories: motorcycleCategories, entries: motorcycleEntries},
}
