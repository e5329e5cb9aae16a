package get_vehicle_catalog

// VehicleDataResponse справочник по одному типу ТС
type VehicleDataResponse struct {
	Brands     []string            `json:"brands"`
	Categories []string            `json:"categories"`
	Models     map[string][]string `json:"models"`
}

// CatalogResponse HTTP response model
type CatalogResponse struct {
	Vehicles map[string]VehicleDataResponse `json:"vehicles"`
}
