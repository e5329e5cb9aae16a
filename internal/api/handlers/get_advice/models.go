package get_advice

import "github.com/m04kA/SMC-ServiceCenter/internal/service/advisory/models"

// AdviceRequest HTTP request model
type AdviceRequest struct {
	Kind            string   `json:"kind"` // diagnostic / maintenance / cost_estimate / chat
	VehicleType     string   `json:"vehicleType,omitempty"`
	Brand           string   `json:"brand,omitempty"`
	Model           string   `json:"model,omitempty"`
	Symptoms        string   `json:"symptoms,omitempty"`
	OdometerKM      int      `json:"odometerKm,omitempty"`
	LastServiceDate string   `json:"lastServiceDate,omitempty"`
	ServiceType     string   `json:"serviceType,omitempty"`
	ServiceItems    []string `json:"serviceItems,omitempty"`
	Question        string   `json:"question,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AdviceRequest) ToServiceRequest() *models.AdviceRequest {
	return &models.AdviceRequest{
		Kind:            r.Kind,
		VehicleType:     r.VehicleType,
		Brand:           r.Brand,
		Model:           r.Model,
		Symptoms:        r.Symptoms,
		OdometerKM:      r.OdometerKM,
		LastServiceDate: r.LastServiceDate,
		ServiceType:     r.ServiceType,
		ServiceItems:    r.ServiceItems,
		Question:        r.Question,
	}
}
