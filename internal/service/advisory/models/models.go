package models

// AdviceRequest запрос на консультацию
type AdviceRequest struct {
	Kind            string
	VehicleType     string
	Brand           string
	Model           string
	Symptoms        string
	OdometerKM      int
	LastServiceDate string
	ServiceType     string
	ServiceItems    []string
	Question        string
}

// AdviceResponse ответ с текстом консультации.
// Degraded выставляется, когда внешний сервис был недоступен
// и вернулась статическая рекомендация.
type AdviceResponse struct {
	Kind     string `json:"kind"`
	Advice   string `json:"advice"`
	Degraded bool   `json:"degraded"`
}
