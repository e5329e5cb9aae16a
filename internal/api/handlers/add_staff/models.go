package add_staff

import "github.com/m04kA/SMC-ServiceCenter/internal/service/staff/models"

// AddStaffRequest HTTP request model
type AddStaffRequest struct {
	Name   string  `json:"name"`
	Duty   string  `json:"duty"` // Mechanic / Helper / Manager / Receptionist
	Salary float64 `json:"salary"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddStaffRequest) ToServiceRequest() *models.AddStaffRequest {
	return &models.AddStaffRequest{
		Name:   r.Name,
		Duty:   r.Duty,
		Salary: r.Salary,
	}
}
