package models

import (
	"time"

	"github.com/m04kA/SMC-ServiceCenter/internal/domain"
)

// AddStaffRequest запрос на добавление сотрудника
type AddStaffRequest struct {
	Name   string
	Duty   string
	Salary float64
}

// StaffResponse модель сотрудника для ответа API
type StaffResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Duty      string  `json:"duty"`
	Salary    float64 `json:"salary"`
	CreatedAt string  `json:"created_at"`
}

// StaffListResponse список сотрудников для ответа API
type StaffListResponse struct {
	Staff []*StaffResponse `json:"staff"`
	Total int              `json:"total"`
}

// FromDomainStaff конвертирует доменную модель в модель ответа
func FromDomainStaff(member *domain.Staff) *StaffResponse {
	return &StaffResponse{
		ID:        member.ID,
		Name:      member.Name,
		Duty:      string(member.Duty),
		Salary:    member.Salary,
		CreatedAt: member.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainStaffList конвертирует список доменных моделей в модель ответа
func FromDomainStaffList(members []*domain.Staff) *StaffListResponse {
	responses := make([]*StaffResponse, 0, len(members))
	for _, member := range members {
		responses = append(responses, FromDomainStaff(member))
	}
	return &StaffListResponse{
		Staff: responses,
		Total: len(responses),
	}
}
