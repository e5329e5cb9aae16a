package domain

import "time"

// StaffDuty represents the duty of a staff member
type StaffDuty string

const (
	DutyMechanic     StaffDuty = "Mechanic"
	DutyHelper       StaffDuty = "Helper"
	DutyManager      StaffDuty = "Manager"
	DutyReceptionist StaffDuty = "Receptionist"
)

// Staff represents a staff member of the service center
type Staff struct {
	ID        string // UUID
	Name      string
	Duty      StaffDuty
	Salary    float64
	CreatedAt time.Time
}

// IsValid проверяет, что должность входит в перечисление
func (d StaffDuty) IsValid() bool {
	switch d {
	case DutyMechanic, DutyHelper, DutyManager, DutyReceptionist:
		return true
	}
	return false
}
