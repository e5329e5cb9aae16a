package domain

import "time"

// BookingStatus represents the status of a service booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "Pending"
	StatusInProgress BookingStatus = "In Progress"
	StatusCompleted  BookingStatus = "Completed"
	StatusCancelled  BookingStatus = "Cancelled"
)

// VehicleType represents the type of a vehicle
type VehicleType string

const (
	VehicleCar        VehicleType = "Car"
	VehicleMotorcycle VehicleType = "Motorcycle"
)

// ServiceType represents the requested kind of service
type ServiceType string

const (
	ServiceRegularMaintenance ServiceType = "Regular Maintenance"
	ServiceRepair             ServiceType = "Repair"
	ServiceWashing            ServiceType = "Washing"
	ServiceInspection         ServiceType = "Inspection"
	ServiceCustom             ServiceType = "Custom"
)

// TimeSlot одно из четырех фиксированных двухчасовых окон обслуживания
type TimeSlot string

const (
	SlotMorning       TimeSlot = "09:00 AM - 11:00 AM"
	SlotLateMorning   TimeSlot = "11:00 AM - 01:00 PM"
	SlotAfternoon     TimeSlot = "02:00 PM - 04:00 PM"
	SlotLateAfternoon TimeSlot = "04:00 PM - 06:00 PM"
)

// Booking represents a customer's service request for one vehicle
type Booking struct {
	ID            string // UUID, immutable once created
	CustomerName  string
	VehicleType   VehicleType
	VehicleNumber string
	ServiceType   ServiceType
	BookingDate   time.Time
	TimeSlot      TimeSlot
	Status        BookingStatus
	Description   string // free text composed at creation from the form selections

	// Optional service details (added in schema v2)
	LastServiceDate *time.Time
	LastServiceKM   *int
	ServiceItems    []string // stored comma-joined
	AdditionalNotes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if the booking reached a final state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// IsActive returns true if the booking is still being worked on
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusInProgress
}

// HasLastServiceInfo returns true if the customer provided last-service details
func (b *Booking) HasLastServiceInfo() bool {
	return b.LastServiceDate != nil
}

// IsValid проверяет, что статус входит в перечисление
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsValid проверяет, что тип ТС входит в перечисление
func (v VehicleType) IsValid() bool {
	return v == VehicleCar || v == VehicleMotorcycle
}

// IsValid проверяет, что тип услуги входит в перечисление
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceRegularMaintenance, ServiceRepair, ServiceWashing, ServiceInspection, ServiceCustom:
		return true
	}
	return false
}

// IsValid проверяет, что временной слот входит в перечисление
func (t TimeSlot) IsValid() bool {
	switch t {
	case SlotMorning, SlotLateMorning, SlotAfternoon, SlotLateAfternoon:
		return true
	}
	return false
}
