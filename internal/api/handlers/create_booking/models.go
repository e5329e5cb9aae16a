package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ServiceCenter/internal/domain"
	createBooking "github.com/m04kA/SMC-ServiceCenter/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName    string   `json:"customerName"`
	VehicleType     string   `json:"vehicleType"` // "Car" / "Motorcycle"
	VehicleNumber   string   `json:"vehicleNumber"`
	Brand           string   `json:"brand"`
	Category        string   `json:"category"`
	Model           string   `json:"model"`
	ServiceType     string   `json:"serviceType"`
	BookingDate     string   `json:"bookingDate"` // "2025-10-15"
	TimeSlot        string   `json:"timeSlot"`
	LastServiceDate *string  `json:"lastServiceDate,omitempty"` // "2025-04-10"
	LastServiceKM   *int     `json:"lastServiceKm,omitempty"`
	ServiceItems    []string `json:"serviceItems,omitempty"`
	AdditionalNotes *string  `json:"additionalNotes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customerName"`
	VehicleType   string `json:"vehicleType"`
	VehicleNumber string `json:"vehicleNumber"`
	ServiceType   string `json:"serviceType"`
	BookingDate   string `json:"bookingDate"`
	TimeSlot      string `json:"timeSlot"`
	Status        string `json:"status"`
	Description   string `json:"description"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	var lastServiceDate *time.Time
	if r.LastServiceDate != nil {
		parsed, err := time.Parse(domain.DateFormat, *r.LastServiceDate)
		if err != nil {
			return nil, err
		}
		lastServiceDate = &parsed
	}

	return &createBooking.Request{
		CustomerName:    r.CustomerName,
		VehicleType:     r.VehicleType,
		VehicleNumber:   r.VehicleNumber,
		Brand:           r.Brand,
		Category:        r.Category,
		Model:           r.Model,
		ServiceType:     r.ServiceType,
		BookingDate:     bookingDate,
		TimeSlot:        r.TimeSlot,
		LastServiceDate: lastServiceDate,
		LastServiceKM:   r.LastServiceKM,
		ServiceItems:    r.ServiceItems,
		AdditionalNotes: r.AdditionalNotes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		CustomerName:  resp.CustomerName,
		VehicleType:   resp.VehicleType,
		VehicleNumber: resp.VehicleNumber,
		ServiceType:   resp.ServiceType,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		TimeSlot:      resp.TimeSlot,
		Status:        resp.Status,
		Description:   resp.Description,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
