package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ServiceCenter/internal/domain"
)

// BookingResponse модель бронирования для ответа API
type BookingResponse struct {
	ID              string   `json:"id"`
	CustomerName    string   `json:"customer_name"`
	VehicleType     string   `json:"vehicle_type"`
	VehicleNumber   string   `json:"vehicle_number"`
	ServiceType     string   `json:"service_type"`
	BookingDate     string   `json:"booking_date"`
	TimeSlot        string   `json:"time_slot"`
	Status          string   `json:"status"`
	Description     string   `json:"description"`
	LastServiceDate *string  `json:"last_service_date,omitempty"`
	LastServiceKM   *int     `json:"last_service_km,omitempty"`
	ServiceItems    []string `json:"service_items,omitempty"`
	AdditionalNotes *string  `json:"additional_notes,omitempty"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

// BookingListResponse список бронирований для ответа API
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	ID     string
	Status string
}

// FromDomainBooking конвертирует доменную модель в модель ответа
func FromDomainBooking(booking *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:            booking.ID,
		CustomerName:  booking.CustomerName,
		VehicleType:   string(booking.VehicleType),
		VehicleNumber: booking.VehicleNumber,
		ServiceType:   string(booking.ServiceType),
		BookingDate:   booking.BookingDate.Format(domain.DateFormat),
		TimeSlot:      string(booking.TimeSlot),
		Status:        string(booking.Status),
		Description:   booking.Description,
		LastServiceKM: booking.LastServiceKM,
		ServiceItems:  booking.ServiceItems,
		CreatedAt:     booking.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     booking.UpdatedAt.Format(time.RFC3339),
	}

	if booking.LastServiceDate != nil {
		date := booking.LastServiceDate.Format(domain.DateFormat)
		resp.LastServiceDate = &date
	}
	if booking.AdditionalNotes != nil {
		notes := *booking.AdditionalNotes
		resp.AdditionalNotes = &notes
	}

	return resp
}

// FromDomainBookingList конвертирует список доменных моделей в модель ответа
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	responses := make([]*BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		responses = append(responses, FromDomainBooking(booking))
	}
	return &BookingListResponse{
		Bookings: responses,
		Total:    len(responses),
	}
}

// ToDomainBookingStatus конвертирует строку в доменный статус бронирования
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	domainStatus := domain.BookingStatus(status)
	if !domainStatus.IsValid() {
		return "", fmt.Errorf("unknown booking status: %s", status)
	}
	return domainStatus, nil
}
