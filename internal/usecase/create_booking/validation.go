package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ServiceCenter/internal/domain"
)

// validateRequest проверяет входные данные запроса на создание бронирования
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name must not be empty", ErrInvalidInput)
	}

	if strings.TrimSpace(req.VehicleNumber) == "" {
		return fmt.Errorf("%w: vehicle number must not be empty", ErrInvalidInput)
	}

	if !domain.VehicleType(req.VehicleType).IsValid() {
		return fmt.Errorf("%w: unknown vehicle type %q", ErrInvalidInput, req.VehicleType)
	}

	if !domain.ServiceType(req.ServiceType).IsValid() {
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, req.ServiceType)
	}

	if !domain.TimeSlot(req.TimeSlot).IsValid() {
		return fmt.Errorf("%w: unknown time slot %q", ErrInvalidInput, req.TimeSlot)
	}

	if req.BookingDate.IsZero() {
		return fmt.Errorf("%w: booking date is required", ErrInvalidInput)
	}

	if req.LastServiceKM != nil && *req.LastServiceKM < 0 {
		return fmt.Errorf("%w: last service km must not be negative", ErrInvalidInput)
	}

	return nil
}
