package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ServiceCenter/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-ServiceCenter/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные бронирования"
	msgUnknownVehicle     = "транспортное средство не найдено в справочнике"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: customer=%q, error=%v", req.CustomerName, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrUnknownVehicle):
			h.logger.Warn("POST /bookings - Unknown vehicle: %s %s (%s)", req.Brand, req.Model, req.Category)
			handlers.RespondBadRequest(w, msgUnknownVehicle)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer=%q, error=%v", req.CustomerName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, customer=%q", result.ID, result.CustomerName)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
