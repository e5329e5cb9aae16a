package get_customer_bookings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ServiceCenter/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{customerName}/bookings
// Пустое имя клиента не является ошибкой: вернется пустой список.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerName := mux.Vars(r)["customerName"]

	result, err := h.service.GetCustomerBookings(r.Context(), customerName)
	if err != nil {
		h.logger.Error("GET /customers/%s/bookings - Failed to list bookings: %v", customerName, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
