package add_staff

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ServiceCenter/internal/api/handlers"
	"github.com/m04kA/SMC-ServiceCenter/internal/service/staff"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStaffData   = "некорректные данные сотрудника"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Add(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrInvalidInput):
			h.logger.Warn("POST /staff - Validation failed: name=%q, error=%v", req.Name, err)
			handlers.RespondBadRequest(w, msgInvalidStaffData)

		default:
			h.logger.Error("POST /staff - Failed to add staff member: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff - Staff member created id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
