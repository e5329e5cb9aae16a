package get_advice

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ServiceCenter/internal/api/handlers"
	"github.com/m04kA/SMC-ServiceCenter/internal/service/advisory"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAdviceKind  = "неизвестный вид консультации"
)

type Handler struct {
	service AdvisoryService
	logger  Logger
}

func NewHandler(service AdvisoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/advice
// Недоступность внешнего сервиса не является ошибкой:
// вернется статическая рекомендация с флагом degraded.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AdviceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /advice - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Advise(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, advisory.ErrInvalidInput):
			h.logger.Warn("POST /advice - Invalid advice kind %q", req.Kind)
			handlers.RespondBadRequest(w, msgInvalidAdviceKind)

		default:
			h.logger.Error("POST /advice - Failed to generate advice: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
