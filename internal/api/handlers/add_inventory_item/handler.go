package add_inventory_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ServiceCenter/internal/api/handlers"
	"github.com/m04kA/SMC-ServiceCenter/internal/service/inventory"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidItemData    = "некорректные данные запчасти"
)

type Handler struct {
	service InventoryService
	logger  Logger
}

func NewHandler(service InventoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/inventory
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /inventory - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Add(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrInvalidInput):
			h.logger.Warn("POST /inventory - Validation failed: name=%q, error=%v", req.Name, err)
			handlers.RespondBadRequest(w, msgInvalidItemData)

		default:
			h.logger.Error("POST /inventory - Failed to add inventory item: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /inventory - Inventory item created id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
