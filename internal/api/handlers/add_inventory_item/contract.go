package add_inventory_item

import (
	"context"

	"github.com/m04kA/SMC-ServiceCenter/internal/service/inventory/models"
)

type InventoryService interface {
	Add(ctx context.Context, req *models.AddItemRequest) (*models.ItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
