package list_inventory

import (
	"context"

	"github.com/m04kA/SMC-ServiceCenter/internal/service/inventory/models"
)

type InventoryService interface {
	ListAll(ctx context.Context) (*models.ItemListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
