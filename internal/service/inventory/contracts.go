package inventory

import (
	"context"

	"github.com/m04kA/SMC-ServiceCenter/internal/domain"
)

// InventoryRepository интерфейс репозитория склада
type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	ListAll(ctx context.Context) ([]*domain.InventoryItem, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
