package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ServiceCenter/internal/domain"
	"github.com/m04kA/SMC-ServiceCenter/internal/service/inventory/models"
)

// Service сервис для ведения складских записей
type Service struct {
	inventoryRepo InventoryRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса склада
func NewService(inventoryRepo InventoryRepository, logger Logger) *Service {
	return &Service{
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

// Add добавляет запись о запчасти.
// Статус наличия задается администратором и не выводится из количества.
func (s *Service) Add(ctx context.Context, req *models.AddItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("Add: adding inventory item name=%q, status=%q", req.Name, req.Status)

	if err := s.validate(req); err != nil {
		s.logger.Warn("Add: validation failed: %v", err)
		return nil, err
	}

	item := &domain.InventoryItem{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(req.Name),
		Quantity: req.Quantity,
		Price:    req.Price,
		Status:   domain.StockStatus(req.Status),
	}

	created, err := s.inventoryRepo.Create(ctx, item)
	if err != nil {
		s.logger.Error("Add: repository error: %v", err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: inventory item created id=%s", created.ID)
	return models.FromDomainItem(created), nil
}

// ListAll получает все складские записи
func (s *Service) ListAll(ctx context.Context) (*models.ItemListResponse, error) {
	items, err := s.inventoryRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainItemList(items), nil
}

func (s *Service) validate(req *models.AddItemRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if req.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}
	if req.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if !domain.StockStatus(req.Status).IsValid() {
		return fmt.Errorf("%w: unknown stock status %q", ErrInvalidInput, req.Status)
	}
	return nil
}
