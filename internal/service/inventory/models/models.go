package models

import (
	"time"

	"github.com/m04kA/SMC-ServiceCenter/internal/domain"
)

// AddItemRequest запрос на добавление запчасти
type AddItemRequest struct {
	Name     string
	Quantity int
	Price    float64
	Status   string
}

// ItemResponse модель запчасти для ответа API
type ItemResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

// ItemListResponse список запчастей для ответа API
type ItemListResponse struct {
	Items []*ItemResponse `json:"items"`
	Total int             `json:"total"`
}

// FromDomainItem конвертирует доменную модель в модель ответа
func FromDomainItem(item *domain.InventoryItem) *ItemResponse {
	return &ItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		Price:     item.Price,
		Status:    string(item.Status),
		CreatedAt: item.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainItemList конвертирует список доменных моделей в модель ответа
func FromDomainItemList(items []*domain.InventoryItem) *ItemListResponse {
	responses := make([]*ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, FromDomainItem(item))
	}
	return &ItemListResponse{
		Items: responses,
		Total: len(responses),
	}
}
