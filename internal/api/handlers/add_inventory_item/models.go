package add_inventory_item

import "github.com/m04kA/SMC-ServiceCenter/internal/service/inventory/models"

// AddItemRequest HTTP request model
type AddItemRequest struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"` // In Stock / Low Stock / Out of Stock
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddItemRequest) ToServiceRequest() *models.AddItemRequest {
	return &models.AddItemRequest{
		Name:     r.Name,
		Quantity: r.Quantity,
		Price:    r.Price,
		Status:   r.Status,
	}
}
