package domain

import "time"

// StockStatus represents the stock status of an inventory item.
// The status is set by the admin and is not derived from the quantity.
type StockStatus string

const (
	StockInStock    StockStatus = "In Stock"
	StockLowStock   StockStatus = "Low Stock"
	StockOutOfStock StockStatus = "Out of Stock"
)

// InventoryItem represents a spare part in the service center inventory
type InventoryItem struct {
	ID        string // UUID
	Name      string
	Quantity  int
	Price     float64
	Status    StockStatus
	CreatedAt time.Time
}

// IsValid проверяет, что статус наличия входит в перечисление
func (s StockStatus) IsValid() bool {
	switch s {
	case StockInStock, StockLowStock, StockOutOfStock:
		return true
	}
	return false
}
