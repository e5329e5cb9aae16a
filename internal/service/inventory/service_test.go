package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ServiceCenter/internal/domain"
	"github.com/m04kA/SMC-ServiceCenter/internal/service/inventory/models"
)

type stubRepo struct {
	items []*domain.InventoryItem
	err   error
}

func (s *stubRepo) Create(_ context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	item.CreatedAt = time.Now()
	s.items = append(s.items, item)
	return item, nil
}

func (s *stubRepo) ListAll(_ context.Context) ([]*domain.InventoryItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestAdd_Success(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, nopLogger{})

	result, err := svc.Add(context.Background(), &models.AddItemRequest{
		Name:     "Brake Pads",
		Quantity: 12,
		Price:    1499.50,
		Status:   "In Stock",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "Brake Pads", result.Name)
	assert.Equal(t, "In Stock", result.Status)
	require.Len(t, repo.items, 1)
}

func TestAdd_ZeroQuantityIsAllowed(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, nopLogger{})

	result, err := svc.Add(context.Background(), &models.AddItemRequest{
		Name:     "Chain Kit",
		Quantity: 0,
		Price:    2999,
		Status:   "Out of Stock",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Quantity)
}

func TestAdd_StatusNotDerivedFromQuantity(t *testing.T) {
	// Статус задается администратором и намеренно не сверяется с количеством
	repo := &stubRepo{}
	svc := NewService(repo, nopLogger{})

	result, err := svc.Add(context.Background(), &models.AddItemRequest{
		Name:     "Air Filter",
		Quantity: 100,
		Price:    499,
		Status:   "Out of Stock",
	})

	require.NoError(t, err)
	assert.Equal(t, "Out of Stock", result.Status)
}

func TestAdd_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		req  models.AddItemRequest
	}{
		{"empty name", models.AddItemRequest{Name: "", Quantity: 1, Price: 100, Status: "In Stock"}},
		{"negative quantity", models.AddItemRequest{Name: "Brake Pads", Quantity: -1, Price: 100, Status: "In Stock"}},
		{"zero price", models.AddItemRequest{Name: "Brake Pads", Quantity: 1, Price: 0, Status: "In Stock"}},
		{"unknown status", models.AddItemRequest{Name: "Brake Pads", Quantity: 1, Price: 100, Status: "Backordered"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{}
			svc := NewService(repo, nopLogger{})

			_, err := svc.Add(context.Background(), &tt.req)

			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.items)
		})
	}
}

func TestListAll(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Add(context.Background(), &models.AddItemRequest{
		Name: "Brake Pads", Quantity: 12, Price: 1499.50, Status: "In Stock",
	})
	require.NoError(t, err)

	result, err := svc.ListAll(context.Background())

	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "Brake Pads", result.Items[0].Name)
}
