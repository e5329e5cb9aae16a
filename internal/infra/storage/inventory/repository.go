package inventory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-ServiceCenter/internal/domain"
	"github.com/m04kA/SMC-ServiceCenter/pkg/dbmetrics"
	"github.com/m04kA/SMC-ServiceCenter/pkg/psqlbuilder"
)

// Repository репозиторий для работы со складом запчастей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория склада
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись о запчасти
func (r *Repository) Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("inventory").
		Columns("id", "name", "quantity", "price", "status").
		Values(item.ID, item.Name, item.Quantity, item.Price, item.Status).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	item.CreatedAt = createdAt.Time

	return item, nil
}

// ListAll получает все записи склада в порядке добавления
func (r *Repository) ListAll(ctx context.Context) ([]*domain.InventoryItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "quantity", "price", "status", "created_at").
		From("inventory").
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.InventoryItem, 0)

	for rows.Next() {
		var item domain.InventoryItem
		err = rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.Price, &item.Status, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}
		items = append(items, &item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}
