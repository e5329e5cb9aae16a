package staff

import (
	"context"

	"github.com/m04kA/SMC-ServiceCenter/internal/domain"
)

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	Create(ctx context.Context, member *domain.Staff) (*domain.Staff, error)
	ListAll(ctx context.Context) ([]*domain.Staff, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
