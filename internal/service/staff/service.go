package staff

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ServiceCenter/internal/domain"
	"github.com/m04kA/SMC-ServiceCenter/internal/service/staff/models"
)

// Service сервис для ведения записей о сотрудниках
type Service struct {
	staffRepo StaffRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

// Add добавляет запись о сотруднике
func (s *Service) Add(ctx context.Context, req *models.AddStaffRequest) (*models.StaffResponse, error) {
	s.logger.Info("Add: adding staff member name=%q, duty=%q", req.Name, req.Duty)

	if err := s.validate(req); err != nil {
		s.logger.Warn("Add: validation failed: %v", err)
		return nil, err
	}

	member := &domain.Staff{
		ID:     uuid.NewString(),
		Name:   strings.TrimSpace(req.Name),
		Duty:   domain.StaffDuty(req.Duty),
		Salary: req.Salary,
	}

	created, err := s.staffRepo.Create(ctx, member)
	if err != nil {
		s.logger.Error("Add: repository error: %v", err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: staff member created id=%s", created.ID)
	return models.FromDomainStaff(created), nil
}

// ListAll получает все записи о сотрудниках
func (s *Service) ListAll(ctx context.Context) (*models.StaffListResponse, error) {
	members, err := s.staffRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStaffList(members), nil
}

func (s *Service) validate(req *models.AddStaffRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if !domain.StaffDuty(req.Duty).IsValid() {
		return fmt.Errorf("%w: unknown duty %q", ErrInvalidInput, req.Duty)
	}
	if req.Salary <= 0 {
		return fmt.Errorf("%w: salary must be positive", ErrInvalidInput)
	}
	return nil
}
