package create_booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ServiceCenter/internal/domain"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	catalog     CatalogProvider
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog CatalogProvider,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования.
// Новое бронирование всегда создается в статусе Pending.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%q, vehicle=%s %s, service=%q, date=%s, slot=%q",
		req.CustomerName, req.Brand, req.Model, req.ServiceType,
		req.BookingDate.Format(domain.DateFormat), req.TimeSlot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем связку марка/категория/модель по справочнику
	if !uc.catalog.HasModel(domain.VehicleType(req.VehicleType), req.Brand, req.Category, req.Model) {
		uc.logger.Warn("CreateBooking: vehicle %q / %q / %q not in catalog for type %q",
			req.Brand, req.Category, req.Model, req.VehicleType)
		return nil, fmt.Errorf("%w: %s %s (%s)", ErrUnknownVehicle, req.Brand, req.Model, req.Category)
	}

	// 3. Собираем доменную модель
	booking := &domain.Booking{
		ID:              uuid.NewString(),
		CustomerName:    strings.TrimSpace(req.CustomerName),
		VehicleType:     domain.VehicleType(req.VehicleType),
		VehicleNumber:   strings.TrimSpace(req.VehicleNumber),
		ServiceType:     domain.ServiceType(req.ServiceType),
		BookingDate:     req.BookingDate,
		TimeSlot:        domain.TimeSlot(req.TimeSlot),
		Status:          domain.StatusPending,
		Description:     buildDescription(req),
		LastServiceDate: req.LastServiceDate,
		LastServiceKM:   req.LastServiceKM,
		ServiceItems:    req.ServiceItems,
		AdditionalNotes: req.AdditionalNotes,
	}

	// 4. Сохраняем в транзакции
	var created *domain.Booking
	err := uc.txManager.Do(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = uc.bookingRepo.Create(ctx, booking)
		return txErr
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: booking created id=%s, customer=%q", created.ID, created.CustomerName)

	return &Response{
		ID:            created.ID,
		CustomerName:  created.CustomerName,
		VehicleType:   string(created.VehicleType),
		VehicleNumber: created.VehicleNumber,
		ServiceType:   string(created.ServiceType),
		BookingDate:   created.BookingDate,
		TimeSlot:      string(created.TimeSlot),
		Status:        string(created.Status),
		Description:   created.Description,
		CreatedAt:     created.CreatedAt,
		UpdatedAt:     created.UpdatedAt,
	}, nil
}
