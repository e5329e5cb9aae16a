package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-ServiceCenter/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ServiceCenter/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	policy      TransitionPolicy
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, policy TransitionPolicy, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		policy:      policy,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings получает бронирования клиента по точному имени.
// Пустое имя не является ошибкой и дает пустой список.
func (s *Service) GetCustomerBookings(ctx context.Context, customerName string) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%q", customerName)

	if customerName == "" {
		return models.FromDomainBookingList(nil), nil
	}

	bookings, err := s.bookingRepo.GetByCustomer(ctx, customerName)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%q: %v", customerName, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: fetched %d bookings for customer=%q", len(bookings), customerName)
	return models.FromDomainBookingList(bookings), nil
}

// ListAll получает все бронирования
func (s *Service) ListAll(ctx context.Context) (*models.BookingListResponse, error) {
	s.logger.Info("ListAll: fetching all bookings")

	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus меняет статус бронирования с проверкой политики переходов
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%s, new status=%q", req.ID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for booking id=%s", req.Status, req.ID)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", req.ID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !s.policy.Allows(booking.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %q -> %q not allowed for booking id=%s", booking.Status, newStatus, req.ID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, booking.Status, newStatus)
	}

	if booking.Status != newStatus {
		if err := s.bookingRepo.UpdateStatus(ctx, req.ID, newStatus); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return nil, ErrBookingNotFound
			}
			s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", req.ID, err)
			return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
		booking.Status = newStatus
	}

	s.logger.Info("UpdateStatus: booking id=%s is now %q", req.ID, newStatus)
	return models.FromDomainBooking(booking), nil
}
