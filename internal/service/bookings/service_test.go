package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ServiceCenter/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ServiceCenter/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ServiceCenter/internal/service/bookings/models"
)

type stubRepo struct {
	bookings map[string]*domain.Booking
	order    []string
}

func newStubRepo(bookings ...*domain.Booking) *stubRepo {
	repo := &stubRepo{bookings: make(map[string]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
		repo.order = append(repo.order, b.ID)
	}
	return repo
}

func (s *stubRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	booking, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (s *stubRepo) GetByCustomer(_ context.Context, customerName string) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, id := range s.order {
		if s.bookings[id].CustomerName == customerName {
			copied := *s.bookings[id]
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (s *stubRepo) ListAll(_ context.Context) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0, len(s.order))
	for _, id := range s.order {
		copied := *s.bookings[id]
		result = append(result, &copied)
	}
	return result, nil
}

func (s *stubRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	booking, ok := s.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	booking.Status = status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(id, customer string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		CustomerName:  customer,
		VehicleType:   domain.VehicleCar,
		VehicleNumber: "KA-01-AB-1234",
		ServiceType:   domain.ServiceWashing,
		BookingDate:   time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot:      domain.SlotMorning,
		Status:        status,
		Description:   "Vehicle: Maruti Suzuki Swift (Hatchback)",
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newStubRepo(), PolicyStrict, nopLogger{})

	_, err := svc.GetByID(context.Background(), "missing")

	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetCustomerBookings_EmptyNameYieldsEmptyList(t *testing.T) {
	svc := NewService(newStubRepo(testBooking("b1", "Asha Rao", domain.StatusPending)), PolicyStrict, nopLogger{})

	result, err := svc.GetCustomerBookings(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, result.Bookings)
	assert.Zero(t, result.Total)
}

func TestGetCustomerBookings_ExactMatch(t *testing.T) {
	repo := newStubRepo(
		testBooking("b1", "Asha Rao", domain.StatusPending),
		testBooking("b2", "Ravi Kumar", domain.StatusPending),
		testBooking("b3", "Asha Rao", domain.StatusCompleted),
	)
	svc := NewService(repo, PolicyStrict, nopLogger{})

	result, err := svc.GetCustomerBookings(context.Background(), "Asha Rao")

	require.NoError(t, err)
	require.Equal(t, 2, result.Total)
	assert.Equal(t, "b1", result.Bookings[0].ID)
	assert.Equal(t, "b3", result.Bookings[1].ID)
}

func TestListAll_Idempotent(t *testing.T) {
	repo := newStubRepo(
		testBooking("b1", "Asha Rao", domain.StatusPending),
		testBooking("b2", "Ravi Kumar", domain.StatusInProgress),
	)
	svc := NewService(repo, PolicyStrict, nopLogger{})

	first, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	second, err := svc.ListAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := newStubRepo(testBooking("b1", "Asha Rao", domain.StatusPending))
	svc := NewService(repo, PolicyStrict, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		ID:     "missing",
		Status: "Completed",
	})

	require.ErrorIs(t, err, ErrBookingNotFound)
	assert.Equal(t, domain.StatusPending, repo.bookings["b1"].Status, "store must stay unchanged")
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := newStubRepo(testBooking("b1", "Asha Rao", domain.StatusPending))
	svc := NewService(repo, PolicyStrict, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		ID:     "b1",
		Status: "Done",
	})

	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_StrictPolicy(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.BookingStatus
		to      string
		allowed bool
	}{
		{"pending to in progress", domain.StatusPending, "In Progress", true},
		{"pending to cancelled", domain.StatusPending, "Cancelled", true},
		{"pending to completed", domain.StatusPending, "Completed", false},
		{"in progress to completed", domain.StatusInProgress, "Completed", true},
		{"in progress to cancelled", domain.StatusInProgress, "Cancelled", true},
		{"in progress to pending", domain.StatusInProgress, "Pending", false},
		{"completed is frozen", domain.StatusCompleted, "Pending", false},
		{"cancelled is frozen", domain.StatusCancelled, "In Progress", false},
		{"same status is a no-op", domain.StatusCompleted, "Completed", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubRepo(testBooking("b1", "Asha Rao", tt.from))
			svc := NewService(repo, PolicyStrict, nopLogger{})

			result, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
				ID:     "b1",
				Status: tt.to,
			})

			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, result.Status)
			} else {
				require.ErrorIs(t, err, ErrTransitionNotAllowed)
				assert.Equal(t, tt.from, repo.bookings["b1"].Status)
			}
		})
	}
}

func TestUpdateStatus_PermissivePolicyAllowsAnyTransition(t *testing.T) {
	repo := newStubRepo(testBooking("b1", "Asha Rao", domain.StatusCompleted))
	svc := NewService(repo, PolicyPermissive, nopLogger{})

	result, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		ID:     "b1",
		Status: "Pending",
	})

	require.NoError(t, err)
	assert.Equal(t, "Pending", result.Status)
	assert.Equal(t, domain.StatusPending, repo.bookings["b1"].Status)
}

func TestUpdateStatus_OnlyTargetBookingChanges(t *testing.T) {
	repo := newStubRepo(
		testBooking("b1", "Asha Rao", domain.StatusInProgress),
		testBooking("b2", "Ravi Kumar", domain.StatusPending),
	)
	svc := NewService(repo, PolicyStrict, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		ID:     "b1",
		Status: "Completed",
	})
	require.NoError(t, err)

	result, err := svc.ListAll(context.Background())
	require.NoError(t, err)

	statuses := make(map[string]string)
	for _, b := range result.Bookings {
		statuses[b.ID] = b.Status
	}
	assert.Equal(t, "Completed", statuses["b1"])
	assert.Equal(t, "Pending", statuses["b2"])
}
