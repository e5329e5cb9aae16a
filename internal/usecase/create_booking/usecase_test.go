package create_booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ServiceCenter/internal/catalog"
	"github.com/m04kA/SMC-ServiceCenter/internal/domain"
	"github.com/m04kA/SMC-ServiceCenter/pkg/ptr"
)

type stubBookingRepo struct {
	created []*domain.Booking
	err     error
}

func (s *stubBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	s.created = append(s.created, booking)
	return booking, nil
}

type stubTxManager struct{}

func (s *stubTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *stubBookingRepo) *UseCase {
	return NewUseCase(repo, catalog.NewProvider(), &stubTxManager{}, nopLogger{})
}

func validRequest() *Request {
	return &Request{
		CustomerName:  "Asha Rao",
		VehicleType:   "Car",
		VehicleNumber: "KA-01-AB-1234",
		Brand:         "Maruti Suzuki",
		Category:      "Hatchback",
		Model:         "Swift",
		ServiceType:   "Washing",
		BookingDate:   time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot:      "09:00 AM - 11:00 AM",
		ServiceItems:  []string{"Basic Wash"},
	}
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "Asha Rao", resp.CustomerName)
	assert.Contains(t, resp.Description, "Service Items: Basic Wash")
	require.Len(t, repo.created, 1)
	assert.Equal(t, resp.ID, repo.created[0].ID)
}

func TestExecute_GeneratesUniqueIDs(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newTestUseCase(repo)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.False(t, seen[resp.ID], "duplicate booking id %s", resp.ID)
		seen[resp.ID] = true
	}
}

func TestExecute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"empty customer name", func(req *Request) { req.CustomerName = "  " }},
		{"empty vehicle number", func(req *Request) { req.VehicleNumber = "" }},
		{"unknown vehicle type", func(req *Request) { req.VehicleType = "Truck" }},
		{"unknown service type", func(req *Request) { req.ServiceType = "Detailing" }},
		{"unknown time slot", func(req *Request) { req.TimeSlot = "08:00 AM - 10:00 AM" }},
		{"zero booking date", func(req *Request) { req.BookingDate = time.Time{} }},
		{"negative last service km", func(req *Request) { req.LastServiceKM = ptr.Ptr(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubBookingRepo{}
			uc := newTestUseCase(repo)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.created, "nothing should be written on validation failure")
		})
	}
}

func TestExecute_UnknownVehicleInCatalog(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.Brand = "Honda"

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrUnknownVehicle)
	assert.Empty(t, repo.created)
}

func TestExecute_DescriptionWithLastService(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.LastServiceDate = ptr.Ptr(time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC))
	req.LastServiceKM = ptr.Ptr(12000)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Contains(t, resp.Description, "Last Service: 2026-04-10, 12000 KM")
}

func TestExecute_DescriptionWithoutLastService(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotContains(t, resp.Description, "Last Service:")
}

func TestBuildDescription_FixedOrder(t *testing.T) {
	req := validRequest()
	req.LastServiceDate = ptr.Ptr(time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC))
	req.LastServiceKM = ptr.Ptr(12000)
	req.AdditionalNotes = ptr.Ptr("scratch on rear door")

	description := buildDescription(req)

	lines := strings.Split(description, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Vehicle: Maruti Suzuki Swift (Hatchback)", lines[0])
	assert.Equal(t, "Last Service: 2026-04-10, 12000 KM", lines[1])
	assert.Equal(t, "Service Items: Basic Wash", lines[2])
	assert.Equal(t, "Additional Notes: scratch on rear door", lines[3])
}

func TestBuildDescription_OmitsEmptySections(t *testing.T) {
	req := validRequest()
	req.ServiceItems = nil

	description := buildDescription(req)

	assert.Equal(t, "Vehicle: Maruti Suzuki Swift (Hatchback)", description)
}

func TestExecute_RepoErrorWrapsInternal(t *testing.T) {
	repo := &stubBookingRepo{err: assert.AnError}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrInternal)
}
