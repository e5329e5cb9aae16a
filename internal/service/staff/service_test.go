package staff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ServiceCenter/internal/domain"
	"github.com/m04kA/SMC-ServiceCenter/internal/service/staff/models"
)

type stubRepo struct {
	members []*domain.Staff
	err     error
}

func (s *stubRepo) Create(_ context.Context, member *domain.Staff) (*domain.Staff, error) {
	if s.err != nil {
		return nil, s.err
	}
	member.CreatedAt = time.Now()
	s.members = append(s.members, member)
	return member, nil
}

func (s *stubRepo) ListAll(_ context.Context) ([]*domain.Staff, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.members, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestAdd_Success(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, nopLogger{})

	result, err := svc.Add(context.Background(), &models.AddStaffRequest{
		Name:   "Ravi",
		Duty:   "Mechanic",
		Salary: 50000,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "Ravi", result.Name)
	assert.Equal(t, "Mechanic", result.Duty)
	require.Len(t, repo.members, 1)
}

func TestAdd_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		req  models.AddStaffRequest
	}{
		{"empty name", models.AddStaffRequest{Name: "", Duty: "Mechanic", Salary: 50000}},
		{"blank name", models.AddStaffRequest{Name: "   ", Duty: "Mechanic", Salary: 50000}},
		{"unknown duty", models.AddStaffRequest{Name: "Ravi", Duty: "Driver", Salary: 50000}},
		{"zero salary", models.AddStaffRequest{Name: "Ravi", Duty: "Mechanic", Salary: 0}},
		{"negative salary", models.AddStaffRequest{Name: "Ravi", Duty: "Mechanic", Salary: -100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{}
			svc := NewService(repo, nopLogger{})

			_, err := svc.Add(context.Background(), &tt.req)

			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.members)
		})
	}
}

func TestAdd_UniqueIDs(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, nopLogger{})

	first, err := svc.Add(context.Background(), &models.AddStaffRequest{Name: "Ravi", Duty: "Mechanic", Salary: 50000})
	require.NoError(t, err)
	second, err := svc.Add(context.Background(), &models.AddStaffRequest{Name: "Meena", Duty: "Manager", Salary: 80000})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestListAll(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Add(context.Background(), &models.AddStaffRequest{Name: "Ravi", Duty: "Mechanic", Salary: 50000})
	require.NoError(t, err)

	result, err := svc.ListAll(context.Background())

	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "Ravi", result.Staff[0].Name)
}

func TestListAll_RepoError(t *testing.T) {
	svc := NewService(&stubRepo{err: assert.AnError}, nopLogger{})

	_, err := svc.ListAll(context.Background())

	require.ErrorIs(t, err, ErrInternal)
}
