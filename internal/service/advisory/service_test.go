package advisory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	integration "github.com/m04kA/SMC-ServiceCenter/internal/integrations/advisory"
	"github.com/m04kA/SMC-ServiceCenter/internal/service/advisory/models"
)

type stubProvider struct {
	advice string
	err    error
	calls  int
}

func (s *stubProvider) GenerateAdviceForKind(_ context.Context, _ integration.PromptKind, _ integration.PromptParams) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.advice, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestAdvise_Success(t *testing.T) {
	provider := &stubProvider{advice: "Check the brake fluid level first."}
	svc := NewService(provider, nopLogger{})

	result, err := svc.Advise(context.Background(), &models.AdviceRequest{
		Kind:        "diagnostic",
		VehicleType: "Car",
		Brand:       "Maruti Suzuki",
		Model:       "Swift",
		Symptoms:    "squeaking brakes",
	})

	require.NoError(t, err)
	assert.Equal(t, "Check the brake fluid level first.", result.Advice)
	assert.False(t, result.Degraded)
	assert.Equal(t, 1, provider.calls)
}

func TestAdvise_ProviderFailureDegradesToFallback(t *testing.T) {
	provider := &stubProvider{err: integration.ErrUnavailable}
	svc := NewService(provider, nopLogger{})

	result, err := svc.Advise(context.Background(), &models.AdviceRequest{
		Kind:     "chat",
		Question: "How often should I change engine oil?",
	})

	require.NoError(t, err, "provider failure must never surface as an error")
	assert.True(t, result.Degraded)
	assert.NotEmpty(t, result.Advice)
}

func TestAdvise_InvalidResponseAlsoDegrades(t *testing.T) {
	provider := &stubProvider{err: integration.ErrInvalidResponse}
	svc := NewService(provider, nopLogger{})

	result, err := svc.Advise(context.Background(), &models.AdviceRequest{Kind: "maintenance"})

	require.NoError(t, err)
	assert.True(t, result.Degraded)
}

func TestAdvise_UnknownKind(t *testing.T) {
	provider := &stubProvider{advice: "unused"}
	svc := NewService(provider, nopLogger{})

	_, err := svc.Advise(context.Background(), &models.AdviceRequest{Kind: "horoscope"})

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, provider.calls)
}
