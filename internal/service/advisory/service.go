package advisory

import (
	"context"
	"fmt"

	integration "github.com/m04kA/SMC-ServiceCenter/internal/integrations/advisory"
	"github.com/m04kA/SMC-ServiceCenter/internal/service/advisory/models"
)

// fallbackAdvice статическая рекомендация на случай недоступности внешнего сервиса
const fallbackAdvice = "Our advisor is temporarily unavailable. " +
	"Please follow the maintenance schedule from your vehicle manual " +
	"and contact the service center for an in-person consultation."

// Service сервис консультаций.
// Работает по принципу best-effort: недоступность внешнего сервиса
// никогда не превращается в ошибку для вызывающего кода.
type Service struct {
	provider AdvisoryProvider
	logger   Logger
}

// NewService создает новый экземпляр сервиса консультаций
func NewService(provider AdvisoryProvider, logger Logger) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
	}
}

// Advise запрашивает консультацию у внешнего сервиса.
// Ошибкой завершается только невалидный запрос; любая ошибка провайдера
// деградирует до статической рекомендации с флагом Degraded.
func (s *Service) Advise(ctx context.Context, req *models.AdviceRequest) (*models.AdviceResponse, error) {
	kind := integration.PromptKind(req.Kind)
	if !kind.IsValid() {
		s.logger.Warn("Advise: unknown advice kind %q", req.Kind)
		return nil, fmt.Errorf("%w: unknown advice kind %q", ErrInvalidInput, req.Kind)
	}

	params := integration.PromptParams{
		VehicleType:     req.VehicleType,
		Brand:           req.Brand,
		Model:           req.Model,
		Symptoms:        req.Symptoms,
		OdometerKM:      req.OdometerKM,
		LastServiceDate: req.LastServiceDate,
		ServiceType:     req.ServiceType,
		ServiceItems:    req.ServiceItems,
		Question:        req.Question,
	}

	advice, err := s.provider.GenerateAdviceForKind(ctx, kind, params)
	if err != nil {
		s.logger.Error("Advise: provider failed, falling back to static advice, kind=%s: %v", kind, err)
		return &models.AdviceResponse{
			Kind:     string(kind),
			Advice:   fallbackAdvice,
			Degraded: true,
		}, nil
	}

	s.logger.Info("Advise: advice generated, kind=%s", kind)
	return &models.AdviceResponse{
		Kind:   string(kind),
		Advice: advice,
	}, nil
}
