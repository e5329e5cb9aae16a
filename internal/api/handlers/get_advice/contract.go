package get_advice

import (
	"context"

	"github.com/m04kA/SMC-ServiceCenter/internal/service/advisory/models"
)

type AdvisoryService interface {
	Advise(ctx context.Context, req *models.AdviceRequest) (*models.AdviceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
