package advisory

import (
	"context"

	integration "github.com/m04kA/SMC-ServiceCenter/internal/integrations/advisory"
)

// AdvisoryProvider интерфейс внешнего генеративного сервиса
type AdvisoryProvider interface {
	GenerateAdviceForKind(ctx context.Context, kind integration.PromptKind, params integration.PromptParams) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
