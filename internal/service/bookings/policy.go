package bookings

import "github.com/m04kA/SMC-ServiceCenter/internal/domain"

// TransitionPolicy политика смены статусов бронирования
type TransitionPolicy string

const (
	// PolicyStrict разрешает только переходы жизненного цикла:
	// Pending -> In Progress | Cancelled, In Progress -> Completed | Cancelled.
	// Терминальные статусы заморожены.
	PolicyStrict TransitionPolicy = "strict"

	// PolicyPermissive разрешает любой переход между валидными статусами
	PolicyPermissive TransitionPolicy = "permissive"
)

// strictTransitions допустимые переходы для строгой политики
var strictTransitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.StatusPending:    {domain.StatusInProgress, domain.StatusCancelled},
	domain.StatusInProgress: {domain.StatusCompleted, domain.StatusCancelled},
}

// IsValid проверяет, что политика входит в перечисление
func (p TransitionPolicy) IsValid() bool {
	switch p {
	case PolicyStrict, PolicyPermissive:
		return true
	}
	return false
}

// Allows сообщает, разрешен ли переход из from в to.
// Переход в тот же статус не считается переходом и разрешен всегда.
func (p TransitionPolicy) Allows(from, to domain.BookingStatus) bool {
	if from == to {
		return true
	}
	if p == PolicyPermissive {
		return true
	}
	for _, allowed := range strictTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
