package advisory

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("advisory client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("advisory client: invalid response")

	// ErrUnavailable возвращается, когда внешний генеративный сервис недоступен.
	// Вызывающий код обязан деградировать до статической рекомендации.
	ErrUnavailable = errors.New("advisory service unavailable")
)
