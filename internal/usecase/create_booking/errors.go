package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnknownVehicle возвращается, когда связка марка/категория/модель
	// отсутствует в справочнике
	ErrUnknownVehicle = errors.New("vehicle not found in catalog")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("create booking: internal error")
)
