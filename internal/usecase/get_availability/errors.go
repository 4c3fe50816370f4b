package get_availability

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадка не найдена
	ErrFacilityNotFound = errors.New("get_availability: facility not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")

	// ErrBackendUnavailable возвращается, когда хранилище недоступно.
	// Клиент может повторить запрос позже.
	ErrBackendUnavailable = errors.New("get_availability: backend unavailable")
)
