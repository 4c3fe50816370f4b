package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition возвращается, когда решение по заявке уже принято
	ErrInvalidTransition = errors.New("booking status is already decided")

	// ErrVerificationFailed возвращается, когда контрольное чтение после
	// обновления статуса вернуло не тот статус
	ErrVerificationFailed = errors.New("status update verification failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")

	// ErrBackendUnavailable возвращается, когда хранилище недоступно.
	// Запрос можно повторить позже.
	ErrBackendUnavailable = errors.New("backend temporarily unavailable")
)
