package events

import "errors"

var (
	// ErrEventNotFound возвращается, когда мероприятие не найдено
	ErrEventNotFound = errors.New("event not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
