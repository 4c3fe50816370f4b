package create_booking

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадка не найдена
	ErrFacilityNotFound = errors.New("create_booking: facility not found")

	// ErrInvalidTimeSelection возвращается, когда время начала не удалось разобрать
	ErrInvalidTimeSelection = errors.New("create_booking: invalid time selection")

	// ErrSlotTaken возвращается, когда слот уже занят другим пользователем
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrDuplicateOwnBooking возвращается, когда пользователь уже бронировал этот слот
	ErrDuplicateOwnBooking = errors.New("create_booking: duplicate booking by the same user")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")

	// ErrBackendUnavailable возвращается, когда хранилище недоступно или
	// прервало транзакцию. Клиент может повторить запрос позже.
	ErrBackendUnavailable = errors.New("create_booking: backend unavailable")
)
