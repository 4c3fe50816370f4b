package authprovider

import "errors"

var (
	// ErrUserNotFound возвращается, когда профиль пользователя не найден
	ErrUserNotFound = errors.New("user profile not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("authprovider client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("authprovider client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что провайдер недоступен и следует использовать данные из запроса
	ErrServiceDegraded = errors.New("authprovider unavailable: graceful degradation applied")
)
