package facility

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадка не найдена
	ErrFacilityNotFound = errors.New("facility.repository: facility not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("facility.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("facility.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("facility.repository: failed to scan row")

	// ErrStoreUnavailable возвращается, когда база данных недоступна или
	// прервала транзакцию. HTTP слой отвечает на них 503, а не 500.
	ErrStoreUnavailable = errors.New("facility.repository: storage unavailable")
)
