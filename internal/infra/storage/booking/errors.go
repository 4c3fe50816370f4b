package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotConflict is returned when the insert trips the storage-level
	// exclusion constraint: another non-cancelled booking already holds an
	// overlapping window for the same facility and date. This is the last
	// line of defense against the check-then-insert race.
	ErrSlotConflict = errors.New("booking.repository: overlapping booking exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrStoreUnavailable возвращается, когда база данных недоступна или
	// прервала транзакцию: ошибки соединения, таймауты, serialization
	// failure. HTTP слой отвечает на них 503, а не 500.
	ErrStoreUnavailable = errors.New("booking.repository: storage unavailable")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
