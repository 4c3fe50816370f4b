package get_availability

import (
	"time"

	"github.com/GritX-web/GritX/internal/domain"
)

// GridConfig параметры сетки слотов
type GridConfig struct {
	OpenMinute  int // Начало рабочего дня в минутах от полуночи
	CloseMinute int // Конец рабочего дня в минутах от полуночи
	SlotMinutes int // Длительность одного слота
}

// Request модель запроса доступных слотов
type Request struct {
	FacilityID int64     // ID площадки
	Date       time.Time // Дата (без времени)
	Duration   string    // Желаемая длительность, например "1.5h" (опционально)
}

// Response модель ответа со слотами на дату
type Response struct {
	FacilityID  int64                     // ID площадки
	Date        time.Time                 // Дата
	SlotMinutes int                       // Длительность одного слота
	Slots       []domain.AvailabilitySlot // Слоты в хронологическом порядке
}
