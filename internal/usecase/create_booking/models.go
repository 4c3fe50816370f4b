package create_booking

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на создание бронирования
type Request struct {
	FacilityID      int64     // ID площадки
	UserID          string    // ID пользователя
	UserName        string    // Имя пользователя
	UserEmail       *string   // Email (опционально, может прийти из провайдера)
	UserPhone       *string   // Телефон (опционально)
	Date            time.Time // Дата бронирования (без времени)
	StartTime       string    // Время начала в любом поддерживаемом формате
	EndTime         string    // Время окончания или длительность ("1.5h")
	EquipmentNeeded *string   // Необходимое оборудование (опционально)
	MedicalConcerns *string   // Медицинские противопоказания (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           uuid.UUID // ID созданного бронирования
	FacilityID   int64     // ID площадки
	FacilityName string    // Название площадки
	UserID       string    // ID пользователя
	UserName     string    // Имя пользователя
	Date         time.Time // Дата бронирования
	StartTime    string    // Время начала, как его прислал клиент
	EndTime      string    // Нормализованное время окончания (HH:MM)
	StartMin     int       // Начало окна в минутах от полуночи
	EndMin       int       // Конец окна в минутах от полуночи
	Status       string    // Статус бронирования (всегда pending при создании)
	TotalPrice   float64   // Стоимость (0 при создании)

	EquipmentNeeded *string
	MedicalConcerns *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
