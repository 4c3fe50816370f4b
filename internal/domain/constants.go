package domain

// Default booking grid. Operating hours and slot width are overridable via
// config.toml; these match the facility's published schedule.
const (
	DefaultOpenMinute  = 8 * 60  // 08:00
	DefaultCloseMinute = 20 * 60 // 20:00
	DefaultSlotMinutes = 60
)

// Business validation constants
const (
	MinSlotMinutes          = 15
	MaxSlotMinutes          = 240
	MaxNotesLength          = 500
	MaxContactMessageLength = 2000

	// BaseSlotRate is the revenue attributed to a confirmed booking whose
	// stored price is zero (price computation is owned elsewhere and rows
	// default to 0 at creation).
	BaseSlotRate = 50.0
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
