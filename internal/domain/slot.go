package domain

// AvailabilitySlot is a fixed-width candidate start time within operating
// hours. Slots are computed per request and never persisted; the list is
// advisory for the UI - conflict prevention happens at booking creation.
type AvailabilitySlot struct {
	// StartMin начало слота в минутах от полуночи
	StartMin int
	// Time stable "HH:MM" label for the slot start
	Time string
	// Available false когда слот пересекается с существующим бронированием
	Available bool
}
