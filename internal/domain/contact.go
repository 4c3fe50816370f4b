package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage represents a message submitted through the contact form
type ContactMessage struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     *string
	Message   string
	CreatedAt time.Time
}
