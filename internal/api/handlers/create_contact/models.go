package create_contact

import (
	"time"

	"github.com/GritX-web/GritX/internal/domain"
)

// CreateContactRequest HTTP request model
type CreateContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Message string  `json:"message"`
}

// ContactResponse HTTP response model
type ContactResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Message   string  `json:"message"`
	CreatedAt string  `json:"createdAt"`
}

// ToDomain конвертирует HTTP запрос в domain модель
func (r *CreateContactRequest) ToDomain() *domain.ContactMessage {
	return &domain.ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Message: r.Message,
	}
}

// FromDomain конвертирует domain модель в HTTP response
func FromDomain(msg *domain.ContactMessage) *ContactResponse {
	return &ContactResponse{
		ID:        msg.ID.String(),
		Name:      msg.Name,
		Email:     msg.Email,
		Phone:     msg.Phone,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt.Format(time.RFC3339),
	}
}
