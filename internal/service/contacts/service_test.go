package contacts

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GritX-web/GritX/internal/domain"
)

type fakeRepo struct {
	messages []*domain.ContactMessage
}

func (f *fakeRepo) Create(_ context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	msg.ID = uuid.New()
	f.messages = append(f.messages, msg)
	return msg, nil
}

func (f *fakeRepo) List(_ context.Context) ([]*domain.ContactMessage, error) {
	return f.messages, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate_Valid(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	msg, err := svc.Create(context.Background(), &domain.ContactMessage{
		Name:    "  Kavya Nair  ",
		Email:   "kavya@example.com",
		Message: "Do you host corporate tournaments?",
	})
	require.NoError(t, err)
	assert.Equal(t, "Kavya Nair", msg.Name)
	assert.NotEqual(t, uuid.Nil, msg.ID)
}

func TestCreate_Invalid(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	cases := []struct {
		name string
		msg  domain.ContactMessage
	}{
		{"empty name", domain.ContactMessage{Email: "a@b.c", Message: "hi"}},
		{"empty email", domain.ContactMessage{Name: "A", Message: "hi"}},
		{"bad email", domain.ContactMessage{Name: "A", Email: "nope", Message: "hi"}},
		{"empty message", domain.ContactMessage{Name: "A", Email: "a@b.c"}},
		{"oversized message", domain.ContactMessage{
			Name: "A", Email: "a@b.c",
			Message: strings.Repeat("x", domain.MaxContactMessageLength+1),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tc.msg)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
