package booking

import (
	"context"
	"strings"

	domain "github.com/JDigital-dev/phcleanpro/internal/domain/booking"
	"github.com/JDigital-dev/phcleanpro/internal/models"
	"github.com/JDigital-dev/phcleanpro/internal/notify"
	"github.com/JDigital-dev/phcleanpro/internal/timezone"
)

type SubmitContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type SubmitContactMessage struct {
	repo     domain.Repository
	notifier notify.Publisher
}

func NewSubmitContactMessage(
	repo domain.Repository,
	notifier notify.Publisher,
) *SubmitContactMessage {
	return &SubmitContactMessage{
		repo:     repo,
		notifier: notifier,
	}
}

func (uc *SubmitContactMessage) Execute(
	ctx context.Context,
	in SubmitContactInput,
) (*models.ContactMessage, error) {

	if strings.TrimSpace(in.Name) == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "required"}
	}
	if !domain.IsPlausibleEmail(in.Email) {
		return nil, &domain.ValidationError{Field: "email", Reason: "invalid_email"}
	}
	if strings.TrimSpace(in.Message) == "" {
		return nil, &domain.ValidationError{Field: "message", Reason: "required"}
	}

	m := &models.ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: timezone.Now(),
	}

	if err := uc.repo.SaveContactMessage(ctx, m); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.Event{
		Type: notify.EventContactLead,
		Lead: m,
	})

	return m, nil
}
