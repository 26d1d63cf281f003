package booking

import (
	"context"

	domain "github.com/JDigital-dev/phcleanpro/internal/domain/booking"
	"github.com/JDigital-dev/phcleanpro/internal/httperr"
	"github.com/JDigital-dev/phcleanpro/internal/models"
)

type UpdateBookingStatus struct {
	repo domain.Repository
}

func NewUpdateBookingStatus(repo domain.Repository) *UpdateBookingStatus {
	return &UpdateBookingStatus{repo: repo}
}

// Execute applies an operator status change. The state machine is the
// gatekeeper: terminal records stay terminal, and re-selecting the
// current status is an allowed no-op.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	reference string,
	newStatus string,
) (*models.Booking, error) {

	status, err := domain.ParseStatus(newStatus)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetByReference(ctx, reference)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.CanTransition(domain.Status(b.Status), status); err != nil {
		return nil, err
	}

	b.Status = string(status)
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
