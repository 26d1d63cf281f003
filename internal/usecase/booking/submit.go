package booking

import (
	"context"
	"log"

	domain "github.com/JDigital-dev/phcleanpro/internal/domain/booking"
	"github.com/JDigital-dev/phcleanpro/internal/models"
	"github.com/JDigital-dev/phcleanpro/internal/notify"
	"github.com/JDigital-dev/phcleanpro/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// SubmitInput carries everything the wizard collected. There is no
// total here on purpose; the price is recomputed below no matter what
// the client showed the customer.
type SubmitInput struct {
	ServiceID string
	AddonIDs  []string

	Address      string
	Neighborhood string

	Date     string
	TimeSlot string

	Name  string
	Email string
	Phone string
}

// ======================================================
// USE CASE
// ======================================================

type SubmitBooking struct {
	repo     domain.Repository
	notifier notify.Publisher
}

func NewSubmitBooking(
	repo domain.Repository,
	notifier notify.Publisher,
) *SubmitBooking {
	return &SubmitBooking{
		repo:     repo,
		notifier: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SubmitBooking) Execute(
	ctx context.Context,
	in SubmitInput,
) (*models.Booking, error) {

	d := domain.Draft{
		ServiceID:    in.ServiceID,
		AddonIDs:     in.AddonIDs,
		Address:      in.Address,
		Neighborhood: in.Neighborhood,
		Date:         in.Date,
		TimeSlot:     in.TimeSlot,
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
	}

	if verr := domain.Validate(d); verr != nil {
		return nil, verr
	}

	total, dropped, err := domain.ComputeTotal(
		d.ServiceID,
		d.AddonIDs,
		d.Neighborhood,
	)
	if err != nil {
		return nil, err
	}
	if len(dropped) > 0 {
		// Unknown addon ids are priced at zero rather than rejected,
		// but a catalog mismatch should still show up in the logs.
		log.Printf("submit: ignoring unknown addon ids %v", dropped)
	}

	rec := domain.NewRecord(d, total, timezone.Now())

	if err := uc.repo.Append(ctx, &rec); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.Event{
		Type:    notify.EventBookingCreated,
		Booking: &rec,
	})

	return &rec, nil
}
