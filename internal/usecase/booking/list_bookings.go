package booking

import (
	"context"

	domain "github.com/JDigital-dev/phcleanpro/internal/domain/booking"
	"github.com/JDigital-dev/phcleanpro/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute lists bookings, optionally filtered by status. "" and "all"
// both mean unfiltered, matching the operator view's filter tabs.
func (uc *ListBookings) Execute(
	ctx context.Context,
	statusFilter string,
) ([]models.Booking, error) {

	if statusFilter == "" || statusFilter == "all" {
		return uc.repo.ListAll(ctx)
	}

	status, err := domain.ParseStatus(statusFilter)
	if err != nil {
		return nil, err
	}

	return uc.repo.ListByStatus(ctx, status)
}
