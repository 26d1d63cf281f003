package booking

import (
	"context"

	domain "github.com/JDigital-dev/phcleanpro/internal/domain/booking"
)

// ClearBookings is the operator's explicit bulk reset. Individual
// deletion is deliberately not offered anywhere.
type ClearBookings struct {
	repo domain.Repository
}

func NewClearBookings(repo domain.Repository) *ClearBookings {
	return &ClearBookings{repo: repo}
}

func (uc *ClearBookings) Execute(ctx context.Context) error {
	return uc.repo.ClearAll(ctx)
}
