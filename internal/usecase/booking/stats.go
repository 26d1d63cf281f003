package booking

import (
	"context"

	domain "github.com/JDigital-dev/phcleanpro/internal/domain/booking"
)

type Stats struct {
	Total     int            `json:"total"`
	ByStatus  map[string]int `json:"by_status"`
	Collected int            `json:"collected_revenue"` // completed jobs
	Expected  int            `json:"expected_revenue"`  // pending + confirmed
}

type BookingStats struct {
	repo domain.Repository
}

func NewBookingStats(repo domain.Repository) *BookingStats {
	return &BookingStats{repo: repo}
}

// Execute aggregates in memory; the whole book of a local cleaning
// business fits comfortably.
func (uc *BookingStats) Execute(ctx context.Context) (*Stats, error) {
	bookings, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Total: len(bookings),
		ByStatus: map[string]int{
			string(domain.StatusPending):   0,
			string(domain.StatusConfirmed): 0,
			string(domain.StatusCompleted): 0,
			string(domain.StatusCancelled): 0,
		},
	}

	for _, b := range bookings {
		stats.ByStatus[b.Status]++

		switch domain.Status(b.Status) {
		case domain.StatusCompleted:
			stats.Collected += b.TotalPrice
		case domain.StatusPending, domain.StatusConfirmed:
			stats.Expected += b.TotalPrice
		}
	}

	return stats, nil
}
