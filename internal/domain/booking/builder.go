package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JDigital-dev/phcleanpro/internal/models"
)

// ===============================
// Record Builder
// ===============================

// NewRecord assembles the persisted booking from a validated draft and
// the verified total. verifiedTotal must come from ComputeTotal; the
// draft carries no price at all, so there is nothing else it could be.
func NewRecord(d Draft, verifiedTotal int, now time.Time) models.Booking {
	addonIDs := d.AddonIDs
	if addonIDs == nil {
		addonIDs = []string{}
	}

	return models.Booking{
		Reference:    NewReference(now),
		CustomerName: d.Name,
		Email:        d.Email,
		Phone:        d.Phone,
		ServiceID:    d.ServiceID,
		AddonIDs:     addonIDs,
		TotalPrice:   verifiedTotal,
		Address:      d.Address,
		Neighborhood: d.Neighborhood,
		Date:         d.Date,
		TimeSlot:     d.TimeSlot,
		Status:       string(InitialStatus()),
		CreatedAt:    now,
	}
}

// NewReference generates a booking reference unique enough for a small
// local business: millisecond timestamp plus a short random suffix.
func NewReference(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("bk_%d_%s", now.UnixMilli(), suffix)
}
