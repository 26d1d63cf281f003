package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JDigital-dev/phcleanpro/internal/httperr"
	"github.com/JDigital-dev/phcleanpro/internal/models"
)

func seedBooking(t *testing.T, repo *memoryRepo, status string) *models.Booking {
	t.Helper()

	b := &models.Booking{
		Reference:    "bk_1756500000000_abcd1234",
		CustomerName: "Chief Obi",
		ServiceID:    "svc_move",
		AddonIDs:     []string{},
		TotalPrice:   45000,
		Status:       status,
	}
	require.NoError(t, repo.Append(context.Background(), b))
	return b
}

func TestUpdateBookingStatus_HappyPath(t *testing.T) {
	repo := newMemoryRepo()
	seedBooking(t, repo, "pending")
	uc := NewUpdateBookingStatus(repo)

	b, err := uc.Execute(context.Background(), "bk_1756500000000_abcd1234", "confirmed")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", b.Status)

	stored, _ := repo.GetByReference(context.Background(), b.Reference)
	assert.Equal(t, "confirmed", stored.Status)
}

func TestUpdateBookingStatus_TerminalStaysTerminal(t *testing.T) {
	repo := newMemoryRepo()
	seedBooking(t, repo, "completed")
	uc := NewUpdateBookingStatus(repo)

	_, err := uc.Execute(context.Background(), "bk_1756500000000_abcd1234", "confirmed")
	assert.True(t, httperr.IsBusiness(err, "invalid_status_change"))

	stored, _ := repo.GetByReference(context.Background(), "bk_1756500000000_abcd1234")
	assert.Equal(t, "completed", stored.Status)
}

func TestUpdateBookingStatus_SelfTransitionPersists(t *testing.T) {
	repo := newMemoryRepo()
	seedBooking(t, repo, "confirmed")
	uc := NewUpdateBookingStatus(repo)

	b, err := uc.Execute(context.Background(), "bk_1756500000000_abcd1234", "confirmed")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", b.Status)
}

func TestUpdateBookingStatus_UnknownStatus(t *testing.T) {
	repo := newMemoryRepo()
	seedBooking(t, repo, "pending")
	uc := NewUpdateBookingStatus(repo)

	_, err := uc.Execute(context.Background(), "bk_1756500000000_abcd1234", "archived")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestUpdateBookingStatus_NotFound(t *testing.T) {
	uc := NewUpdateBookingStatus(newMemoryRepo())

	_, err := uc.Execute(context.Background(), "bk_missing", "confirmed")
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}
