package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/JDigital-dev/phcleanpro/internal/domain/booking"
	"github.com/JDigital-dev/phcleanpro/internal/httperr"
)

func TestGetQuote_Breakdown(t *testing.T) {
	uc := NewGetQuote()

	q, err := uc.Execute(context.Background(), QuoteInput{
		ServiceID:    "svc_general",
		AddonIDs:     []string{"add_fridge"},
		Neighborhood: "Woji",
	})
	require.NoError(t, err)

	assert.Equal(t, 19500, q.Total)
	require.Len(t, q.Lines, 3)
	assert.Equal(t, QuoteLine{Label: "General Cleaning", Amount: 15000}, q.Lines[0])
	assert.Equal(t, QuoteLine{Label: "Inside Fridge", Amount: 3000}, q.Lines[1])
	assert.Equal(t, QuoteLine{Label: "Transport surcharge (Woji)", Amount: 1500}, q.Lines[2])

	sum := 0
	for _, l := range q.Lines {
		sum += l.Amount
	}
	assert.Equal(t, q.Total, sum)
}

func TestGetQuote_ZeroSurchargeHasNoLine(t *testing.T) {
	uc := NewGetQuote()

	q, err := uc.Execute(context.Background(), QuoteInput{
		ServiceID:    "svc_deep",
		Neighborhood: "Old GRA",
	})
	require.NoError(t, err)

	assert.Equal(t, 35000, q.Total)
	require.Len(t, q.Lines, 1)
}

func TestGetQuote_ReportsDroppedAddons(t *testing.T) {
	uc := NewGetQuote()

	q, err := uc.Execute(context.Background(), QuoteInput{
		ServiceID: "svc_general",
		AddonIDs:  []string{"not_a_real_addon"},
	})
	require.NoError(t, err)

	assert.Equal(t, 15000, q.Total)
	assert.Equal(t, []string{"not_a_real_addon"}, q.DroppedAddonIDs)
}

func TestGetQuote_MatchesSubmissionTotal(t *testing.T) {
	uc := NewGetQuote()
	in := QuoteInput{
		ServiceID:    "svc_event",
		AddonIDs:     []string{"add_laundry", "add_balcony"},
		Neighborhood: "Elelenwo",
	}

	q, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	recompute, _, err := domain.ComputeTotal(in.ServiceID, in.AddonIDs, in.Neighborhood)
	require.NoError(t, err)
	assert.Equal(t, recompute, q.Total)
}

func TestGetQuote_InvalidService(t *testing.T) {
	uc := NewGetQuote()

	_, err := uc.Execute(context.Background(), QuoteInput{ServiceID: "svc_nope"})
	assert.True(t, httperr.IsBusiness(err, "invalid_service"))
}
