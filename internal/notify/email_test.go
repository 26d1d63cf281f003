package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSendGridSender_NilWithoutKey(t *testing.T) {
	assert.Nil(t, NewSendGridSender("", "noreply@phcleanpro.ng", "PH Cleaning Pro"))
}

func TestNewSendGridSender_BuildsWithKey(t *testing.T) {
	s := NewSendGridSender("SG.test-key", "noreply@phcleanpro.ng", "PH Cleaning Pro")
	assert.NotNil(t, s)
}

func TestLogSender_AlwaysSucceeds(t *testing.T) {
	var s LogSender
	err := s.Send(context.Background(), EmailMessage{
		To:      "amaka@example.com",
		Subject: "hello",
		Body:    "world",
	})
	assert.NoError(t, err)
}

func TestFormatNaira(t *testing.T) {
	cases := []struct {
		amount int
		want   string
	}{
		{0, "₦0"},
		{500, "₦500"},
		{1500, "₦1,500"},
		{19500, "₦19,500"},
		{150000, "₦150,000"},
		{1234567, "₦1,234,567"},
		{-2500, "-₦2,500"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatNaira(tc.amount))
	}
}

func TestCustomerConfirmationEmail_UnknownServiceFallsBackToID(t *testing.T) {
	b := testBooking()
	b.ServiceID = "svc_retired"

	msg := customerConfirmationEmail(b)
	assert.Contains(t, msg.Body, "svc_retired")
}
