package notify

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JDigital-dev/phcleanpro/internal/catalog"
	"github.com/JDigital-dev/phcleanpro/internal/models"
)

func customerConfirmationEmail(b *models.Booking) EmailMessage {
	serviceName := b.ServiceID
	if svc, ok := catalog.ServiceByID(b.ServiceID); ok {
		serviceName = svc.Title
	}

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Thank you for booking with PH Cleaning Pro. Your request is in and our team will confirm shortly.\n\n"+
			"Invoice: %s\n"+
			"Service: %s\n"+
			"Date: %s at %s\n"+
			"Address: %s, %s\n"+
			"Total: %s\n\n"+
			"PH Cleaning Pro, Port Harcourt",
		b.CustomerName,
		b.Reference,
		serviceName,
		b.Date, b.TimeSlot,
		b.Address, b.Neighborhood,
		FormatNaira(b.TotalPrice),
	)

	return EmailMessage{
		To:      b.Email,
		ToName:  b.CustomerName,
		Subject: fmt.Sprintf("Booking received — Invoice %s", b.Reference),
		Body:    body,
	}
}

func operatorAlertEmail(b *models.Booking, operator string) EmailMessage {
	return EmailMessage{
		To:      operator,
		Subject: fmt.Sprintf("New booking from %s", b.Neighborhood),
		Body: fmt.Sprintf(
			"New booking %s: %s on %s %s, %s. Customer %s (%s).",
			b.Reference, b.ServiceID, b.Date, b.TimeSlot,
			FormatNaira(b.TotalPrice), b.CustomerName, b.Phone,
		),
	}
}

func leadAlertEmail(m *models.ContactMessage, operator string) EmailMessage {
	return EmailMessage{
		To:      operator,
		Subject: fmt.Sprintf("New lead: %s", m.Subject),
		Body: fmt.Sprintf(
			"From %s <%s>:\n\n%s",
			m.Name, m.Email, m.Message,
		),
	}
}

// FormatNaira renders a whole-Naira amount with thousands separators,
// e.g. 19500 -> "₦19,500". The currency carries no minor units here.
func FormatNaira(amount int) string {
	digits := strconv.Itoa(amount)

	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := "₦" + b.String()
	if neg {
		out = "-" + out
	}
	return out
}
