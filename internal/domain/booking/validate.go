package booking

import (
	"strings"
	"time"

	"github.com/JDigital-dev/phcleanpro/internal/catalog"
)

// ===============================
// Validation
// ===============================

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// Validate runs the required-field checks in a fixed order and returns
// the first failure, so error reporting stays deterministic. Checks are
// deliberately coarse; full email/phone grammar is out of scope.
func Validate(d Draft) *ValidationError {
	checks := []func(Draft) *ValidationError{
		checkService,
		checkDate,
		checkTimeSlot,
		checkAddress,
		checkName,
		checkEmail,
		checkPhone,
	}

	for _, check := range checks {
		if verr := check(d); verr != nil {
			return verr
		}
	}
	return nil
}

func checkService(d Draft) *ValidationError {
	if strings.TrimSpace(d.ServiceID) == "" {
		return &ValidationError{Field: "service_id", Reason: "required"}
	}
	if _, ok := catalog.ServiceByID(d.ServiceID); !ok {
		return &ValidationError{Field: "service_id", Reason: "unknown_service"}
	}
	return nil
}

func checkDate(d Draft) *ValidationError {
	if strings.TrimSpace(d.Date) == "" {
		return &ValidationError{Field: "date", Reason: "required"}
	}
	if _, err := time.Parse("2006-01-02", d.Date); err != nil {
		return &ValidationError{Field: "date", Reason: "invalid_date"}
	}
	return nil
}

func checkTimeSlot(d Draft) *ValidationError {
	if strings.TrimSpace(d.TimeSlot) == "" {
		return &ValidationError{Field: "time_slot", Reason: "required"}
	}
	if !catalog.IsTimeSlot(d.TimeSlot) {
		return &ValidationError{Field: "time_slot", Reason: "unknown_time_slot"}
	}
	return nil
}

func checkAddress(d Draft) *ValidationError {
	if strings.TrimSpace(d.Address) == "" {
		return &ValidationError{Field: "address", Reason: "required"}
	}
	return nil
}

func checkName(d Draft) *ValidationError {
	if strings.TrimSpace(d.Name) == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	return nil
}

func checkEmail(d Draft) *ValidationError {
	if strings.TrimSpace(d.Email) == "" {
		return &ValidationError{Field: "email", Reason: "required"}
	}
	if !IsPlausibleEmail(d.Email) {
		return &ValidationError{Field: "email", Reason: "invalid_email"}
	}
	return nil
}

func checkPhone(d Draft) *ValidationError {
	if strings.TrimSpace(d.Phone) == "" {
		return &ValidationError{Field: "phone", Reason: "required"}
	}
	return nil
}

// IsPlausibleEmail only requires an @ with non-empty local and domain
// parts.
func IsPlausibleEmail(email string) bool {
	local, domain, found := strings.Cut(email, "@")
	return found && local != "" && domain != ""
}
