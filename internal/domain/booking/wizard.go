package booking

import "github.com/JDigital-dev/phcleanpro/internal/httperr"

// ===============================
// Wizard Steps
// ===============================

// The interactive wizard fills a Draft one step at a time. Each step
// owns a fixed subset of fields; moving forward requires that subset to
// pass its checks, moving back never loses data.

type Step string

const (
	StepService  Step = "service"
	StepLocation Step = "location"
	StepSchedule Step = "schedule"
	StepContact  Step = "contact"
	StepReview   Step = "review"
)

var stepOrder = []Step{
	StepService,
	StepLocation,
	StepSchedule,
	StepContact,
	StepReview,
}

func Steps() []Step {
	return stepOrder
}

func ParseStep(s string) (Step, error) {
	for _, st := range stepOrder {
		if st == Step(s) {
			return st, nil
		}
	}
	return "", httperr.ErrBusiness("unknown_step")
}

// stepChecks maps each step to the field checks it owns. The
// neighborhood stays optional on the location step: an unknown or
// missing neighborhood just means zero surcharge.
func stepChecks(step Step) []func(Draft) *ValidationError {
	switch step {
	case StepService:
		return []func(Draft) *ValidationError{checkService}
	case StepLocation:
		return []func(Draft) *ValidationError{checkAddress}
	case StepSchedule:
		return []func(Draft) *ValidationError{checkDate, checkTimeSlot}
	case StepContact:
		return []func(Draft) *ValidationError{checkName, checkEmail, checkPhone}
	case StepReview:
		return []func(Draft) *ValidationError{
			checkService, checkDate, checkTimeSlot,
			checkAddress, checkName, checkEmail, checkPhone,
		}
	}
	return nil
}

// StepComplete reports the first missing/invalid field for the step, or
// nil when the step's fields are all acceptable.
func StepComplete(step Step, d Draft) *ValidationError {
	for _, check := range stepChecks(step) {
		if verr := check(d); verr != nil {
			return verr
		}
	}
	return nil
}

// NextStep advances the wizard. The current step must be complete; the
// review step is terminal.
func NextStep(cur Step, d Draft) (Step, error) {
	idx := stepIndex(cur)
	if idx < 0 {
		return "", httperr.ErrBusiness("unknown_step")
	}
	if idx == len(stepOrder)-1 {
		return "", httperr.ErrBusiness("last_step")
	}
	if verr := StepComplete(cur, d); verr != nil {
		return "", verr
	}
	return stepOrder[idx+1], nil
}

// PrevStep goes back one step; always allowed except on the first.
func PrevStep(cur Step) (Step, error) {
	idx := stepIndex(cur)
	if idx < 0 {
		return "", httperr.ErrBusiness("unknown_step")
	}
	if idx == 0 {
		return "", httperr.ErrBusiness("first_step")
	}
	return stepOrder[idx-1], nil
}

func stepIndex(s Step) int {
	for i, st := range stepOrder {
		if st == s {
			return i
		}
	}
	return -1
}
