package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JDigital-dev/phcleanpro/internal/httperr"
)

func TestParseStep(t *testing.T) {
	for _, s := range []string{"service", "location", "schedule", "contact", "review"} {
		got, err := ParseStep(s)
		require.NoError(t, err)
		assert.Equal(t, Step(s), got)
	}

	_, err := ParseStep("payment")
	assert.True(t, httperr.IsBusiness(err, "unknown_step"))
}

func TestStepComplete(t *testing.T) {
	d := validDraft()

	for _, step := range Steps() {
		assert.Nil(t, StepComplete(step, d), "step %s should be complete", step)
	}

	// a later step's fields do not block an earlier step
	partial := Draft{ServiceID: "svc_general"}
	assert.Nil(t, StepComplete(StepService, partial))
	assert.NotNil(t, StepComplete(StepLocation, partial))
}

func TestStepComplete_ReviewRunsEverything(t *testing.T) {
	d := validDraft()
	d.Phone = ""

	verr := StepComplete(StepReview, d)
	require.NotNil(t, verr)
	assert.Equal(t, "phone", verr.Field)
}

func TestNextStep_WalksForward(t *testing.T) {
	d := validDraft()

	cur := StepService
	var walked []Step
	for {
		next, err := NextStep(cur, d)
		if err != nil {
			assert.True(t, httperr.IsBusiness(err, "last_step"))
			break
		}
		walked = append(walked, next)
		cur = next
	}

	assert.Equal(t, []Step{StepLocation, StepSchedule, StepContact, StepReview}, walked)
}

func TestNextStep_BlockedByIncompleteStep(t *testing.T) {
	d := validDraft()
	d.Address = ""

	_, err := NextStep(StepLocation, d)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "address", verr.Field)
}

func TestPrevStep(t *testing.T) {
	prev, err := PrevStep(StepReview)
	require.NoError(t, err)
	assert.Equal(t, StepContact, prev)

	// going back never cares about draft contents
	prev, err = PrevStep(StepLocation)
	require.NoError(t, err)
	assert.Equal(t, StepService, prev)

	_, err = PrevStep(StepService)
	assert.True(t, httperr.IsBusiness(err, "first_step"))

	_, err = PrevStep(Step("payment"))
	assert.True(t, httperr.IsBusiness(err, "unknown_step"))
}
