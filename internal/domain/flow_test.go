package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-PetCareService/pkg/ptr"
	"github.com/m04kA/SMC-PetCareService/pkg/types"
)

func TestFlowStep_Transitions(t *testing.T) {
	next, ok := StepCollectingSchedule.Next()
	assert.True(t, ok)
	assert.Equal(t, StepSelectingPet, next)

	next, ok = StepSelectingPet.Next()
	assert.True(t, ok)
	assert.Equal(t, StepReviewingSummary, next)

	// в Submitted только через отправку
	_, ok = StepReviewingSummary.Next()
	assert.False(t, ok)

	_, ok = StepSubmitted.Next()
	assert.False(t, ok)

	prev, ok := StepReviewingSummary.Prev()
	assert.True(t, ok)
	assert.Equal(t, StepSelectingPet, prev)

	_, ok = StepCollectingSchedule.Prev()
	assert.False(t, ok)

	_, ok = StepSubmitted.Prev()
	assert.False(t, ok)

	assert.False(t, FlowStep("paid").IsValid())
	assert.True(t, StepSubmitted.IsTerminal())
}

func TestBookingFlow_CanAdvance(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	flow := NewBookingFlow(7, 42, nil, now)

	assert.Equal(t, StepCollectingSchedule, flow.Step)
	assert.False(t, flow.CanAdvance())

	flow.Mode = ModeAppointment
	flow.StartDate = ptr.Ptr(now)
	assert.False(t, flow.CanAdvance(), "appointment needs a time")

	flow.SelectedTime = ptr.Ptr(types.TimeString("10:00"))
	assert.True(t, flow.CanAdvance())

	flow.Mode = ModeRange
	flow.SelectedTime = nil
	assert.False(t, flow.CanAdvance(), "range needs an end date")
	flow.EndDate = ptr.Ptr(now.AddDate(0, 0, 2))
	assert.True(t, flow.CanAdvance())

	flow.Step = StepSelectingPet
	assert.False(t, flow.CanAdvance())
	flow.PetID = ptr.Ptr(int64(3))
	assert.True(t, flow.CanAdvance())

	flow.Step = StepReviewingSummary
	assert.False(t, flow.CanAdvance())
}
