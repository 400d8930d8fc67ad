package selection

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

func slotAt(court int64, start string) domain.Slot {
	return domain.Slot{
		CourtID:         court,
		StartTime:       types.TimeString(start),
		DurationMinutes: 30,
		Price:           decimal.NewFromInt(50),
		Status:          domain.SlotStatusAvailable,
		Available:       true,
	}
}

func selectAll(t *testing.T, slots ...domain.Slot) domain.Selection {
	t.Helper()
	sel := domain.Selection{}
	for _, s := range slots {
		var outcome Outcome
		sel, outcome = Select(sel, s)
		require.Equal(t, Accepted, outcome, "select %s", s.StartTime)
	}
	return sel
}

func times(ts ...string) []types.TimeString {
	out := make([]types.TimeString, len(ts))
	for i, t := range ts {
		out[i] = types.TimeString(t)
	}
	return out
}

func TestSelect_FromEmpty(t *testing.T) {
	sel, outcome := Select(domain.Selection{}, slotAt(1, "09:00"))

	assert.Equal(t, Accepted, outcome)
	assert.Equal(t, int64(1), sel.CourtID)
	assert.Equal(t, 30, sel.DurationMinutes)
	assert.Equal(t, times("09:00"), sel.Times)
}

func TestSelect_RejectsUnavailableAndMaintenance(t *testing.T) {
	unavailable := slotAt(1, "09:00")
	unavailable.Available = false
	unavailable.Status = domain.SlotStatusUnavailable

	maintenance := slotAt(1, "09:00")
	maintenance.Status = domain.SlotStatusMaintenance

	for _, s := range []domain.Slot{unavailable, maintenance} {
		sel, outcome := Select(domain.Selection{}, s)
		assert.Equal(t, Rejected, outcome)
		assert.True(t, sel.IsEmpty())
	}
}

func TestSelect_ExtendsForwardAndBackward(t *testing.T) {
	sel := selectAll(t, slotAt(1, "09:00"), slotAt(1, "09:30"), slotAt(1, "08:30"))

	assert.Equal(t, times("08:30", "09:00", "09:30"), sel.Times)
	assert.NoError(t, Validate(sel))
}

func TestSelect_NonAdjacentIsIgnored(t *testing.T) {
	sel := selectAll(t, slotAt(1, "09:00"), slotAt(1, "09:30"))

	got, outcome := Select(sel, slotAt(1, "11:00"))

	assert.Equal(t, Rejected, outcome)
	assert.Equal(t, sel, got)
}

func TestSelect_CrossCourtIsRejected(t *testing.T) {
	sel := selectAll(t, slotAt(1, "09:00"), slotAt(1, "09:30"))

	for _, start := range []string{"08:30", "09:00", "10:00", "15:00"} {
		got, outcome := Select(sel, slotAt(2, start))
		assert.Equal(t, Rejected, outcome, start)
		assert.Equal(t, sel, got, start)
	}
}

func TestSelect_IsIdempotent(t *testing.T) {
	sel := selectAll(t, slotAt(1, "09:00"), slotAt(1, "09:30"))

	got, outcome := Select(sel, slotAt(1, "09:30"))

	assert.Equal(t, Noop, outcome)
	assert.Equal(t, sel, got)
}

func TestSelect_DoesNotAliasInput(t *testing.T) {
	sel := selectAll(t, slotAt(1, "09:00"))
	before := append([]types.TimeString(nil), sel.Times...)

	_, _ = Select(sel, slotAt(1, "09:30"))

	assert.Equal(t, before, sel.Times)
}

func TestDeselect_TruncatesFromRemovedSlot(t *testing.T) {
	sel := selectAll(t, slotAt(1, "09:00"), slotAt(1, "09:30"), slotAt(1, "10:00"))

	got, outcome := Deselect(sel, domain.SelectionKey{CourtID: 1, StartTime: "09:30"})

	assert.Equal(t, Removed, outcome)
	assert.Equal(t, times("09:00"), got.Times)
	assert.NoError(t, Validate(got))
}

func TestDeselect_Last(t *testing.T) {
	sel := selectAll(t, slotAt(1, "09:00"), slotAt(1, "09:30"), slotAt(1, "10:00"))

	got, _ := Deselect(sel, domain.SelectionKey{CourtID: 1, StartTime: "10:00"})

	assert.Equal(t, times("09:00", "09:30"), got.Times)
}

func TestDeselect_FirstKeepsRemainder(t *testing.T) {
	sel := selectAll(t, slotAt(1, "09:00"), slotAt(1, "09:30"), slotAt(1, "10:00"))

	got, outcome := Deselect(sel, domain.SelectionKey{CourtID: 1, StartTime: "09:00"})

	assert.Equal(t, Removed, outcome)
	assert.Equal(t, times("09:30", "10:00"), got.Times)
	assert.Equal(t, int64(1), got.CourtID)
}

func TestDeselect_OnlySlotEmptiesSelection(t *testing.T) {
	sel := selectAll(t, slotAt(1, "09:00"))

	got, outcome := Deselect(sel, domain.SelectionKey{CourtID: 1, StartTime: "09:00"})

	assert.Equal(t, Removed, outcome)
	assert.True(t, got.IsEmpty())
	assert.Equal(t, domain.Selection{}, got)
}

func TestDeselect_UnknownKeyIsNoop(t *testing.T) {
	sel := selectAll(t, slotAt(1, "09:00"))

	got, outcome := Deselect(sel, domain.SelectionKey{CourtID: 2, StartTime: "09:00"})
	assert.Equal(t, Noop, outcome)
	assert.Equal(t, sel, got)

	got, outcome = Deselect(sel, domain.SelectionKey{CourtID: 1, StartTime: "12:00"})
	assert.Equal(t, Noop, outcome)
	assert.Equal(t, sel, got)
}

func TestToggle(t *testing.T) {
	sel, outcome := Toggle(domain.Selection{}, slotAt(1, "09:00"))
	require.Equal(t, Accepted, outcome)

	sel, outcome = Toggle(sel, slotAt(1, "09:30"))
	require.Equal(t, Accepted, outcome)

	sel, outcome = Toggle(sel, slotAt(1, "09:30"))
	assert.Equal(t, Removed, outcome)
	assert.Equal(t, times("09:00"), sel.Times)
}

func TestCanSelect(t *testing.T) {
	sel := selectAll(t, slotAt(1, "09:00"), slotAt(1, "09:30"))

	assert.True(t, CanSelect(sel, slotAt(1, "08:30")))
	assert.True(t, CanSelect(sel, slotAt(1, "10:00")))
	assert.True(t, CanSelect(sel, slotAt(1, "09:00")), "selected slots stay enabled")
	assert.False(t, CanSelect(sel, slotAt(1, "10:30")))
	assert.False(t, CanSelect(sel, slotAt(2, "10:00")))

	assert.True(t, CanSelect(domain.Selection{}, slotAt(2, "10:00")))
}

func TestSelect_ContiguityInvariantHolds(t *testing.T) {
	clicks := []domain.Slot{
		slotAt(1, "10:00"), slotAt(1, "12:00"), slotAt(1, "10:30"), slotAt(2, "11:00"),
		slotAt(1, "09:30"), slotAt(1, "11:30"), slotAt(1, "11:00"), slotAt(1, "09:00"),
		slotAt(1, "11:30"),
	}

	sel := domain.Selection{}
	for _, c := range clicks {
		sel, _ = Toggle(sel, c)
		require.NoError(t, Validate(sel))
		if !sel.IsEmpty() {
			assert.Equal(t, int64(1), sel.CourtID)
		}
	}
	assert.Equal(t, times("09:00", "09:30", "10:00", "10:30", "11:00", "11:30"), sel.Times)
}

func TestSelect_RejectedSlotAcceptedOnceAdjacent(t *testing.T) {
	sel := domain.Selection{CourtID: 1, DurationMinutes: 30, Times: times("10:00", "10:30")}

	next, outcome := Select(sel, slotAt(1, "11:30"))
	assert.Equal(t, Rejected, outcome)
	assert.Equal(t, sel.Times, next.Times)

	next, outcome = Select(next, slotAt(1, "11:00"))
	require.Equal(t, Accepted, outcome)

	next, outcome = Select(next, slotAt(1, "11:30"))
	assert.Equal(t, Accepted, outcome)
	assert.Equal(t, times("10:00", "10:30", "11:00", "11:30"), next.Times)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(domain.Selection{}))

	gap := domain.Selection{CourtID: 1, DurationMinutes: 30, Times: times("09:00", "10:00")}
	assert.ErrorIs(t, Validate(gap), ErrInvalidSelection)

	dup := domain.Selection{CourtID: 1, DurationMinutes: 30, Times: times("09:00", "09:00")}
	assert.ErrorIs(t, Validate(dup), ErrInvalidSelection)

	noDuration := domain.Selection{CourtID: 1, Times: times("09:00")}
	assert.ErrorIs(t, Validate(noDuration), ErrInvalidSelection)
}
