package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalanjalan/jalanjalan-backend/types"
)

func testAssembler() *Assembler {
	return NewAssembler(map[types.TransportMode]TransportLeg{
		types.TransportOwn:    {Cost: 5, DurationMinutes: 20},
		types.TransportPublic: {Cost: 15, DurationMinutes: 35},
	})
}

func activity(id string, day int, start string) types.ScheduledActivity {
	return types.ScheduledActivity{
		ID:        id,
		Name:      id,
		Origin:    types.OriginPOI,
		Day:       day,
		StartTime: start,
	}
}

func TestAssemble_StartsWithCheckIn(t *testing.T) {
	entries := testAssembler().Assemble(nil, types.TransportOwn)
	require.Len(t, entries, 1)
	assert.Equal(t, types.EntryLogistics, entries[0].Kind)
	assert.Equal(t, CheckInTitle, entries[0].Title)
	assert.Equal(t, 1, entries[0].Day)
	assert.Equal(t, "14:00", entries[0].Time)
}

func TestAssemble_SortsByDayThenTime(t *testing.T) {
	entries := testAssembler().Assemble([]types.ScheduledActivity{
		activity("c", 2, "09:00"),
		activity("a", 1, "15:00"),
		activity("b", 1, "09:30"),
	}, types.TransportOwn)

	var order []string
	for _, e := range entries {
		if e.Kind == types.EntryActivity {
			order = append(order, e.Activity.ID)
		}
	}
	assert.Equal(t, []string{"b", "a", "c"}, order)
}

func TestAssemble_TransportLegsOnlyWithinADay(t *testing.T) {
	entries := testAssembler().Assemble([]types.ScheduledActivity{
		activity("a", 1, "09:00"),
		activity("b", 1, "12:00"),
		activity("c", 2, "10:00"),
	}, types.TransportPublic)

	// check-in, a, leg, b, c. No leg across the day boundary and none
	// after the last activity.
	require.Len(t, entries, 5)
	assert.Equal(t, types.EntryLogistics, entries[0].Kind)
	assert.Equal(t, "a", entries[1].Activity.ID)
	assert.Equal(t, types.EntryTransport, entries[2].Kind)
	assert.Equal(t, "b", entries[3].Activity.ID)
	assert.Equal(t, "c", entries[4].Activity.ID)
}

func TestAssemble_LegUsesModeConstants(t *testing.T) {
	acts := []types.ScheduledActivity{
		activity("a", 1, "09:00"),
		activity("b", 1, "12:00"),
	}

	own := testAssembler().Assemble(acts, types.TransportOwn)
	public := testAssembler().Assemble(acts, types.TransportPublic)

	require.Equal(t, types.EntryTransport, own[2].Kind)
	assert.Equal(t, 5.0, own[2].Cost)
	assert.Equal(t, 20, own[2].DurationMinutes)
	assert.Equal(t, types.TransportOwn, own[2].TransportMode)

	require.Equal(t, types.EntryTransport, public[2].Kind)
	assert.Equal(t, 15.0, public[2].Cost)
	assert.Equal(t, 35, public[2].DurationMinutes)
}

func TestAssemble_DoesNotMutateInput(t *testing.T) {
	acts := []types.ScheduledActivity{
		activity("b", 1, "12:00"),
		activity("a", 1, "09:00"),
	}
	_ = testAssembler().Assemble(acts, types.TransportOwn)
	assert.Equal(t, "b", acts[0].ID)
}
