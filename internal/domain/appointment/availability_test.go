package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alice = SlotOwner{ID: 1, Name: "Alice Souza"}

func times(slots []Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Time)
	}
	return out
}

func TestGenerateSlots_FullDayWithOneAppointment(t *testing.T) {
	shift := Interval{Start: at("09:00"), End: at("17:00")}
	busy := []Interval{{Start: at("10:00"), End: at("10:30")}}

	slots := GenerateSlots(alice, shift, 30*time.Minute, 15*time.Minute, busy)
	got := times(slots)

	// 09:45, 10:00 and 10:15 would each run into the 10:00-10:30 booking.
	assert.Equal(t, []string{"09:00", "09:15", "09:30", "10:30"}, got[:4])
	assert.NotContains(t, got, "09:45")
	assert.NotContains(t, got, "10:00")
	assert.NotContains(t, got, "10:15")
	assert.Equal(t, "16:30", got[len(got)-1], "last slot ends exactly at shift end")
	assert.Len(t, got, 28)

	for _, s := range slots {
		assert.Equal(t, alice.ID, s.EmployeeID)
		assert.Equal(t, alice.Name, s.EmployeeName)
	}
}

func TestGenerateSlots_NeverOverlapsBusy(t *testing.T) {
	shift := Interval{Start: at("08:00"), End: at("18:00")}
	busy := []Interval{
		{Start: at("08:20"), End: at("09:05")},
		{Start: at("12:00"), End: at("13:00")},
		{Start: at("17:30"), End: at("18:00")},
	}
	duration := 40 * time.Minute

	slots := GenerateSlots(alice, shift, duration, 15*time.Minute, busy)
	require.NotEmpty(t, slots)

	for _, s := range slots {
		start := at(s.Time)
		end := start.Add(duration)
		assert.False(t, end.After(shift.End), "slot %s runs past shift end", s.Time)
		for _, b := range busy {
			assert.False(t, Overlaps(start, end, b.Start, b.End), "slot %s overlaps %v", s.Time, b)
		}
	}
}

func TestGenerateSlots_ShiftShorterThanDuration(t *testing.T) {
	shift := Interval{Start: at("09:00"), End: at("09:45")}

	assert.Empty(t, GenerateSlots(alice, shift, time.Hour, 15*time.Minute, nil))
}

func TestGenerateSlots_ShiftExactlyDuration(t *testing.T) {
	shift := Interval{Start: at("09:00"), End: at("10:00")}

	assert.Equal(t, []string{"09:00"}, times(GenerateSlots(alice, shift, time.Hour, 15*time.Minute, nil)))
}

func TestGenerateSlots_StepIndependentOfDuration(t *testing.T) {
	shift := Interval{Start: at("09:00"), End: at("10:00")}

	got := times(GenerateSlots(alice, shift, 20*time.Minute, 15*time.Minute, nil))
	assert.Equal(t, []string{"09:00", "09:15", "09:30"}, got)
}

func TestGenerateSlots_InvalidInputs(t *testing.T) {
	shift := Interval{Start: at("09:00"), End: at("10:00")}

	assert.Nil(t, GenerateSlots(alice, shift, 0, 15*time.Minute, nil))
	assert.Nil(t, GenerateSlots(alice, shift, 30*time.Minute, 0, nil))
	assert.Nil(t, GenerateSlots(alice, Interval{Start: at("10:00"), End: at("09:00")}, 30*time.Minute, 15*time.Minute, nil))
}

func TestDedupeByTime_FirstWins(t *testing.T) {
	slots := []Slot{
		{Time: "10:00", EmployeeID: 1, EmployeeName: "A"},
		{Time: "10:15", EmployeeID: 1, EmployeeName: "A"},
		{Time: "10:00", EmployeeID: 2, EmployeeName: "B"},
		{Time: "11:00", EmployeeID: 2, EmployeeName: "B"},
	}

	got := DedupeByTime(slots)

	require.Len(t, got, 3)
	assert.Equal(t, Slot{Time: "10:00", EmployeeID: 1, EmployeeName: "A"}, got[0])
	assert.Equal(t, "10:15", got[1].Time)
	assert.Equal(t, Slot{Time: "11:00", EmployeeID: 2, EmployeeName: "B"}, got[2])
}

func TestSortByTime_StableForEqualTimes(t *testing.T) {
	slots := []Slot{
		{Time: "14:00", EmployeeID: 2},
		{Time: "09:00", EmployeeID: 2},
		{Time: "09:00", EmployeeID: 1},
		{Time: "11:30", EmployeeID: 1},
	}

	SortByTime(slots)

	assert.Equal(t, []string{"09:00", "09:00", "11:30", "14:00"}, times(slots))
	assert.Equal(t, uint(2), slots[0].EmployeeID)
	assert.Equal(t, uint(1), slots[1].EmployeeID)
}

func TestAvailabilityInput_SpecificEmployee(t *testing.T) {
	assert.False(t, AvailabilityInput{}.SpecificEmployee())
	assert.False(t, AvailabilityInput{EmployeeID: "any"}.SpecificEmployee())
	assert.True(t, AvailabilityInput{EmployeeID: "7"}.SpecificEmployee())
}
