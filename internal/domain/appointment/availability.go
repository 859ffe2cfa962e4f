package appointment

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/agenda-api/internal/timezone"
)

const DefaultGranularity = 15 * time.Minute

type AvailabilityInput struct {
	ServiceID  string
	Date       string
	EmployeeID string
}

// AnyEmployee requests availability across the whole eligible roster.
const AnyEmployee = "any"

func (in AvailabilityInput) SpecificEmployee() bool {
	return in.EmployeeID != "" && in.EmployeeID != AnyEmployee
}

type Slot struct {
	Time         string `json:"time"`
	EmployeeID   uint   `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
}

type SlotOwner struct {
	ID   uint
	Name string
}

// GenerateSlots walks one shift in steps of granularity and returns every
// start whose [start, start+duration) fits in the shift and overlaps none of
// busy. The step advances whether or not the candidate was accepted.
func GenerateSlots(
	owner SlotOwner,
	shift Interval,
	duration time.Duration,
	granularity time.Duration,
	busy []Interval,
) []Slot {
	if duration <= 0 || granularity <= 0 {
		return nil
	}
	if !shift.End.After(shift.Start) {
		return nil
	}

	var slots []Slot
	for cur := shift.Start; !cur.Add(duration).After(shift.End); cur = cur.Add(granularity) {
		candidate := Interval{Start: cur, End: cur.Add(duration)}
		if overlapsAny(candidate, busy) {
			continue
		}
		slots = append(slots, Slot{
			Time:         timezone.FormatClock(cur),
			EmployeeID:   owner.ID,
			EmployeeName: owner.Name,
		})
	}

	return slots
}

// DedupeByTime keeps the first slot seen for each time value. Which of several
// equally free employees is shown does not matter to the client, only that the
// time is bookable.
func DedupeByTime(slots []Slot) []Slot {
	seen := make(map[string]struct{}, len(slots))
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if _, ok := seen[s.Time]; ok {
			continue
		}
		seen[s.Time] = struct{}{}
		out = append(out, s)
	}
	return out
}

// SortByTime orders slots by HH:MM, keeping generation order for equal times.
func SortByTime(slots []Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Time < slots[j].Time
	})
}
