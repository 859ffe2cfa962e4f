package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

func tuesdayShift(employeeID uint, start, end string) models.WorkShift {
	return models.WorkShift{EmployeeID: employeeID, DayOfWeek: int(time.Tuesday), StartTime: start, EndTime: end}
}

func newAvailability(offerings *fakeOfferings, shifts *fakeShifts, repo *fakeRepo) *GetAvailability {
	return NewGetAvailability(offerings, shifts, repo, testSettings(), discard)
}

func slotTimes(slots []domain.Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Time)
	}
	return out
}

func TestGetAvailability_AnyEmployeeDedupesByTime(t *testing.T) {
	shifts := &fakeShifts{shifts: []models.WorkShift{
		tuesdayShift(alice.ID, "10:00", "10:30"),
		tuesdayShift(bruno.ID, "10:00", "10:30"),
	}}
	uc := newAvailability(newFakeOfferings(), shifts, newFakeRepo())

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ServiceID: "10", Date: testDay, EmployeeID: domain.AnyEmployee,
	})

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "10:00", slots[0].Time)
	assert.Equal(t, alice.ID, slots[0].EmployeeID, "first employee in roster order wins")
	assert.Equal(t, "Alice Souza", slots[0].EmployeeName)
	assert.Equal(t, int(time.Tuesday), shifts.dayOfWeek)
}

func TestGetAvailability_SpecificEmployee(t *testing.T) {
	shifts := &fakeShifts{shifts: []models.WorkShift{
		tuesdayShift(alice.ID, "10:00", "10:30"),
		tuesdayShift(bruno.ID, "10:00", "11:00"),
	}}
	uc := newAvailability(newFakeOfferings(), shifts, newFakeRepo())

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ServiceID: "10", Date: testDay, EmployeeID: "2",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "10:15", "10:30"}, slotTimes(slots))
	for _, s := range slots {
		assert.Equal(t, bruno.ID, s.EmployeeID)
	}
}

func TestGetAvailability_ExcludesBookedTimes(t *testing.T) {
	shifts := &fakeShifts{shifts: []models.WorkShift{tuesdayShift(alice.ID, "09:00", "17:00")}}
	repo := newFakeRepo(models.Appointment{
		EmployeeID: alice.ID,
		StartTime:  on(testDay, "10:00"),
		EndTime:    on(testDay, "10:30"),
		Status:     string(domain.StatusScheduled),
	})
	uc := newAvailability(newFakeOfferings(), shifts, repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ServiceID: "10", Date: testDay, EmployeeID: "1",
	})

	require.NoError(t, err)
	got := slotTimes(slots)
	assert.Equal(t, []string{"09:00", "09:15", "09:30", "10:30"}, got[:4])
	assert.Equal(t, "16:30", got[len(got)-1])
	assert.Len(t, got, 28)
}

func TestGetAvailability_CancelledAppointmentsDoNotBlock(t *testing.T) {
	shifts := &fakeShifts{shifts: []models.WorkShift{tuesdayShift(alice.ID, "10:00", "10:30")}}
	repo := newFakeRepo(models.Appointment{
		EmployeeID: alice.ID,
		StartTime:  on(testDay, "10:00"),
		EndTime:    on(testDay, "10:30"),
		Status:     string(domain.StatusCancelled),
	})
	uc := newAvailability(newFakeOfferings(), shifts, repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{ServiceID: "10", Date: testDay})

	require.NoError(t, err)
	assert.Equal(t, []string{"10:00"}, slotTimes(slots))
}

func TestGetAvailability_SortedAcrossEmployeesAndShifts(t *testing.T) {
	shifts := &fakeShifts{shifts: []models.WorkShift{
		tuesdayShift(alice.ID, "14:00", "14:30"),
		tuesdayShift(alice.ID, "09:00", "09:30"),
		tuesdayShift(bruno.ID, "11:00", "11:30"),
	}}
	uc := newAvailability(newFakeOfferings(), shifts, newFakeRepo())

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{ServiceID: "10", Date: testDay})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:00", "14:00"}, slotTimes(slots))
}

func TestGetAvailability_RepeatedCallsAreStable(t *testing.T) {
	shifts := &fakeShifts{shifts: []models.WorkShift{
		tuesdayShift(alice.ID, "09:00", "12:00"),
		tuesdayShift(bruno.ID, "10:00", "13:00"),
	}}
	uc := newAvailability(newFakeOfferings(), shifts, newFakeRepo())
	in := domain.AvailabilityInput{ServiceID: "10", Date: testDay, EmployeeID: "any"}

	first, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetAvailability_EmptyResults(t *testing.T) {
	t.Run("employee not in roster", func(t *testing.T) {
		uc := newAvailability(newFakeOfferings(), &fakeShifts{}, newFakeRepo())

		slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
			ServiceID: "10", Date: testDay, EmployeeID: "99",
		})

		require.NoError(t, err)
		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	})

	t.Run("no shifts that day", func(t *testing.T) {
		shifts := &fakeShifts{shifts: []models.WorkShift{
			{EmployeeID: alice.ID, DayOfWeek: int(time.Monday), StartTime: "09:00", EndTime: "17:00"},
		}}
		uc := newAvailability(newFakeOfferings(), shifts, newFakeRepo())

		slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{ServiceID: "10", Date: testDay})

		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("malformed shift skipped", func(t *testing.T) {
		shifts := &fakeShifts{shifts: []models.WorkShift{
			tuesdayShift(alice.ID, "9h", "17:00"),
			tuesdayShift(alice.ID, "12:00", "11:00"),
			tuesdayShift(bruno.ID, "10:00", "10:30"),
		}}
		uc := newAvailability(newFakeOfferings(), shifts, newFakeRepo())

		slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{ServiceID: "10", Date: testDay})

		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, bruno.ID, slots[0].EmployeeID)
	})
}

func TestGetAvailability_Errors(t *testing.T) {
	tests := []struct {
		name     string
		in       domain.AvailabilityInput
		mutate   func(*fakeOfferings, *fakeShifts, *fakeRepo)
		wantKind httperr.Kind
		wantCode string
	}{
		{
			name:     "missing service",
			in:       domain.AvailabilityInput{Date: testDay},
			wantKind: httperr.KindValidation,
			wantCode: "missing_params",
		},
		{
			name:     "missing date",
			in:       domain.AvailabilityInput{ServiceID: "10"},
			wantKind: httperr.KindValidation,
			wantCode: "missing_params",
		},
		{
			name:     "malformed date",
			in:       domain.AvailabilityInput{ServiceID: "10", Date: "10/03/2026"},
			wantKind: httperr.KindValidation,
			wantCode: "invalid_date",
		},
		{
			name:     "malformed service id",
			in:       domain.AvailabilityInput{ServiceID: "abc", Date: testDay},
			wantKind: httperr.KindValidation,
			wantCode: "invalid_service_id",
		},
		{
			name:     "unknown service",
			in:       domain.AvailabilityInput{ServiceID: "77", Date: testDay},
			wantKind: httperr.KindNotFound,
			wantCode: "offering_not_found",
		},
		{
			name: "inactive service",
			in:   domain.AvailabilityInput{ServiceID: "10", Date: testDay},
			mutate: func(o *fakeOfferings, _ *fakeShifts, _ *fakeRepo) {
				off := o.offerings[10]
				off.IsActive = false
				o.offerings[10] = off
			},
			wantKind: httperr.KindNotFound,
			wantCode: "offering_not_found",
		},
		{
			name: "shift lookup fails",
			in:   domain.AvailabilityInput{ServiceID: "10", Date: testDay},
			mutate: func(_ *fakeOfferings, s *fakeShifts, _ *fakeRepo) {
				s.err = errBoom
			},
			wantKind: httperr.KindInternal,
		},
		{
			name: "appointment lookup fails",
			in:   domain.AvailabilityInput{ServiceID: "10", Date: testDay},
			mutate: func(_ *fakeOfferings, _ *fakeShifts, r *fakeRepo) {
				r.findErr = errBoom
			},
			wantKind: httperr.KindInternal,
		},
		{
			name: "offering lookup fails",
			in:   domain.AvailabilityInput{ServiceID: "10", Date: testDay},
			mutate: func(o *fakeOfferings, _ *fakeShifts, _ *fakeRepo) {
				o.err = errBoom
			},
			wantKind: httperr.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offerings := newFakeOfferings()
			shifts := &fakeShifts{shifts: []models.WorkShift{tuesdayShift(alice.ID, "09:00", "10:00")}}
			repo := newFakeRepo()
			if tt.mutate != nil {
				tt.mutate(offerings, shifts, repo)
			}

			slots, err := newAvailability(offerings, shifts, repo).Execute(context.Background(), tt.in)

			require.Error(t, err)
			assert.Nil(t, slots, "no partial results")
			assert.Equal(t, tt.wantKind, httperr.KindOf(err))
			if tt.wantCode != "" {
				assert.True(t, httperr.IsBusiness(err, tt.wantCode), err.Error())
			}
		})
	}
}
