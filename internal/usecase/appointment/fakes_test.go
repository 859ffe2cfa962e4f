package appointment

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/logger"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

var (
	testLoc = time.FixedZone("ART", -3*60*60)
	// Monday, the day before testDay.
	testNow = time.Date(2026, 3, 9, 12, 0, 0, 0, testLoc)
	// Tuesday.
	testDay = "2026-03-10"

	errBoom = errors.New("boom")
)

func testSettings() Settings {
	return Settings{
		Location:           testLoc,
		Granularity:        15 * time.Minute,
		CancellationCutoff: 24 * time.Hour,
		Now:                func() time.Time { return testNow },
	}
}

func on(day, hm string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", day+" "+hm, testLoc)
	if err != nil {
		panic(err)
	}
	return t
}

var (
	alice = models.Employee{ID: 1, BusinessID: 1, Name: "Alice", LastName: "Souza", IsActive: true}
	bruno = models.Employee{ID: 2, BusinessID: 1, Name: "Bruno", LastName: "Lima", IsActive: true}
	// works for another business
	carla = models.Employee{ID: 3, BusinessID: 2, Name: "Carla", LastName: "Reis", IsActive: true}

	testEmployees = map[uint]models.Employee{alice.ID: alice, bruno.ID: bruno, carla.ID: carla}

	haircut = models.Offering{ID: 10, BusinessID: 1, Name: "Corte", DurationMinutes: 30, IsActive: true}

	clientCaller = domain.Caller{ID: 100, Capability: domain.CapabilityClient}
	staffCaller  = domain.Caller{ID: 1, BusinessID: 1, Capability: domain.CapabilityEmployee}
	adminCaller  = domain.Caller{ID: 900, BusinessID: 1, Capability: domain.CapabilityAdministrator}
	superCaller  = domain.Caller{ID: 999, Capability: domain.CapabilitySuperuser}
	foreignStaff = domain.Caller{ID: 55, BusinessID: 2, Capability: domain.CapabilityEmployee}
	foreignAdmin = domain.Caller{ID: 901, BusinessID: 9, Capability: domain.CapabilityAdministrator}
	carlaCaller  = domain.Caller{ID: carla.ID, BusinessID: 2, Capability: domain.CapabilityEmployee}
)

// ===============================
// Employees
// ===============================

type fakeEmployees struct {
	err error
}

func (f fakeEmployees) GetEmployee(_ context.Context, id uint) (*models.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := testEmployees[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

// ===============================
// Offerings
// ===============================

type fakeOfferings struct {
	offerings map[uint]models.Offering
	roster    map[uint][]models.Employee
	err       error
}

func newFakeOfferings() *fakeOfferings {
	return &fakeOfferings{
		offerings: map[uint]models.Offering{haircut.ID: haircut},
		roster:    map[uint][]models.Employee{haircut.ID: {alice, bruno}},
	}
}

func (f *fakeOfferings) GetOffering(_ context.Context, id uint) (*models.Offering, error) {
	if f.err != nil {
		return nil, f.err
	}
	o, ok := f.offerings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &o, nil
}

func (f *fakeOfferings) FindEligibleEmployees(_ context.Context, id uint) ([]models.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Employee(nil), f.roster[id]...), nil
}

// ===============================
// Work shifts
// ===============================

type fakeShifts struct {
	shifts []models.WorkShift
	err    error

	mu        sync.Mutex
	dayOfWeek int
}

func (f *fakeShifts) FindWorkShifts(_ context.Context, ids []uint, dayOfWeek int) ([]models.WorkShift, error) {
	f.mu.Lock()
	f.dayOfWeek = dayOfWeek
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	wanted := make(map[uint]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var out []models.WorkShift
	for _, s := range f.shifts {
		if wanted[s.EmployeeID] && s.DayOfWeek == dayOfWeek {
			out = append(out, s)
		}
	}
	return out, nil
}

// ===============================
// Appointments
// ===============================

type fakeRepo struct {
	mu           sync.Mutex
	appointments map[uint]*models.Appointment
	nextID       uint

	findErr   error
	createErr error
	updateErr error
	listErr   error

	listStart, listEnd time.Time
	lastFilter         domain.AppointmentFilter
}

func newFakeRepo(existing ...models.Appointment) *fakeRepo {
	r := &fakeRepo{appointments: map[uint]*models.Appointment{}, nextID: 1}
	for i := range existing {
		ap := existing[i]
		if ap.ID == 0 {
			ap.ID = r.nextID
		}
		if ap.ID >= r.nextID {
			r.nextID = ap.ID + 1
		}
		r.appointments[ap.ID] = &ap
	}
	return r
}

func (r *fakeRepo) FindScheduledAppointments(_ context.Context, ids []uint, start, end time.Time) ([]models.Appointment, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	wanted := make(map[uint]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var out []models.Appointment
	for _, ap := range r.appointments {
		if wanted[ap.EmployeeID] &&
			ap.Status == string(domain.StatusScheduled) &&
			domain.Overlaps(ap.StartTime, ap.EndTime, start, end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, other := range r.appointments {
		if other.EmployeeID == ap.EmployeeID &&
			other.Status == string(domain.StatusScheduled) &&
			domain.Overlaps(other.StartTime, other.EndTime, ap.StartTime, ap.EndTime) {
			return httperr.Conflict("time_conflict", "Horário indisponível.")
		}
	}

	ap.ID = r.nextID
	r.nextID++
	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *ap
	cp.Employee = testEmployees[cp.EmployeeID]
	return &cp, nil
}

func (r *fakeRepo) UpdateAppointmentStatus(_ context.Context, ap *models.Appointment) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.appointments[ap.ID]
	if !ok || stored.Status != string(domain.StatusScheduled) {
		return httperr.Conflict("status_changed", "O agendamento foi alterado por outra operação.")
	}
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.appointments, id)
	return nil
}

func (r *fakeRepo) ListAppointmentsForPeriod(_ context.Context, employeeID uint, start, end time.Time) ([]models.Appointment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listStart, r.listEnd = start, end

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.EmployeeID == employeeID && !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointments(_ context.Context, f domain.AppointmentFilter) ([]models.Appointment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastFilter = f

	var out []models.Appointment
	for _, ap := range r.appointments {
		switch {
		case f.UserID != 0 && ap.UserID != f.UserID,
			f.EmployeeID != 0 && ap.EmployeeID != f.EmployeeID,
			f.BusinessID != 0 && testEmployees[ap.EmployeeID].BusinessID != f.BusinessID,
			!f.From.IsZero() && ap.StartTime.Before(f.From),
			!f.To.IsZero() && !ap.StartTime.Before(f.To):
			continue
		}
		out = append(out, *ap)
	}

	sort.Slice(out, func(i, j int) bool {
		if f.NewestFirst {
			return out[i].StartTime.After(out[j].StartTime)
		}
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (r *fakeRepo) ListScheduledStartingBetween(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listStart, r.listEnd = start, end

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.Status == string(domain.StatusScheduled) && !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) stored(id uint) models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return *r.appointments[id]
}

// ===============================
// Notifier
// ===============================

type fakeNotifier struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (n *fakeNotifier) Notify(_ context.Context, msg domain.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
}

func (n *fakeNotifier) recipients() []domain.Recipient {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]domain.Recipient, 0, len(n.sent))
	for _, s := range n.sent {
		out = append(out, s.Recipient)
	}
	return out
}

var discard = logger.Discard()
