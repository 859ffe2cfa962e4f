package appointment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
	"github.com/BruksfildServices01/agenda-api/internal/timezone"
)

type GetAvailability struct {
	offerings domain.OfferingLookup
	shifts    domain.WorkShiftRepository
	repo      domain.Repository
	settings  Settings
	log       *slog.Logger
}

func NewGetAvailability(
	offerings domain.OfferingLookup,
	shifts domain.WorkShiftRepository,
	repo domain.Repository,
	settings Settings,
	log *slog.Logger,
) *GetAvailability {
	return &GetAvailability{
		offerings: offerings,
		shifts:    shifts,
		repo:      repo,
		settings:  settings,
		log:       log,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.Slot, error) {

	// --------------------------------------------------
	// 1. Input
	// --------------------------------------------------
	if strings.TrimSpace(in.ServiceID) == "" || strings.TrimSpace(in.Date) == "" {
		return nil, httperr.Validation("missing_params", "serviceId e date são obrigatórios.")
	}

	serviceID, err := strconv.ParseUint(in.ServiceID, 10, 64)
	if err != nil {
		return nil, httperr.Validation("invalid_service_id", "Serviço inválido.")
	}

	date, err := timezone.ParseDate(in.Date, uc.settings.location())
	if err != nil {
		return nil, httperr.Validation("invalid_date", "Data inválida.")
	}

	var employeeID uint64
	if in.SpecificEmployee() {
		employeeID, err = strconv.ParseUint(in.EmployeeID, 10, 64)
		if err != nil {
			return nil, httperr.Validation("invalid_employee_id", "Profissional inválido.")
		}
	}

	// --------------------------------------------------
	// 2. Offering + roster
	// --------------------------------------------------
	offering, err := uc.offerings.GetOffering(ctx, uint(serviceID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFound("offering_not_found", "Serviço não encontrado.")
		}
		return nil, httperr.Internal("availability_failed", err)
	}
	if !offering.IsActive {
		return nil, httperr.NotFound("offering_not_found", "Serviço não encontrado.")
	}

	roster, err := uc.offerings.FindEligibleEmployees(ctx, offering.ID)
	if err != nil {
		return nil, httperr.Internal("availability_failed", err)
	}

	if in.SpecificEmployee() {
		roster = filterRoster(roster, uint(employeeID))
	}

	if len(roster) == 0 {
		return []domain.Slot{}, nil
	}

	employeeIDs := make([]uint, 0, len(roster))
	for _, e := range roster {
		employeeIDs = append(employeeIDs, e.ID)
	}

	// --------------------------------------------------
	// 3. Shifts + appointments for the day, in parallel
	// --------------------------------------------------
	dayStart, dayEnd := timezone.DayBounds(date)

	var (
		shifts       []models.WorkShift
		appointments []models.Appointment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		shifts, err = uc.shifts.FindWorkShifts(gctx, employeeIDs, int(date.Weekday()))
		return err
	})
	g.Go(func() error {
		var err error
		appointments, err = uc.repo.FindScheduledAppointments(gctx, employeeIDs, dayStart, dayEnd)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, httperr.Internal("availability_failed", err)
	}

	shiftsByEmployee := make(map[uint][]models.WorkShift, len(roster))
	for _, s := range shifts {
		shiftsByEmployee[s.EmployeeID] = append(shiftsByEmployee[s.EmployeeID], s)
	}

	busyByEmployee := make(map[uint][]domain.Interval, len(roster))
	for _, ap := range appointments {
		busyByEmployee[ap.EmployeeID] = append(busyByEmployee[ap.EmployeeID], domain.Interval{
			Start: ap.StartTime,
			End:   ap.EndTime,
		})
	}

	// --------------------------------------------------
	// 4. Slot generation (no I/O from here on)
	// --------------------------------------------------
	slots := []domain.Slot{}
	for _, emp := range roster {
		owner := domain.SlotOwner{ID: emp.ID, Name: emp.FullName()}

		for _, ws := range shiftsByEmployee[emp.ID] {
			shift, err := shiftOnDate(date, ws)
			if err != nil {
				uc.log.Warn("skipping malformed work shift",
					"shift_id", ws.ID,
					"employee_id", ws.EmployeeID,
					"err", err,
				)
				continue
			}

			slots = append(slots, domain.GenerateSlots(
				owner,
				shift,
				offering.Duration(),
				uc.settings.granularity(),
				busyByEmployee[emp.ID],
			)...)
		}
	}

	if !in.SpecificEmployee() {
		slots = domain.DedupeByTime(slots)
	}
	domain.SortByTime(slots)

	return slots, nil
}

func filterRoster(roster []models.Employee, employeeID uint) []models.Employee {
	for _, e := range roster {
		if e.ID == employeeID {
			return []models.Employee{e}
		}
	}
	return nil
}

func shiftOnDate(date time.Time, ws models.WorkShift) (domain.Interval, error) {
	start, err := timezone.CombineClock(date, ws.StartTime)
	if err != nil {
		return domain.Interval{}, err
	}
	end, err := timezone.CombineClock(date, ws.EndTime)
	if err != nil {
		return domain.Interval{}, err
	}
	if !start.Before(end) {
		return domain.Interval{}, fmt.Errorf("shift %s-%s is empty", ws.StartTime, ws.EndTime)
	}
	return domain.Interval{Start: start, End: end}, nil
}
