package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/dto"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo      domain.Repository
	employees domain.EmployeeLookup
	settings  Settings
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	employees domain.EmployeeLookup,
	settings Settings,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo:      repo,
		employees: employees,
		settings:  settings,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	caller domain.Caller,
	employeeID uint,
	date string,
) ([]dto.AppointmentListDTO, error) {

	if _, err := authorizeEmployee(
		ctx, uc.employees, caller, domain.ActionReadAgenda, employeeID,
		"Sem acesso à agenda deste profissional.",
	); err != nil {
		return nil, err
	}

	day, err := timezone.ParseDate(date, uc.settings.location())
	if err != nil {
		return nil, httperr.Validation("invalid_date", "Data inválida.")
	}

	start, end := timezone.DayBounds(day)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		employeeID,
		start,
		end,
	)
	if err != nil {
		return nil, httperr.Internal("failed_to_list_appointments", err)
	}

	return dto.NewAppointmentList(appointments), nil
}
