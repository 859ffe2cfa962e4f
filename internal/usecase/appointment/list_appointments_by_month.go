package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/dto"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
)

type ListAppointmentsByMonth struct {
	repo      domain.Repository
	employees domain.EmployeeLookup
	settings  Settings
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
	employees domain.EmployeeLookup,
	settings Settings,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo:      repo,
		employees: employees,
		settings:  settings,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	caller domain.Caller,
	employeeID uint,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	if _, err := authorizeEmployee(
		ctx, uc.employees, caller, domain.ActionReadAgenda, employeeID,
		"Sem acesso à agenda deste profissional.",
	); err != nil {
		return nil, err
	}

	if year < 2000 || month < 1 || month > 12 {
		return nil, httperr.Validation("invalid_period", "Ano ou mês inválido.")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, uc.settings.location())
	end := start.AddDate(0, 1, 0)

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
