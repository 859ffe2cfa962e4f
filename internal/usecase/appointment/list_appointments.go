package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/dto"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/timezone"
)

type ListAppointmentsInput struct {
	Caller domain.Caller
	// From and To are optional YYYY-MM-DD days, both inclusive.
	From string
	To   string
}

// ListAppointments returns the caller's appointments, newest first. Clients
// see their bookings, employees their own agenda, administrators their
// business and superusers everything.
type ListAppointments struct {
	repo     domain.Repository
	settings Settings
}

func NewListAppointments(
	repo domain.Repository,
	settings Settings,
) *ListAppointments {
	return &ListAppointments{
		repo:     repo,
		settings: settings,
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]dto.AppointmentListDTO, error) {

	filter, err := scopeFor(in.Caller)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Período
	// --------------------------------------------------
	if in.From != "" {
		day, err := timezone.ParseDate(in.From, uc.settings.location())
		if err != nil {
			return nil, httperr.Validation("invalid_date", "Data inicial inválida.")
		}
		filter.From, _ = timezone.DayBounds(day)
	}

	if in.To != "" {
		day, err := timezone.ParseDate(in.To, uc.settings.location())
		if err != nil {
			return nil, httperr.Validation("invalid_date", "Data final inválida.")
		}
		_, filter.To = timezone.DayBounds(day)
	}

	if !filter.From.IsZero() && !filter.To.IsZero() && !filter.From.Before(filter.To) {
		return nil, httperr.Validation("invalid_period", "Período inválido.")
	}

	filter.NewestFirst = true

	appointments, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, httperr.Internal("failed_to_list_appointments", err)
	}

	return dto.NewAppointmentList(appointments), nil
}

func scopeFor(caller domain.Caller) (domain.AppointmentFilter, error) {
	switch caller.Capability {
	case domain.CapabilityClient:
		return domain.AppointmentFilter{UserID: caller.ID}, nil
	case domain.CapabilityEmployee:
		return domain.AppointmentFilter{EmployeeID: caller.ID}, nil
	case domain.CapabilityAdministrator:
		if caller.BusinessID == 0 {
			return domain.AppointmentFilter{}, httperr.Forbidden(
				"missing_business",
				"Administrador sem estabelecimento associado.",
			)
		}
		return domain.AppointmentFilter{BusinessID: caller.BusinessID}, nil
	case domain.CapabilitySuperuser:
		return domain.AppointmentFilter{}, nil
	}

	return domain.AppointmentFilter{}, httperr.Forbidden("not_allowed", "Operação não permitida.")
}
