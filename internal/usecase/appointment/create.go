package appointment

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Caller domain.Caller

	EmployeeID uint
	OfferingID uint
	// UserID may be zero for client callers, who always book for themselves.
	UserID uint

	StartTime time.Time
	EndTime   *time.Time
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	offerings domain.OfferingLookup
	repo      domain.Repository
	notifier  domain.Notifier
	settings  Settings
	log       *slog.Logger
}

func NewCreateAppointment(
	offerings domain.OfferingLookup,
	repo domain.Repository,
	notifier domain.Notifier,
	settings Settings,
	log *slog.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		offerings: offerings,
		repo:      repo,
		notifier:  notifier,
		settings:  settings,
		log:       log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Campos obrigatórios
	// --------------------------------------------------
	if in.EmployeeID == 0 || in.OfferingID == 0 || in.StartTime.IsZero() {
		return nil, httperr.Validation(
			"missing_fields",
			"employeeId, offeringId e startTime são obrigatórios.",
		)
	}

	// --------------------------------------------------
	// 2. Para quem é o agendamento
	// --------------------------------------------------
	userID, err := bookingOwner(in.Caller, in.UserID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Serviço + profissional habilitado
	// --------------------------------------------------
	offering, err := uc.offerings.GetOffering(ctx, in.OfferingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFound("offering_not_found", "Serviço não encontrado.")
		}
		return nil, httperr.Internal("failed_to_create_appointment", err)
	}
	if !offering.IsActive {
		return nil, httperr.NotFound("offering_not_found", "Serviço não encontrado.")
	}

	// staff book only inside their own business
	if in.Caller.Capability.IsStaff() &&
		!in.Caller.CanActOnBusiness(domain.ActionBookForOthers, offering.BusinessID) {
		return nil, httperr.Forbidden(
			"not_allowed",
			"Serviço de outro estabelecimento.",
		)
	}

	roster, err := uc.offerings.FindEligibleEmployees(ctx, offering.ID)
	if err != nil {
		return nil, httperr.Internal("failed_to_create_appointment", err)
	}

	var employee *models.Employee
	for i := range roster {
		if roster[i].ID == in.EmployeeID && roster[i].BusinessID == offering.BusinessID {
			employee = &roster[i]
			break
		}
	}
	if employee == nil {
		return nil, httperr.Validation(
			"employee_not_eligible",
			"O profissional não realiza este serviço.",
		)
	}

	// --------------------------------------------------
	// 4. Horário
	// --------------------------------------------------
	start := in.StartTime.In(uc.settings.location())
	end := start.Add(offering.Duration())

	if in.EndTime != nil && !in.EndTime.Equal(end) {
		return nil, httperr.Validation(
			"end_time_mismatch",
			"endTime não corresponde à duração do serviço.",
		)
	}

	if start.Before(uc.settings.now()) {
		return nil, httperr.Validation(
			"start_in_past",
			"Não é possível agendar no passado.",
		)
	}

	// --------------------------------------------------
	// 5. Criação (conflito re-checado na transação)
	// --------------------------------------------------
	ap := &models.Appointment{
		EmployeeID: employee.ID,
		OfferingID: offering.ID,
		UserID:     userID,
		StartTime:  start,
		EndTime:    end,
		Status:     string(domain.InitialStatus()),
		Notes:      in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.KindOf(err) == httperr.KindConflict {
			return nil, err
		}
		return nil, httperr.Internal("failed_to_create_appointment", err)
	}

	ap.Offering = *offering
	ap.Employee = *employee

	// --------------------------------------------------
	// 6. Notificações
	// --------------------------------------------------
	for _, n := range bookedNotifications(ap) {
		uc.notifier.Notify(ctx, n)
	}

	uc.log.Info("appointment created",
		"appointment_id", ap.ID,
		"employee_id", ap.EmployeeID,
		"user_id", ap.UserID,
	)

	return ap, nil
}

// bookingOwner resolves the client the appointment belongs to. Clients may
// only book for themselves.
func bookingOwner(caller domain.Caller, requested uint) (uint, error) {
	if requested == 0 {
		if caller.Capability == domain.CapabilityClient {
			return caller.ID, nil
		}
		return 0, httperr.Validation("missing_user_id", "userId é obrigatório.")
	}

	if requested != caller.ID && !domain.Allowed(caller.Capability, domain.ActionBookForOthers) {
		return 0, httperr.Forbidden(
			"client_not_allowed",
			"Clientes só podem agendar para si mesmos.",
		)
	}

	return requested, nil
}
