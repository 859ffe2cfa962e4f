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

type ResolveAppointmentInput struct {
	Caller        domain.Caller
	AppointmentID uint
}

// ======================================================
// COMPLETE
// ======================================================

type CompleteAppointment struct {
	repo     domain.Repository
	settings Settings
	log      *slog.Logger
}

func NewCompleteAppointment(
	repo domain.Repository,
	settings Settings,
	log *slog.Logger,
) *CompleteAppointment {
	return &CompleteAppointment{repo: repo, settings: settings, log: log}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	in ResolveAppointmentInput,
) (*models.Appointment, error) {
	ap, err := resolveAppointment(ctx, uc.repo, uc.settings.now(), in, domain.Complete)
	if err != nil {
		return nil, err
	}

	uc.log.Info("appointment completed", "appointment_id", ap.ID)
	return ap, nil
}

// ======================================================
// NO-SHOW
// ======================================================

type MarkNoShow struct {
	repo     domain.Repository
	settings Settings
	log      *slog.Logger
}

func NewMarkNoShow(
	repo domain.Repository,
	settings Settings,
	log *slog.Logger,
) *MarkNoShow {
	return &MarkNoShow{repo: repo, settings: settings, log: log}
}

func (uc *MarkNoShow) Execute(
	ctx context.Context,
	in ResolveAppointmentInput,
) (*models.Appointment, error) {
	ap, err := resolveAppointment(ctx, uc.repo, uc.settings.now(), in, domain.MarkNoShow)
	if err != nil {
		return nil, err
	}

	uc.log.Info("appointment marked as no-show", "appointment_id", ap.ID)
	return ap, nil
}

// ======================================================
// HELPERS
// ======================================================

func resolveAppointment(
	ctx context.Context,
	repo domain.Repository,
	now time.Time,
	in ResolveAppointmentInput,
	apply func(*models.Appointment, time.Time) error,
) (*models.Appointment, error) {

	if !domain.Allowed(in.Caller.Capability, domain.ActionResolve) {
		return nil, httperr.Forbidden("staff_only", "Apenas a equipe pode finalizar agendamentos.")
	}

	ap, err := loadAppointment(ctx, repo, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if !in.Caller.CanAccessEmployee(domain.ActionResolve, employeeRef(ap.Employee)) {
		return nil, httperr.Forbidden("not_allowed", "Agendamento de outro estabelecimento.")
	}

	if err := apply(ap, now); err != nil {
		return nil, err
	}

	if err := saveStatus(ctx, repo, ap); err != nil {
		return nil, err
	}

	return ap, nil
}

func loadAppointment(
	ctx context.Context,
	repo domain.Repository,
	id uint,
) (*models.Appointment, error) {
	ap, err := repo.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFound("appointment_not_found", "Agendamento não encontrado.")
		}
		return nil, httperr.Internal("failed_to_load_appointment", err)
	}
	return ap, nil
}

func saveStatus(
	ctx context.Context,
	repo domain.Repository,
	ap *models.Appointment,
) error {
	if err := repo.UpdateAppointmentStatus(ctx, ap); err != nil {
		if httperr.KindOf(err) == httperr.KindConflict {
			return err
		}
		return httperr.Internal("failed_to_update_appointment", err)
	}
	return nil
}
