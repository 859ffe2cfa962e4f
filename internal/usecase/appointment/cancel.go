package appointment

import (
	"context"
	"log/slog"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type CancelAppointmentInput struct {
	Caller        domain.Caller
	AppointmentID uint
	Reason        string
}

type CancelAppointment struct {
	repo     domain.Repository
	notifier domain.Notifier
	settings Settings
	log      *slog.Logger
}

func NewCancelAppointment(
	repo domain.Repository,
	notifier domain.Notifier,
	settings Settings,
	log *slog.Logger,
) *CancelAppointment {
	return &CancelAppointment{
		repo:     repo,
		notifier: notifier,
		settings: settings,
		log:      log,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	in CancelAppointmentInput,
) (*models.Appointment, error) {

	ap, err := loadAppointment(ctx, uc.repo, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if !in.Caller.CanAccessAppointment(domain.ActionCancelAny, ap.UserID, employeeRef(ap.Employee)) {
		return nil, httperr.Forbidden("not_owner", "Você só pode cancelar seus próprios agendamentos.")
	}

	by := domain.CancelledByFor(in.Caller.Capability)
	if err := domain.Cancel(ap, uc.settings.now(), uc.settings.cutoff(), by, in.Reason); err != nil {
		return nil, err
	}

	if err := saveStatus(ctx, uc.repo, ap); err != nil {
		return nil, err
	}

	uc.notifier.Notify(ctx, cancelledNotification(ap, by))

	uc.log.Info("appointment cancelled",
		"appointment_id", ap.ID,
		"cancelled_by", string(by),
	)

	return ap, nil
}
