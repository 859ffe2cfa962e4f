package appointment

import (
	"context"
	"errors"
	"log/slog"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
)

// DeleteAppointment removes the record regardless of status. It is the
// administrative override for the lifecycle, open to the client who booked
// it and to staff of the business.
type DeleteAppointment struct {
	repo domain.Repository
	log  *slog.Logger
}

func NewDeleteAppointment(
	repo domain.Repository,
	log *slog.Logger,
) *DeleteAppointment {
	return &DeleteAppointment{repo: repo, log: log}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	caller domain.Caller,
	appointmentID uint,
) error {

	ap, err := loadAppointment(ctx, uc.repo, appointmentID)
	if err != nil {
		return err
	}

	if !caller.CanAccessAppointment(domain.ActionDelete, ap.UserID, employeeRef(ap.Employee)) {
		return httperr.Forbidden("not_allowed", "Operação não permitida.")
	}

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.NotFound("appointment_not_found", "Agendamento não encontrado.")
		}
		return httperr.Internal("failed_to_delete_appointment", err)
	}

	uc.log.Info("appointment deleted",
		"appointment_id", appointmentID,
		"caller_id", caller.ID,
	)
	return nil
}
