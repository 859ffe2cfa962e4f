package appointment

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

// DefaultCancellationCutoff is the minimum lead time before an appointment's
// start for a cancellation to be accepted.
const DefaultCancellationCutoff = 24 * time.Hour

type CancelledBy string

const (
	CancelledByClient CancelledBy = "client"
	CancelledByStaff  CancelledBy = "staff"
)

func CancelledByFor(c Capability) CancelledBy {
	if c == CapabilityClient {
		return CancelledByClient
	}
	return CancelledByStaff
}

// ===============================
// Domain Actions
// ===============================

func Cancel(
	ap *models.Appointment,
	now time.Time,
	cutoff time.Duration,
	by CancelledBy,
	reason string,
) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	if ap.StartTime.Sub(now) < cutoff {
		return httperr.Forbidden(
			"cancellation_cutoff",
			fmt.Sprintf("Cancelamentos exigem antecedência mínima de %.0f horas.", cutoff.Hours()),
		)
	}

	ap.Status = string(StatusCancelled)
	ap.CancellationReason = reason
	ap.CancelledBy = string(by)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := resolve(ap, now); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func MarkNoShow(ap *models.Appointment, now time.Time) error {
	if err := resolve(ap, now); err != nil {
		return err
	}

	ap.Status = string(StatusNoShow)
	return nil
}

func resolve(ap *models.Appointment, now time.Time) error {
	if err := CanResolve(Status(ap.Status)); err != nil {
		return err
	}
	if now.Before(ap.StartTime) {
		return httperr.Forbidden("not_started", "O agendamento ainda não começou.")
	}
	return nil
}
