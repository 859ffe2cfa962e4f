package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type UpdateAppointmentStatusInput struct {
	Caller             domain.Caller
	AppointmentID      uint
	Status             string
	CancellationReason string
}

// UpdateAppointmentStatus routes a requested target status to the matching
// lifecycle transition.
type UpdateAppointmentStatus struct {
	cancel   *CancelAppointment
	complete *CompleteAppointment
	noShow   *MarkNoShow
}

func NewUpdateAppointmentStatus(
	cancel *CancelAppointment,
	complete *CompleteAppointment,
	noShow *MarkNoShow,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		cancel:   cancel,
		complete: complete,
		noShow:   noShow,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	in UpdateAppointmentStatusInput,
) (*models.Appointment, error) {

	target, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	resolve := ResolveAppointmentInput{
		Caller:        in.Caller,
		AppointmentID: in.AppointmentID,
	}

	switch target {
	case domain.StatusCancelled:
		return uc.cancel.Execute(ctx, CancelAppointmentInput{
			Caller:        in.Caller,
			AppointmentID: in.AppointmentID,
			Reason:        in.CancellationReason,
		})
	case domain.StatusCompleted:
		return uc.complete.Execute(ctx, resolve)
	case domain.StatusNoShow:
		return uc.noShow.Execute(ctx, resolve)
	default:
		return nil, httperr.Validation(
			"invalid_transition",
			"Um agendamento não pode voltar para scheduled.",
		)
	}
}
