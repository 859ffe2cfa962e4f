package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	caller domain.Caller,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := loadAppointment(ctx, uc.repo, appointmentID)
	if err != nil {
		return nil, err
	}

	if !caller.CanAccessAppointment(domain.ActionReadAny, ap.UserID, employeeRef(ap.Employee)) {
		return nil, httperr.Forbidden("not_allowed", "Sem acesso a este agendamento.")
	}

	return ap, nil
}
