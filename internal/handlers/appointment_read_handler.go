package handlers

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/dto"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/httpresp"
	"github.com/BruksfildServices01/agenda-api/internal/models"
	usecase "github.com/BruksfildServices01/agenda-api/internal/usecase/appointment"
)

type listAppointmentsUseCase interface {
	Execute(ctx context.Context, in usecase.ListAppointmentsInput) ([]dto.AppointmentListDTO, error)
}

type getAppointmentUseCase interface {
	Execute(ctx context.Context, caller domain.Caller, appointmentID uint) (*models.Appointment, error)
}

type AppointmentReadHandler struct {
	list listAppointmentsUseCase
	get  getAppointmentUseCase
	log  *slog.Logger
}

func NewAppointmentReadHandler(
	list listAppointmentsUseCase,
	get getAppointmentUseCase,
	log *slog.Logger,
) *AppointmentReadHandler {
	return &AppointmentReadHandler{list: list, get: get, log: log}
}

// GET /api/appointments?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *AppointmentReadHandler) List(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	out, err := h.list.Execute(c.Request.Context(), usecase.ListAppointmentsInput{
		Caller: caller,
		From:   c.Query("from"),
		To:     c.Query("to"),
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, out)
}

// GET /api/appointments/:id
func (h *AppointmentReadHandler) Get(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), caller, id)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, ap)
}
