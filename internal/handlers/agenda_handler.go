package handlers

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/dto"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/httpresp"
)

type agendaByDateUseCase interface {
	Execute(ctx context.Context, caller domain.Caller, employeeID uint, date string) ([]dto.AppointmentListDTO, error)
}

type agendaByMonthUseCase interface {
	Execute(ctx context.Context, caller domain.Caller, employeeID uint, year, month int) ([]dto.AppointmentListDTO, error)
}

// AgendaHandler serves an employee's own view of their appointments.
type AgendaHandler struct {
	byDate  agendaByDateUseCase
	byMonth agendaByMonthUseCase
	log     *slog.Logger
}

func NewAgendaHandler(byDate agendaByDateUseCase, byMonth agendaByMonthUseCase, log *slog.Logger) *AgendaHandler {
	return &AgendaHandler{byDate: byDate, byMonth: byMonth, log: log}
}

// GET /api/employees/:id/appointments?date=YYYY-MM-DD
func (h *AgendaHandler) ByDate(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	employeeID, ok := idParam(c, "id")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Parâmetro date é obrigatório.")
		return
	}

	list, err := h.byDate.Execute(c.Request.Context(), caller, employeeID, date)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, list)
}

// GET /api/employees/:id/appointments/month?year=YYYY&month=MM
func (h *AgendaHandler) ByMonth(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	employeeID, ok := idParam(c, "id")
	if !ok {
		return
	}

	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil {
		httperr.BadRequest(c, "invalid_period", "Ano ou mês inválido.")
		return
	}

	list, err := h.byMonth.Execute(c.Request.Context(), caller, employeeID, year, month)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, list)
}
