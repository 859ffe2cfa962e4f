package handlers

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/httpresp"
	"github.com/BruksfildServices01/agenda-api/internal/models"
	usecase "github.com/BruksfildServices01/agenda-api/internal/usecase/appointment"
)

type listWorkShiftsUseCase interface {
	Execute(ctx context.Context, employeeID uint) ([]models.WorkShift, error)
}

type replaceWorkShiftsUseCase interface {
	Execute(ctx context.Context, caller domain.Caller, employeeID uint, in []usecase.WorkShiftInput) ([]models.WorkShift, error)
}

type ScheduleHandler struct {
	list    listWorkShiftsUseCase
	replace replaceWorkShiftsUseCase
	log     *slog.Logger
}

func NewScheduleHandler(list listWorkShiftsUseCase, replace replaceWorkShiftsUseCase, log *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{list: list, replace: replace, log: log}
}

type WorkShiftRequest struct {
	DayOfWeek *int   `json:"dayOfWeek" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// GET /api/employees/:id/schedules
func (h *ScheduleHandler) Get(c *gin.Context) {
	employeeID, ok := idParam(c, "id")
	if !ok {
		return
	}

	shifts, err := h.list.Execute(c.Request.Context(), employeeID)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, shifts)
}

// PUT /api/employees/:id/schedules
//
// The body is the complete weekly configuration as a JSON array; an empty
// array clears it.
func (h *ScheduleHandler) Update(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	employeeID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req []WorkShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "O corpo deve ser uma lista de horários.")
		return
	}

	in := make([]usecase.WorkShiftInput, 0, len(req))
	for _, r := range req {
		in = append(in, usecase.WorkShiftInput{
			DayOfWeek: *r.DayOfWeek,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		})
	}

	shifts, err := h.replace.Execute(c.Request.Context(), caller, employeeID, in)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, shifts)
}
