package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/httpresp"
	"github.com/BruksfildServices01/agenda-api/internal/models"
	usecase "github.com/BruksfildServices01/agenda-api/internal/usecase/appointment"
)

// ======================================================
// USE CASES
// ======================================================

type createAppointmentUseCase interface {
	Execute(ctx context.Context, in usecase.CreateAppointmentInput) (*models.Appointment, error)
}

type updateAppointmentStatusUseCase interface {
	Execute(ctx context.Context, in usecase.UpdateAppointmentStatusInput) (*models.Appointment, error)
}

type deleteAppointmentUseCase interface {
	Execute(ctx context.Context, caller domain.Caller, appointmentID uint) error
}

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create createAppointmentUseCase
	update updateAppointmentStatusUseCase
	delete deleteAppointmentUseCase
	log    *slog.Logger
}

func NewAppointmentHandler(
	create createAppointmentUseCase,
	update updateAppointmentStatusUseCase,
	del deleteAppointmentUseCase,
	log *slog.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		create: create,
		update: update,
		delete: del,
		log:    log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	EmployeeID uint       `json:"employeeId"`
	OfferingID uint       `json:"offeringId"`
	UserID     uint       `json:"userId"`
	StartTime  time.Time  `json:"startTime"`
	EndTime    *time.Time `json:"endTime"`
	Notes      string     `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Status             string `json:"status"`
	CancellationReason string `json:"cancellationReason"`
}

// ======================================================
// CREATE
// ======================================================

// POST /api/appointments
func (h *AppointmentHandler) Create(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), usecase.CreateAppointmentInput{
		Caller:     caller,
		EmployeeID: req.EmployeeID,
		OfferingID: req.OfferingID,
		UserID:     req.UserID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Notes:      req.Notes,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// UPDATE STATUS
// ======================================================

// PATCH /api/appointments/:id
func (h *AppointmentHandler) Update(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), usecase.UpdateAppointmentStatusInput{
		Caller:             caller,
		AppointmentID:      id,
		Status:             req.Status,
		CancellationReason: req.CancellationReason,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

// DELETE /api/appointments/:id
func (h *AppointmentHandler) Delete(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), caller, id); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
