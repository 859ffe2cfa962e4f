package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
)

type availabilityUseCase interface {
	Execute(ctx context.Context, in domain.AvailabilityInput) ([]domain.Slot, error)
}

type AvailabilityHandler struct {
	uc  availabilityUseCase
	log *slog.Logger
}

func NewAvailabilityHandler(uc availabilityUseCase, log *slog.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{uc: uc, log: log}
}

type AvailabilityResponse struct {
	Slots []domain.Slot `json:"slots"`
}

// GET /api/availability?serviceId=&date=&employeeId=
func (h *AvailabilityHandler) Get(c *gin.Context) {
	slots, err := h.uc.Execute(c.Request.Context(), domain.AvailabilityInput{
		ServiceID:  c.Query("serviceId"),
		Date:       c.Query("date"),
		EmployeeID: c.Query("employeeId"),
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, AvailabilityResponse{Slots: slots})
}
