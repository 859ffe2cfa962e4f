package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/httpresp"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type inbox interface {
	List(ctx context.Context, caller domain.Caller) ([]models.Notification, error)
	MarkAllRead(ctx context.Context, caller domain.Caller) (int64, error)
	MarkRead(ctx context.Context, caller domain.Caller, id uint) (*models.Notification, error)
}

type NotificationHandler struct {
	inbox inbox
	log   *slog.Logger
}

func NewNotificationHandler(inbox inbox, log *slog.Logger) *NotificationHandler {
	return &NotificationHandler{inbox: inbox, log: log}
}

// GET /api/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	list, err := h.inbox.List(c.Request.Context(), caller)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, list)
}

// PATCH /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	n, err := h.inbox.MarkAllRead(c.Request.Context(), caller)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": n})
}

// PATCH /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	n, err := h.inbox.MarkRead(c.Request.Context(), caller, id)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, n)
}
