package notify

import (
	"context"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

// Store persists notifications and serves a recipient's inbox.
type Store interface {
	SaveNotification(ctx context.Context, n *models.Notification) error

	ListNotifications(
		ctx context.Context,
		r domain.Recipient,
		limit int,
	) ([]models.Notification, error)

	GetNotification(ctx context.Context, id uint) (*models.Notification, error)

	MarkRead(ctx context.Context, id uint) error
	MarkAllRead(ctx context.Context, r domain.Recipient) (int64, error)
}

// StoreSink writes every notification to the Store.
type StoreSink struct {
	store Store
}

func NewStoreSink(store Store) *StoreSink {
	return &StoreSink{store: store}
}

func (s *StoreSink) Name() string { return "store" }

func (s *StoreSink) Deliver(ctx context.Context, n domain.Notification) error {
	return s.store.SaveNotification(ctx, ToModel(n))
}

func ToModel(n domain.Notification) *models.Notification {
	m := &models.Notification{
		Message: n.Message,
		Link:    n.Link,
	}

	id := n.Recipient.ID
	switch n.Recipient.Kind {
	case domain.RecipientClient:
		m.UserID = &id
	case domain.RecipientEmployee:
		m.EmployeeID = &id
	}

	return m
}

// Owns reports whether the notification is addressed to r.
func Owns(r domain.Recipient, n *models.Notification) bool {
	switch r.Kind {
	case domain.RecipientClient:
		return n.UserID != nil && *n.UserID == r.ID
	case domain.RecipientEmployee:
		return n.EmployeeID != nil && *n.EmployeeID == r.ID
	}
	return false
}
