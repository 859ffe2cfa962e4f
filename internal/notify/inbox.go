package notify

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

// InboxLimit caps how many notifications a listing returns.
const InboxLimit = 30

// RecipientFor maps a caller to the inbox it reads. Staff read the employee
// inbox, clients the user inbox.
func RecipientFor(c domain.Caller) domain.Recipient {
	if c.Capability.IsStaff() {
		return domain.Recipient{Kind: domain.RecipientEmployee, ID: c.ID}
	}
	return domain.Recipient{Kind: domain.RecipientClient, ID: c.ID}
}

type Inbox struct {
	store Store
}

func NewInbox(store Store) *Inbox {
	return &Inbox{store: store}
}

func (i *Inbox) List(ctx context.Context, caller domain.Caller) ([]models.Notification, error) {
	list, err := i.store.ListNotifications(ctx, RecipientFor(caller), InboxLimit)
	if err != nil {
		return nil, httperr.Internal("failed_to_list_notifications", err)
	}
	return list, nil
}

func (i *Inbox) MarkAllRead(ctx context.Context, caller domain.Caller) (int64, error) {
	n, err := i.store.MarkAllRead(ctx, RecipientFor(caller))
	if err != nil {
		return 0, httperr.Internal("failed_to_update_notifications", err)
	}
	return n, nil
}

func (i *Inbox) MarkRead(ctx context.Context, caller domain.Caller, id uint) (*models.Notification, error) {
	n, err := i.store.GetNotification(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFound("notification_not_found", "Notificação não encontrada.")
		}
		return nil, httperr.Internal("failed_to_update_notifications", err)
	}

	if !Owns(RecipientFor(caller), n) {
		return nil, httperr.Forbidden("not_owner", "Esta notificação não é sua.")
	}

	if n.IsRead {
		return n, nil
	}

	if err := i.store.MarkRead(ctx, id); err != nil {
		return nil, httperr.Internal("failed_to_update_notifications", err)
	}
	n.IsRead = true
	return n, nil
}
