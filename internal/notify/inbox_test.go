package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type memoryStore struct {
	items  []*models.Notification
	nextID uint
}

func (m *memoryStore) SaveNotification(_ context.Context, n *models.Notification) error {
	m.nextID++
	n.ID = m.nextID
	m.items = append(m.items, n)
	return nil
}

func (m *memoryStore) ListNotifications(_ context.Context, r domain.Recipient, limit int) ([]models.Notification, error) {
	var out []models.Notification
	for i := len(m.items) - 1; i >= 0 && len(out) < limit; i-- {
		if Owns(r, m.items[i]) {
			out = append(out, *m.items[i])
		}
	}
	return out, nil
}

func (m *memoryStore) GetNotification(_ context.Context, id uint) (*models.Notification, error) {
	for _, n := range m.items {
		if n.ID == id {
			cp := *n
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memoryStore) MarkRead(_ context.Context, id uint) error {
	for _, n := range m.items {
		if n.ID == id {
			n.IsRead = true
		}
	}
	return nil
}

func (m *memoryStore) MarkAllRead(_ context.Context, r domain.Recipient) (int64, error) {
	var count int64
	for _, n := range m.items {
		if Owns(r, n) && !n.IsRead {
			n.IsRead = true
			count++
		}
	}
	return count, nil
}

var (
	client   = domain.Caller{ID: 5, Capability: domain.CapabilityClient}
	employee = domain.Caller{ID: 5, Capability: domain.CapabilityEmployee}
)

func seed(t *testing.T, store *memoryStore, notes ...domain.Notification) {
	t.Helper()
	sink := NewStoreSink(store)
	for _, n := range notes {
		require.NoError(t, sink.Deliver(context.Background(), n))
	}
}

func TestInbox_SeparatesClientAndEmployeeInboxes(t *testing.T) {
	store := &memoryStore{}
	seed(t, store,
		domain.Notification{Recipient: domain.Recipient{Kind: domain.RecipientClient, ID: 5}, Message: "c1"},
		domain.Notification{Recipient: domain.Recipient{Kind: domain.RecipientEmployee, ID: 5}, Message: "e1"},
		domain.Notification{Recipient: domain.Recipient{Kind: domain.RecipientClient, ID: 5}, Message: "c2"},
	)
	inbox := NewInbox(store)

	list, err := inbox.List(context.Background(), client)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c2", list[0].Message, "newest first")

	list, err = inbox.List(context.Background(), employee)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "e1", list[0].Message)
}

func TestInbox_ListIsCapped(t *testing.T) {
	store := &memoryStore{}
	for i := 0; i < InboxLimit+5; i++ {
		seed(t, store, domain.Notification{Recipient: domain.Recipient{Kind: domain.RecipientClient, ID: 5}, Message: "x"})
	}

	list, err := NewInbox(store).List(context.Background(), client)

	require.NoError(t, err)
	assert.Len(t, list, InboxLimit)
}

func TestInbox_MarkRead(t *testing.T) {
	store := &memoryStore{}
	seed(t, store,
		domain.Notification{Recipient: domain.Recipient{Kind: domain.RecipientClient, ID: 5}, Message: "mine"},
		domain.Notification{Recipient: domain.Recipient{Kind: domain.RecipientClient, ID: 6}, Message: "theirs"},
	)
	inbox := NewInbox(store)

	n, err := inbox.MarkRead(context.Background(), client, 1)
	require.NoError(t, err)
	assert.True(t, n.IsRead)
	assert.True(t, store.items[0].IsRead)

	_, err = inbox.MarkRead(context.Background(), client, 2)
	assert.Equal(t, httperr.KindForbidden, httperr.KindOf(err))
	assert.False(t, store.items[1].IsRead)

	_, err = inbox.MarkRead(context.Background(), employee, 1)
	assert.Equal(t, httperr.KindForbidden, httperr.KindOf(err), "same id, different inbox")

	_, err = inbox.MarkRead(context.Background(), client, 99)
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}

func TestInbox_MarkAllRead(t *testing.T) {
	store := &memoryStore{}
	seed(t, store,
		domain.Notification{Recipient: domain.Recipient{Kind: domain.RecipientClient, ID: 5}, Message: "a"},
		domain.Notification{Recipient: domain.Recipient{Kind: domain.RecipientClient, ID: 5}, Message: "b"},
		domain.Notification{Recipient: domain.Recipient{Kind: domain.RecipientEmployee, ID: 5}, Message: "c"},
	)

	count, err := NewInbox(store).MarkAllRead(context.Background(), client)

	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	assert.False(t, store.items[2].IsRead)
}

func TestRecipientFor(t *testing.T) {
	assert.Equal(t, domain.RecipientClient, RecipientFor(client).Kind)
	for _, c := range []domain.Capability{
		domain.CapabilityEmployee, domain.CapabilityAdministrator, domain.CapabilitySuperuser,
	} {
		assert.Equal(t, domain.RecipientEmployee, RecipientFor(domain.Caller{ID: 1, Capability: c}).Kind)
	}
}
