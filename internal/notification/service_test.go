package notification

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	byID       map[uuid.UUID]*Notification
	marked     []uuid.UUID
	markedAll  []uuid.UUID
	listLimit  int
	listOffset int
}

func (f *fakeStore) GetByID(_ context.Context, id uuid.UUID) (*Notification, error) {
	return f.byID[id], nil
}

func (f *fakeStore) ListByRecipient(_ context.Context, _ uuid.UUID, _ bool, limit, offset int) ([]*Notification, error) {
	f.listLimit = limit
	f.listOffset = offset
	return nil, nil
}

func (f *fakeStore) UnreadCount(_ context.Context, _ uuid.UUID) (int, error) {
	return 3, nil
}

func (f *fakeStore) MarkRead(_ context.Context, id uuid.UUID) error {
	f.marked = append(f.marked, id)
	return nil
}

func (f *fakeStore) MarkAllRead(_ context.Context, userID uuid.UUID) (int64, error) {
	f.markedAll = append(f.markedAll, userID)
	return 2, nil
}

func TestMarkReadByRecipient(t *testing.T) {
	recipient := uuid.New()
	n := &Notification{ID: uuid.New(), UserID: recipient}
	store := &fakeStore{byID: map[uuid.UUID]*Notification{n.ID: n}}
	s := NewService(store)

	require.NoError(t, s.MarkRead(context.Background(), recipient, n.ID))
	assert.Equal(t, []uuid.UUID{n.ID}, store.marked)
}

func TestMarkReadByOtherUserForbidden(t *testing.T) {
	n := &Notification{ID: uuid.New(), UserID: uuid.New()}
	store := &fakeStore{byID: map[uuid.UUID]*Notification{n.ID: n}}
	s := NewService(store)

	err := s.MarkRead(context.Background(), uuid.New(), n.ID)
	assert.ErrorIs(t, err, ErrNotRecipient)
	assert.Empty(t, store.marked)
}

func TestMarkReadUnknownNotification(t *testing.T) {
	s := NewService(&fakeStore{byID: map[uuid.UUID]*Notification{}})

	err := s.MarkRead(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestListForUserClampsPagination(t *testing.T) {
	store := &fakeStore{}
	s := NewService(store)

	_, err := s.ListForUser(context.Background(), uuid.New(), false, 0, -5)
	require.NoError(t, err)
	assert.Equal(t, 50, store.listLimit)
	assert.Equal(t, 0, store.listOffset)

	_, err = s.ListForUser(context.Background(), uuid.New(), false, 500, 10)
	require.NoError(t, err)
	assert.Equal(t, 50, store.listLimit, "oversized page size falls back to default")
	assert.Equal(t, 10, store.listOffset)
}
