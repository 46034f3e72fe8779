package notification

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotRecipient         = errors.New("notification belongs to another user")
)

// store is the repository surface the service needs. Narrowed to an
// interface so tests can fake it.
type store interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Notification, error)
	ListByRecipient(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

// Service handles notification business logic
type Service struct {
	repo store
}

// NewService creates a new notification service
func NewService(repo store) *Service {
	return &Service{repo: repo}
}

// ListForUser retrieves a page of the user's notifications
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByRecipient(ctx, userID, unreadOnly, limit, offset)
}

// UnreadCount returns the number of unread notifications for a user
func (s *Service) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.UnreadCount(ctx, userID)
}

// MarkRead marks one notification as read. Only the recipient may do so.
func (s *Service) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return ErrNotificationNotFound
	}
	if n.UserID != userID {
		return ErrNotRecipient
	}
	return s.repo.MarkRead(ctx, id)
}

// MarkAllRead marks every unread notification of the user as read and
// returns how many were updated.
func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.MarkAllRead(ctx, userID)
}
