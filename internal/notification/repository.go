package notification

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Repository handles notification data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new notification repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const notificationColumns = `id, user_id, type, title, message, priority, trainee_ref, is_read, created_at`

func scanNotification(row interface{ Scan(...interface{}) error }) (*Notification, error) {
	n := &Notification{}
	err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.Type,
		&n.Title,
		&n.Message,
		&n.Priority,
		&n.TraineeRef,
		&n.IsRead,
		&n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// GetByID retrieves a notification by its ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`

	n, err := scanNotification(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

// ListByRecipient retrieves notifications for a user, newest first.
func (r *Repository) ListByRecipient(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE user_id = $1`
	if unreadOnly {
		query += ` AND is_read = false`
	}
	query += ` ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

// UnreadCount returns the number of unread notifications for a user
func (r *Repository) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false`

	var count int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

// MarkRead marks a single notification as read
func (r *Repository) MarkRead(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE notifications SET is_read = true WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}

// MarkAllRead marks every unread notification of a user as read
func (r *Repository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `UPDATE notifications SET is_read = true WHERE user_id = $1 AND is_read = false`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return result.RowsAffected()
}

// NotifiedPairs returns every (user, trainee) combination that already has
// a notification of the given type. The expiry job uses this as a set-based
// pre-check so it does not rebuild alerts that were already delivered.
func (r *Repository) NotifiedPairs(ctx context.Context, ntype string) ([]NotifiedPair, error) {
	query := `
		SELECT user_id, trainee_ref
		FROM notifications
		WHERE type = $1 AND trainee_ref IS NOT NULL
	`

	rows, err := r.db.QueryContext(ctx, query, ntype)
	if err != nil {
		return nil, fmt.Errorf("failed to query notified pairs: %w", err)
	}
	defer rows.Close()

	var pairs []NotifiedPair
	for rows.Next() {
		var p NotifiedPair
		if err := rows.Scan(&p.UserID, &p.TraineeRef); err != nil {
			return nil, fmt.Errorf("failed to scan notified pair: %w", err)
		}
		pairs = append(pairs, p)
	}

	return pairs, nil
}

// BulkCreate inserts notifications in a single statement. Rows that collide
// with the (user_id, type, trainee_ref) unique index are silently skipped, so
// concurrent job runs cannot produce duplicate alerts. Returns the number of
// rows actually inserted.
func (r *Repository) BulkCreate(ctx context.Context, notifications []*Notification) (int64, error) {
	if len(notifications) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO notifications (user_id, type, title, message, priority, trainee_ref) VALUES `)

	args := make([]interface{}, 0, len(notifications)*6)
	for i, n := range notifications {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 6
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6)
		args = append(args, n.UserID, n.Type, n.Title, n.Message, n.Priority, n.TraineeRef)
	}

	sb.WriteString(` ON CONFLICT (user_id, type, trainee_ref) WHERE trainee_ref IS NOT NULL DO NOTHING`)

	result, err := r.db.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk insert notifications: %w", err)
	}

	return result.RowsAffected()
}
