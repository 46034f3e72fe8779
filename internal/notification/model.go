package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification types
const (
	TypeVisaExpiry1Month  = "VISA_EXPIRY_1MONTH"
	TypeVisaExpiry8Months = "VISA_EXPIRY_8MONTHS"
	TypeSystem            = "SYSTEM"
)

// Notification priorities
const (
	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
	PriorityLow    = "LOW"
)

// Notification is an in-app message delivered to a single user.
// TraineeRef points at the trainee the notification concerns, when any;
// together with UserID and Type it makes visa expiry alerts unique.
type Notification struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	Type       string     `json:"type"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	Priority   string     `json:"priority"`
	TraineeRef *uuid.UUID `json:"trainee_ref,omitempty"`
	IsRead     bool       `json:"is_read"`
	CreatedAt  time.Time  `json:"created_at"`
}

// NotifiedPair identifies a (recipient, trainee) combination that already
// has a notification of a given type.
type NotifiedPair struct {
	UserID     uuid.UUID
	TraineeRef uuid.UUID
}
