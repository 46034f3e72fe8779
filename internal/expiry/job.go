package expiry

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mfurukawa/traineehub/internal/notification"
	"github.com/mfurukawa/traineehub/internal/trainee"
)

// recipientRoles are the roles that receive visa expiry alerts.
var recipientRoles = []string{"HR", "ADMIN", "DEPARTMENT"}

// TraineeSource provides trainees whose visa expires inside a window.
type TraineeSource interface {
	ListActiveByVisaExpiryBetween(ctx context.Context, from, to time.Time) ([]*trainee.Trainee, error)
}

// RecipientSource provides the users who should receive expiry alerts.
type RecipientSource interface {
	RecipientIDsByRoles(ctx context.Context, roles []string) ([]uuid.UUID, error)
}

// NotificationSink persists the produced alerts and exposes which
// (recipient, trainee) pairs were already alerted for a given type.
type NotificationSink interface {
	NotifiedPairs(ctx context.Context, ntype string) ([]notification.NotifiedPair, error)
	BulkCreate(ctx context.Context, notifications []*notification.Notification) (int64, error)
}

// Report summarizes one job run. The JSON keys are part of the endpoint
// contract consumed by the cron caller.
type Report struct {
	Success                  bool `json:"success"`
	NotificationsCreated     int  `json:"notificationsCreated"`
	OneMonthNotifications    int  `json:"oneMonthNotifications"`
	EightMonthsNotifications int  `json:"eightMonthsNotifications"`
	Trainees1Month           int  `json:"trainees1Month"`
	Trainees8Months          int  `json:"trainees8Months"`
}

// Job builds visa expiry alerts for every trainee whose expiry date falls in
// one of the two alert windows, fanned out to every recipient role user.
type Job struct {
	trainees   TraineeSource
	recipients RecipientSource
	sink       NotificationSink
	logger     *zap.Logger
}

// NewJob creates a new expiry job
func NewJob(trainees TraineeSource, recipients RecipientSource, sink NotificationSink, logger *zap.Logger) *Job {
	return &Job{trainees: trainees, recipients: recipients, sink: sink, logger: logger}
}

// Run executes one pass of the expiry check. A failed trainee query degrades
// that window to empty and the run continues; a failed recipient query or
// insert aborts the run.
func (j *Job) Run(ctx context.Context, now time.Time) (*Report, error) {
	oneMonthWin, eightMonthsWin := Windows(now)

	trainees1Month, err := j.trainees.ListActiveByVisaExpiryBetween(ctx, oneMonthWin.From, oneMonthWin.To)
	if err != nil {
		j.logger.Error("failed to fetch trainees for 1 month window", zap.Error(err))
		trainees1Month = nil
	}

	trainees8Months, err := j.trainees.ListActiveByVisaExpiryBetween(ctx, eightMonthsWin.From, eightMonthsWin.To)
	if err != nil {
		j.logger.Error("failed to fetch trainees for 8 months window", zap.Error(err))
		trainees8Months = nil
	}

	recipientIDs, err := j.recipients.RecipientIDsByRoles(ctx, recipientRoles)
	if err != nil {
		j.logger.Error("failed to fetch alert recipients", zap.Error(err))
		return nil, err
	}

	oneMonthBatch := j.buildBatch(ctx, notification.TypeVisaExpiry1Month, notification.PriorityHigh,
		titleOneMonth, oneMonthMessage, trainees1Month, recipientIDs)
	eightMonthsBatch := j.buildBatch(ctx, notification.TypeVisaExpiry8Months, notification.PriorityMedium,
		titleEightMonths, eightMonthsMessage, trainees8Months, recipientIDs)

	batch := append(oneMonthBatch, eightMonthsBatch...)

	if len(batch) > 0 {
		if _, err := j.sink.BulkCreate(ctx, batch); err != nil {
			j.logger.Error("failed to insert expiry notifications", zap.Error(err))
			return nil, err
		}
	}

	report := &Report{
		Success:                  true,
		NotificationsCreated:     len(batch),
		OneMonthNotifications:    len(oneMonthBatch),
		EightMonthsNotifications: len(eightMonthsBatch),
		Trainees1Month:           len(trainees1Month),
		Trainees8Months:          len(trainees8Months),
	}

	j.logger.Info("visa expiry check completed",
		zap.Int("notifications_created", report.NotificationsCreated),
		zap.Int("trainees_1month", report.Trainees1Month),
		zap.Int("trainees_8months", report.Trainees8Months),
	)

	return report, nil
}

// buildBatch fans trainees out to recipients, skipping pairs that already
// received an alert of this type. A failed pre-check query only disables the
// skip; the unique index absorbs any duplicates at insert time.
func (j *Job) buildBatch(ctx context.Context, ntype, priority, title string,
	message func(*trainee.Trainee) string, trainees []*trainee.Trainee, recipientIDs []uuid.UUID) []*notification.Notification {

	if len(trainees) == 0 || len(recipientIDs) == 0 {
		return nil
	}

	notified := make(map[notification.NotifiedPair]struct{})
	pairs, err := j.sink.NotifiedPairs(ctx, ntype)
	if err != nil {
		j.logger.Error("failed to query notified pairs", zap.String("type", ntype), zap.Error(err))
	} else {
		for _, p := range pairs {
			notified[p] = struct{}{}
		}
	}

	var batch []*notification.Notification
	for _, t := range trainees {
		if t.VisaExpiryDate == nil {
			continue
		}
		traineeRef := t.ID
		for _, userID := range recipientIDs {
			if _, seen := notified[notification.NotifiedPair{UserID: userID, TraineeRef: traineeRef}]; seen {
				continue
			}
			batch = append(batch, &notification.Notification{
				UserID:     userID,
				Type:       ntype,
				Title:      title,
				Message:    message(t),
				Priority:   priority,
				TraineeRef: &traineeRef,
			})
		}
	}

	return batch
}
