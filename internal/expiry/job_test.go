package expiry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mfurukawa/traineehub/internal/notification"
	"github.com/mfurukawa/traineehub/internal/trainee"
)

type fakeTraineeSource struct {
	oneMonth    []*trainee.Trainee
	eightMonths []*trainee.Trainee
	oneMonthErr error
	calls       []Window
}

func (f *fakeTraineeSource) ListActiveByVisaExpiryBetween(_ context.Context, from, to time.Time) ([]*trainee.Trainee, error) {
	f.calls = append(f.calls, Window{From: from, To: to})
	// The first call is the one month window, the second the eight month one.
	if len(f.calls) == 1 {
		return f.oneMonth, f.oneMonthErr
	}
	return f.eightMonths, nil
}

type fakeRecipientSource struct {
	ids       []uuid.UUID
	err       error
	rolesSeen []string
}

func (f *fakeRecipientSource) RecipientIDsByRoles(_ context.Context, roles []string) ([]uuid.UUID, error) {
	f.rolesSeen = roles
	return f.ids, f.err
}

type fakeSink struct {
	pairs     []notification.NotifiedPair
	pairsErr  error
	insertErr error
	inserted  []*notification.Notification
	calls     int
}

func (f *fakeSink) NotifiedPairs(_ context.Context, _ string) ([]notification.NotifiedPair, error) {
	return f.pairs, f.pairsErr
}

func (f *fakeSink) BulkCreate(_ context.Context, batch []*notification.Notification) (int64, error) {
	f.calls++
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.inserted = append(f.inserted, batch...)
	return int64(len(batch)), nil
}

func makeTrainee(code string, expiry time.Time) *trainee.Trainee {
	return &trainee.Trainee{
		ID:             uuid.New(),
		Code:           code,
		FirstName:      "タオ",
		LastName:       "グエン",
		VisaExpiryDate: &expiry,
	}
}

func TestJobRunFansOutToAllRecipients(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	expiry := now.AddDate(0, 0, 10)

	trainees := &fakeTraineeSource{
		oneMonth: []*trainee.Trainee{
			makeTrainee("T-001", expiry),
			makeTrainee("T-002", expiry),
			makeTrainee("T-003", expiry),
		},
	}
	recipients := &fakeRecipientSource{ids: []uuid.UUID{uuid.New(), uuid.New()}}
	sink := &fakeSink{}

	job := NewJob(trainees, recipients, sink, zap.NewNop())
	report, err := job.Run(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 6, report.NotificationsCreated, "3 trainees x 2 recipients")
	assert.Equal(t, 6, report.OneMonthNotifications)
	assert.Equal(t, 0, report.EightMonthsNotifications)
	assert.Equal(t, 3, report.Trainees1Month)
	assert.Len(t, sink.inserted, 6)
	assert.Equal(t, []string{"HR", "ADMIN", "DEPARTMENT"}, recipients.rolesSeen)
}

func TestJobRunQueriesBothWindows(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	trainees := &fakeTraineeSource{}
	recipients := &fakeRecipientSource{ids: []uuid.UUID{uuid.New()}}
	sink := &fakeSink{}

	job := NewJob(trainees, recipients, sink, zap.NewNop())
	_, err := job.Run(context.Background(), now)
	require.NoError(t, err)

	require.Len(t, trainees.calls, 2)
	today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, Window{From: today, To: today.AddDate(0, 0, 30)}, trainees.calls[0])
	assert.Equal(t, Window{From: today.AddDate(0, 0, 30), To: today.AddDate(0, 0, 240)}, trainees.calls[1])
}

func TestJobRunBoundaryTraineeAlertsTwice(t *testing.T) {
	// A trainee whose visa expires exactly on day 30 is returned by both
	// window queries and therefore produces one alert of each type.
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	boundary := makeTrainee("T-030", time.Date(2026, 4, 14, 0, 0, 0, 0, time.UTC))

	trainees := &fakeTraineeSource{
		oneMonth:    []*trainee.Trainee{boundary},
		eightMonths: []*trainee.Trainee{boundary},
	}
	recipients := &fakeRecipientSource{ids: []uuid.UUID{uuid.New()}}
	sink := &fakeSink{}

	job := NewJob(trainees, recipients, sink, zap.NewNop())
	report, err := job.Run(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 2, report.NotificationsCreated)
	require.Len(t, sink.inserted, 2)
	assert.Equal(t, notification.TypeVisaExpiry1Month, sink.inserted[0].Type)
	assert.Equal(t, notification.TypeVisaExpiry8Months, sink.inserted[1].Type)
}

func TestJobRunSkipsAlreadyNotifiedPairs(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	tr := makeTrainee("T-001", now.AddDate(0, 0, 5))
	notifiedUser := uuid.New()
	freshUser := uuid.New()

	trainees := &fakeTraineeSource{oneMonth: []*trainee.Trainee{tr}}
	recipients := &fakeRecipientSource{ids: []uuid.UUID{notifiedUser, freshUser}}
	sink := &fakeSink{
		pairs: []notification.NotifiedPair{{UserID: notifiedUser, TraineeRef: tr.ID}},
	}

	job := NewJob(trainees, recipients, sink, zap.NewNop())
	report, err := job.Run(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 1, report.NotificationsCreated)
	require.Len(t, sink.inserted, 1)
	assert.Equal(t, freshUser, sink.inserted[0].UserID)
}

func TestJobRunSecondPassCreatesNothing(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	tr := makeTrainee("T-001", now.AddDate(0, 0, 5))
	recipient := uuid.New()

	trainees := &fakeTraineeSource{oneMonth: []*trainee.Trainee{tr}}
	recipients := &fakeRecipientSource{ids: []uuid.UUID{recipient}}
	sink := &fakeSink{
		pairs: []notification.NotifiedPair{{UserID: recipient, TraineeRef: tr.ID}},
	}

	job := NewJob(trainees, recipients, sink, zap.NewNop())
	report, err := job.Run(context.Background(), now)
	require.NoError(t, err)

	assert.True(t, report.Success)
	assert.Equal(t, 0, report.NotificationsCreated)
	assert.Equal(t, 0, sink.calls, "empty batch skips the insert")
}

func TestJobRunEmptyWindowsIsNoOp(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	trainees := &fakeTraineeSource{}
	recipients := &fakeRecipientSource{ids: []uuid.UUID{uuid.New()}}
	sink := &fakeSink{}

	job := NewJob(trainees, recipients, sink, zap.NewNop())
	report, err := job.Run(context.Background(), now)
	require.NoError(t, err)

	assert.True(t, report.Success)
	assert.Equal(t, 0, report.NotificationsCreated)
	assert.Equal(t, 0, report.Trainees1Month)
	assert.Equal(t, 0, report.Trainees8Months)
	assert.Equal(t, 0, sink.calls)
}

func TestJobRunWindowQueryFailureDegrades(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	tr := makeTrainee("T-008", now.AddDate(0, 0, 100))

	trainees := &fakeTraineeSource{
		oneMonthErr: errors.New("connection reset"),
		eightMonths: []*trainee.Trainee{tr},
	}
	recipients := &fakeRecipientSource{ids: []uuid.UUID{uuid.New()}}
	sink := &fakeSink{}

	job := NewJob(trainees, recipients, sink, zap.NewNop())
	report, err := job.Run(context.Background(), now)
	require.NoError(t, err, "a failed window degrades to empty, the run continues")

	assert.Equal(t, 0, report.Trainees1Month)
	assert.Equal(t, 1, report.Trainees8Months)
	assert.Equal(t, 1, report.NotificationsCreated)
}

func TestJobRunRecipientQueryFailureAborts(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	trainees := &fakeTraineeSource{
		oneMonth: []*trainee.Trainee{makeTrainee("T-001", now.AddDate(0, 0, 5))},
	}
	recipients := &fakeRecipientSource{err: errors.New("permission denied")}
	sink := &fakeSink{}

	job := NewJob(trainees, recipients, sink, zap.NewNop())
	report, err := job.Run(context.Background(), now)

	assert.Error(t, err)
	assert.Nil(t, report)
	assert.Equal(t, 0, sink.calls)
}

func TestJobRunInsertFailureAborts(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	trainees := &fakeTraineeSource{
		oneMonth: []*trainee.Trainee{makeTrainee("T-001", now.AddDate(0, 0, 5))},
	}
	recipients := &fakeRecipientSource{ids: []uuid.UUID{uuid.New()}}
	sink := &fakeSink{insertErr: errors.New("deadlock detected")}

	job := NewJob(trainees, recipients, sink, zap.NewNop())
	report, err := job.Run(context.Background(), now)

	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestJobRunPairsQueryFailureStillInserts(t *testing.T) {
	// Losing the pre-check only disables the skip; the unique index catches
	// duplicates at insert time.
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	trainees := &fakeTraineeSource{
		oneMonth: []*trainee.Trainee{makeTrainee("T-001", now.AddDate(0, 0, 5))},
	}
	recipients := &fakeRecipientSource{ids: []uuid.UUID{uuid.New()}}
	sink := &fakeSink{pairsErr: errors.New("timeout")}

	job := NewJob(trainees, recipients, sink, zap.NewNop())
	report, err := job.Run(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 1, report.NotificationsCreated)
}

func TestJobRunSkipsTraineesWithoutExpiryDate(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	noDate := makeTrainee("T-009", now)
	noDate.VisaExpiryDate = nil

	trainees := &fakeTraineeSource{oneMonth: []*trainee.Trainee{noDate}}
	recipients := &fakeRecipientSource{ids: []uuid.UUID{uuid.New()}}
	sink := &fakeSink{}

	job := NewJob(trainees, recipients, sink, zap.NewNop())
	report, err := job.Run(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 0, report.NotificationsCreated)
}

func TestJobMessages(t *testing.T) {
	expiry := time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)
	tr := makeTrainee("T-001", expiry)

	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	trainees := &fakeTraineeSource{
		oneMonth:    []*trainee.Trainee{tr},
		eightMonths: []*trainee.Trainee{tr},
	}
	recipients := &fakeRecipientSource{ids: []uuid.UUID{uuid.New()}}
	sink := &fakeSink{}

	job := NewJob(trainees, recipients, sink, zap.NewNop())
	_, err := job.Run(context.Background(), now)
	require.NoError(t, err)

	require.Len(t, sink.inserted, 2)

	oneMonth := sink.inserted[0]
	assert.Equal(t, "在留期限が1ヶ月以内です", oneMonth.Title)
	assert.Equal(t, "グエン タオ（T-001）の在留期限が2026/4/5に迫っています。", oneMonth.Message)
	assert.Equal(t, notification.PriorityHigh, oneMonth.Priority)
	require.NotNil(t, oneMonth.TraineeRef)
	assert.Equal(t, tr.ID, *oneMonth.TraineeRef)

	eightMonths := sink.inserted[1]
	assert.Equal(t, "在留期限が8ヶ月前（初級試験対象者）", eightMonths.Title)
	assert.Equal(t, "グエン タオ（T-001）の在留期限が2026/4/5です。初級試験の対象者です。", eightMonths.Message)
	assert.Equal(t, notification.PriorityMedium, eightMonths.Priority)
}
