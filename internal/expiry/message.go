package expiry

import (
	"fmt"
	"time"

	"github.com/mfurukawa/traineehub/internal/trainee"
)

// Notification titles shown in the feed.
const (
	titleOneMonth    = "在留期限が1ヶ月以内です"
	titleEightMonths = "在留期限が8ヶ月前（初級試験対象者）"
)

// formatDateJa renders a date in ja-JP short form (2026/1/9, no zero padding).
func formatDateJa(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Year(), int(t.Month()), t.Day())
}

func oneMonthMessage(t *trainee.Trainee) string {
	return fmt.Sprintf("%s %s（%s）の在留期限が%sに迫っています。",
		t.LastName, t.FirstName, t.Code, formatDateJa(*t.VisaExpiryDate))
}

func eightMonthsMessage(t *trainee.Trainee) string {
	return fmt.Sprintf("%s %s（%s）の在留期限が%sです。初級試験の対象者です。",
		t.LastName, t.FirstName, t.Code, formatDateJa(*t.VisaExpiryDate))
}
