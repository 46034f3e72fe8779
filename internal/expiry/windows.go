package expiry

import "time"

// Window is an inclusive date range of visa expiry dates to alert on.
type Window struct {
	From time.Time
	To   time.Time
}

// Windows computes the two alert windows relative to now, anchored at local
// midnight. The one month window covers today through day 30; the eight
// month window covers day 30 through day 240. Day 30 sits in both windows.
func Windows(now time.Time) (oneMonth, eightMonths Window) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day30 := today.AddDate(0, 0, 30)
	day240 := today.AddDate(0, 0, 240)

	oneMonth = Window{From: today, To: day30}
	eightMonths = Window{From: day30, To: day240}
	return oneMonth, eightMonths
}
