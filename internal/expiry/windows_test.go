package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindows(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatal(err)
	}
	now := time.Date(2026, 3, 15, 14, 30, 45, 0, loc)

	oneMonth, eightMonths := Windows(now)

	today := time.Date(2026, 3, 15, 0, 0, 0, 0, loc)
	assert.Equal(t, today, oneMonth.From, "one month window starts at local midnight")
	assert.Equal(t, today.AddDate(0, 0, 30), oneMonth.To)

	assert.Equal(t, today.AddDate(0, 0, 30), eightMonths.From, "day 30 belongs to both windows")
	assert.Equal(t, today.AddDate(0, 0, 240), eightMonths.To)
}

func TestWindowsSharedBoundary(t *testing.T) {
	now := time.Date(2026, 1, 1, 23, 59, 59, 0, time.UTC)

	oneMonth, eightMonths := Windows(now)

	assert.Equal(t, oneMonth.To, eightMonths.From)
}

func TestFormatDateJa(t *testing.T) {
	d := time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026/1/9", formatDateJa(d), "no zero padding")

	d = time.Date(2026, 11, 25, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026/11/25", formatDateJa(d))
}
