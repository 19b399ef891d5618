package handlers

import (
	"time"

	"github.com/saobentodouna/rg-agendamento/internal/timezone"
)

func parseDate(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(tz),
	)
}

func todayIn(tz string) time.Time {
	now := timezone.NowIn(tz)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
