package utils

import (
	"beauty-clinic-service/internal/pkg/constvars"
	"time"
)

// CalendarWindow returns days consecutive ISO dates starting at the UTC calendar day of now.
func CalendarWindow(now time.Time, days int) []string {
	start := now.UTC()
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	dates := make([]string, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, start.AddDate(0, 0, i).Format(constvars.DateLayout))
	}
	return dates
}
