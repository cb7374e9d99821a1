// Package daterange expands inclusive date ranges and resolves the
// Indonesian weekday key used by schedule sheets.
package daterange

import (
	"fmt"
	"time"
)

const layout = "2006-01-02"

// Sunday first, matching time.Weekday ordering.
var dayNames = [7]string{"minggu", "senin", "selasa", "rabu", "kamis", "jumat", "sabtu"}

// Expand returns every ISO date from start to end inclusive, in order.
// An end before start yields an empty sequence, not an error.
func Expand(startDate, endDate string) ([]string, error) {
	start, err := time.Parse(layout, startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse(layout, endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(layout))
	}
	return dates, nil
}

// DayName resolves an ISO date to its lowercase Indonesian weekday name
// (minggu, senin, selasa, rabu, kamis, jumat, sabtu).
func DayName(dateStr string) (string, error) {
	d, err := time.Parse(layout, dateStr)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return dayNames[int(d.Weekday())], nil
}
