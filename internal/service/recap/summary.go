package recap

import (
	"fmt"
	"math"
	"time"

	"github.com/annur-digital/rekap-absensi-go/internal/domain/recap"
)

// buildSummary tallies the whole evaluated grid. Day-off outcomes are
// excluded from every denominator.
func buildSummary(rows []recap.RecapRow, dates []string, startDate, endDate string) recap.SummaryStats {
	var workingDays, present, onTime, late, absent int

	for _, row := range rows {
		for _, date := range dates {
			ev := row.DailyEvaluations[date]
			if ev.Text == "L" {
				continue
			}
			workingDays++
			switch {
			case ev.Text == "H":
				present++
				if ev.Color == recap.ColorOnTime {
					onTime++
				} else if ev.Color == recap.ColorLate {
					late++
				}
			case ev.Text == "-":
				absent++
			}
		}
	}

	attendancePercent := percentOf(present, workingDays)

	return recap.SummaryStats{
		Predikat:          gradeFor(attendancePercent),
		Period:            formatPeriod(startDate, endDate),
		TotalEmployees:    len(rows),
		TotalWorkingDays:  workingDays,
		TotalPresent:      present,
		TotalOnTime:       onTime,
		TotalLate:         late,
		TotalAbsent:       absent,
		AttendancePercent: attendancePercent,
		OnTimePercent:     percentOf(onTime, workingDays),
		LatePercent:       percentOf(late, workingDays),
		AbsentPercent:     percentOf(absent, workingDays),
	}
}

// gradeFor maps the attendance percentage onto the six ordered grade
// bands, inclusive at each lower edge.
func gradeFor(attendancePercent int) string {
	switch {
	case attendancePercent >= 96:
		return recap.GradeUnggul
	case attendancePercent >= 91:
		return recap.GradeBaikSekali
	case attendancePercent >= 86:
		return recap.GradeBaik
	case attendancePercent >= 81:
		return recap.GradeCukup
	case attendancePercent >= 76:
		return recap.GradeBuruk
	default:
		return recap.GradeBurukSekali
	}
}

func percentOf(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// formatPeriod renders the range in the d/m/yyyy form operators read;
// day and month stay unpadded, as the id-ID locale prints them.
func formatPeriod(startDate, endDate string) string {
	return formatDateID(startDate) + " - " + formatDateID(endDate)
}

func formatDateID(dateStr string) string {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return fmt.Sprintf("%d/%d/%d", d.Day(), int(d.Month()), d.Year())
}
