// Package recap joins attendance against schedule over a date range and
// reduces the evaluated grid into the recap table, the organization
// summary, and the discipline rankings.
package recap

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/annur-digital/rekap-absensi-go/internal/domain/employee"
	"github.com/annur-digital/rekap-absensi-go/internal/domain/recap"
	"github.com/annur-digital/rekap-absensi-go/internal/domain/schedule"
	"github.com/annur-digital/rekap-absensi-go/internal/pkg/daterange"
	"github.com/annur-digital/rekap-absensi-go/internal/pkg/timecodec"
)

type RecapServiceImpl struct {
	rankingTopN int
}

func NewRecapService(rankingTopN int) recap.RecapService {
	return &RecapServiceImpl{rankingTopN: rankingTopN}
}

// Generate implements recap.RecapService. Each invocation works on its
// own snapshot of the request inputs and builds a fresh report; nothing
// is carried over between calls.
func (s *RecapServiceImpl) Generate(ctx context.Context, req recap.GenerateRequest) (recap.Report, error) {
	if err := req.Validate(); err != nil {
		return recap.Report{}, err
	}
	if len(req.Employees) == 0 {
		return recap.Report{}, recap.ErrNoAttendanceData
	}

	dates, err := daterange.Expand(req.StartDate, req.EndDate)
	if err != nil {
		return recap.Report{}, fmt.Errorf("failed to expand date range: %w", err)
	}

	scheduleByID := make(map[string]schedule.WeeklySchedule, len(req.Schedules))
	for _, sch := range req.Schedules {
		scheduleByID[sch.EmployeeID] = sch
	}

	rows := make([]recap.RecapRow, 0, len(req.Employees))
	for _, emp := range req.Employees {
		row, err := buildRow(emp, scheduleByID, dates)
		if err != nil {
			return recap.Report{}, err
		}
		rows = append(rows, row)
	}

	// Stable sort by identifier, then assign the 1-based display rank.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].EmployeeID < rows[j].EmployeeID
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}

	report := recap.Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().Format(time.RFC3339),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Dates:       dates,
		Rows:        rows,
		Summary:     buildSummary(rows, dates, req.StartDate, req.EndDate),
		Rankings:    buildRankings(rows, dates, scheduleByID, s.rankingTopN),
	}

	slog.Info("generated attendance recap",
		"report_id", report.ID,
		"employees", len(rows),
		"dates", len(dates),
		"attendance_percent", report.Summary.AttendancePercent,
		"predikat", report.Summary.Predikat,
	)

	return report, nil
}

// buildRow projects one employee's scan records onto the date axis and
// evaluates every date. The evaluation grid is never sparse: every
// (employee, date) pair gets exactly one outcome.
func buildRow(
	emp employee.Employee,
	schedules map[string]schedule.WeeklySchedule,
	dates []string,
) (recap.RecapRow, error) {
	records := recordIndex(emp)
	sched, hasSchedule := schedules[emp.ID]

	row := recap.RecapRow{
		EmployeeID:       emp.ID,
		Name:             emp.Name,
		Position:         emp.Position,
		DailyRecords:     make(map[string]recap.DayRecord, len(dates)),
		DailyEvaluations: make(map[string]recap.DailyEvaluation, len(dates)),
	}

	for _, date := range dates {
		rec, ok := records[date]
		if !ok {
			rec = recap.DayRecord{In: timecodec.Absent, Out: timecodec.Absent}
		}
		row.DailyRecords[date] = rec

		if hasSchedule {
			day, err := daterange.DayName(date)
			if err != nil {
				return recap.RecapRow{}, fmt.Errorf("failed to resolve weekday: %w", err)
			}
			row.DailyEvaluations[date] = evaluateDay(rec.In, sched.StartFor(day))
		} else {
			row.DailyEvaluations[date] = evaluateDayWithoutSchedule(rec.In)
		}
	}

	return row, nil
}

// recordIndex keys an employee's scan records by ISO date. The first
// record wins when the export repeats a date.
func recordIndex(emp employee.Employee) map[string]recap.DayRecord {
	index := make(map[string]recap.DayRecord, len(emp.Records))
	for _, rec := range emp.Records {
		date := rec.Date()
		if _, exists := index[date]; exists {
			continue
		}
		index[date] = recap.DayRecord{In: rec.CheckIn, Out: rec.CheckOut}
	}
	return index
}
