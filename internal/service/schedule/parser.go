// Package schedule parses the weekly work-schedule sheet into per
// employee weekday start times.
package schedule

import (
	"log/slog"
	"strings"

	"github.com/annur-digital/rekap-absensi-go/internal/domain/schedule"
	"github.com/annur-digital/rekap-absensi-go/internal/pkg/spreadsheet"
	"github.com/annur-digital/rekap-absensi-go/internal/pkg/timecodec"
)

// Fixed layout of the schedule sheet: two header rows, then one row
// per employee.
const (
	headerRows = 2
	colID      = 0
	colName    = 2
)

// dayColumns is the single source of truth for the weekday-to-column
// contract. Jumat has no column: it is a fixed day off for everyone,
// an organizational policy baked into the schedule model.
var dayColumns = []struct {
	Day string
	Col int
}{
	{schedule.DaySabtu, 3},
	{schedule.DayMinggu, 5},
	{schedule.DaySenin, 7},
	{schedule.DaySelasa, 9},
	{schedule.DayRabu, 11},
	{schedule.DayKamis, 13},
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse maps every data row with a non-empty identifier to a
// WeeklySchedule. Zero resulting entries is a hard error.
func (p *Parser) Parse(grid spreadsheet.Grid) ([]schedule.WeeklySchedule, error) {
	var schedules []schedule.WeeklySchedule

	for i := headerRows; i < len(grid); i++ {
		id := strings.TrimSpace(grid.Cell(i, colID).String())
		if id == "" {
			continue
		}

		starts := make(map[string]string, len(dayColumns)+1)
		for _, dc := range dayColumns {
			starts[dc.Day] = timecodec.FormatScheduleTime(grid.Cell(i, dc.Col))
		}
		starts[schedule.DayJumat] = timecodec.DayOff

		schedules = append(schedules, schedule.WeeklySchedule{
			EmployeeID: id,
			Name:       grid.Cell(i, colName).String(),
			Starts:     starts,
		})
	}

	if len(schedules) == 0 {
		return nil, schedule.ErrNoScheduleFound
	}

	slog.Info("parsed schedule sheet", "entries", len(schedules))
	return schedules, nil
}
