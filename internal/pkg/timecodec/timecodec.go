// Package timecodec converts the mixed clock-time encodings found in
// time-clock and schedule sheets (colon strings, fractional-day numbers,
// sentinel tokens) into canonical HH:MM values and back into minutes.
package timecodec

import (
	"strconv"
	"strings"

	"github.com/annur-digital/rekap-absensi-go/internal/pkg/spreadsheet"
)

const (
	// Absent is the canonical marker for "no time recorded".
	Absent = "-"
	// DayOff marks a scheduled day off (Libur).
	DayOff = "L"
	// Off is the alternate day-off token some schedule sheets use.
	Off = "OFF"
)

// FormatClockTime decodes an attendance cell into HH:MM or the absence
// marker. Fractional-day numbers outside [0,1] are treated as invalid.
func FormatClockTime(cell spreadsheet.Cell) string {
	switch cell.Kind {
	case spreadsheet.CellEmpty:
		return Absent
	case spreadsheet.CellString:
		val := cell.Text
		if val == "" || val == Absent {
			return Absent
		}
		if strings.Contains(val, ":") {
			parts := strings.Split(val, ":")
			return pad2(parts[0]) + ":" + pad2(parts[1])
		}
		return val
	case spreadsheet.CellNumber:
		if cell.Number < 0 || cell.Number > 1 {
			return Absent
		}
		return fractionToHHMM(cell.Number)
	}
	return Absent
}

// FormatScheduleTime decodes a schedule cell. Day-off tokens and the
// absence marker pass through unchanged; colon strings are kept as-is;
// fractional-day numbers below 1 convert to HH:MM. Numeric values >= 1
// pass through as their stringified form (a known quirk of the source
// schedule sheets, preserved deliberately).
func FormatScheduleTime(cell spreadsheet.Cell) string {
	switch cell.Kind {
	case spreadsheet.CellEmpty:
		return ""
	case spreadsheet.CellString:
		// Day-off tokens, "-", and colon strings all pass through.
		return cell.Text
	case spreadsheet.CellNumber:
		if cell.Number < 1 {
			return fractionToHHMM(cell.Number)
		}
		return cell.String()
	}
	return ""
}

// ToMinutes converts a canonical HH:MM string to minutes since
// midnight. It returns nil for absence/day-off markers and anything
// unparseable, meaning "incomparable": callers must not infer lateness.
func ToMinutes(timeStr string) *int {
	if timeStr == "" || timeStr == Absent || timeStr == Off || timeStr == DayOff {
		return nil
	}
	s := strings.TrimSpace(timeStr)
	if !strings.Contains(s, ":") {
		return nil
	}
	parts := strings.SplitN(s, ":", 2)
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil
	}
	mins, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil
	}
	total := hours*60 + mins
	return &total
}

func fractionToHHMM(v float64) string {
	totalMinutes := int(v*1440 + 0.5)
	hours := totalMinutes / 60
	mins := totalMinutes % 60
	return pad2(strconv.Itoa(hours)) + ":" + pad2(strconv.Itoa(mins))
}

func pad2(s string) string {
	if len(s) < 2 {
		return strings.Repeat("0", 2-len(s)) + s
	}
	return s
}
