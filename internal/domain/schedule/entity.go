package schedule

import "github.com/annur-digital/rekap-absensi-go/internal/pkg/timecodec"

// Weekday keys as the schedule sheet names them.
const (
	DaySabtu  = "sabtu"
	DayMinggu = "minggu"
	DaySenin  = "senin"
	DaySelasa = "selasa"
	DayRabu   = "rabu"
	DayKamis  = "kamis"
	DayJumat  = "jumat"
)

// WeeklySchedule maps an employee to one start-time token per weekday.
// A token is canonical HH:MM, the day-off markers "L"/"OFF", or the
// "-" no-schedule sentinel. Immutable after parsing.
type WeeklySchedule struct {
	EmployeeID string
	Name       string
	Starts     map[string]string
}

// StartFor returns the start token for a weekday. Missing or empty
// entries mean day off, matching how the sheets leave off-days blank.
func (s WeeklySchedule) StartFor(day string) string {
	if start, ok := s.Starts[day]; ok && start != "" {
		return start
	}
	return timecodec.DayOff
}
