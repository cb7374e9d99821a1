package recap

// Status classifies one (employee, date) cell of the recap grid.
type Status string

const (
	StatusHadir Status = "H" // present, on time or lateness unknown
	StatusTelat Status = "T" // present but late
	StatusAlfa  Status = "A" // absent
	StatusLibur Status = "L" // scheduled day off
)

// Classification colors carried on every evaluation. The export layer
// renders these as fills and never re-derives them.
const (
	ColorOnTime     = "90EE90" // on time per schedule
	ColorLate       = "FFFF99" // late, or lateness indeterminate
	ColorAbsent     = "FFB3B3" // no check-in on a working day
	ColorNoSchedule = "ADD8E6" // present without a schedule to compare
	ColorDayOff     = "FFFFFF" // day off
)

// DailyEvaluation is the status lens outcome for one employee-date:
// the status, the display token shown in the recap table, and the
// classification color.
type DailyEvaluation struct {
	Status Status
	Text   string
	Color  string
}

// DayRecord projects the raw attendance scans onto one calendar date.
type DayRecord struct {
	In  string
	Out string
}

// RecapRow is one employee's full evaluated row: identity plus, for
// every date in range, the scan projection and its evaluation. Rank is
// 1-based, assigned after the stable sort by employee identifier.
type RecapRow struct {
	Rank       int
	EmployeeID string
	Name       string
	Position   string

	DailyRecords     map[string]DayRecord
	DailyEvaluations map[string]DailyEvaluation
}

// Grade bands for the organization-wide attendance percentage.
const (
	GradeUnggul      = "UNGGUL"
	GradeBaikSekali  = "BAIK SEKALI / ISTIMEWA"
	GradeBaik        = "BAIK"
	GradeCukup       = "CUKUP"
	GradeBuruk       = "BURUK"
	GradeBurukSekali = "BURUK SEKALI"
)

// SummaryStats are the organization-wide tallies over every working
// day in the evaluated grid. Day-off dates are excluded from every
// denominator.
type SummaryStats struct {
	Predikat string
	Period   string

	TotalEmployees   int
	TotalWorkingDays int
	TotalPresent     int
	TotalOnTime      int
	TotalLate        int
	TotalAbsent      int

	AttendancePercent int
	OnTimePercent     int
	LatePercent       int
	AbsentPercent     int
}

// RankingEntry carries one employee's discipline-lens counters.
// Green/Blue/Red are mutually exclusive per day: on-time-with-schedule,
// both-scans-present, no-scans-at-all. Percentages are over the
// employee's own working-day count.
type RankingEntry struct {
	EmployeeID string
	Name       string
	Position   string

	WorkingDays int
	Green       int
	Blue        int
	Red         int

	GreenPercent int
	BluePercent  int
	RedPercent   int
}

// Rankings holds the three independent top-N lists.
type Rankings struct {
	TopDisiplin []RankingEntry // highest green percentage
	TopTertib   []RankingEntry // highest blue percentage
	TopRendah   []RankingEntry // highest red percentage
}

// Report is one full pipeline output: the recap grid, the summary, and
// the rankings, plus run metadata. Rows, Summary, and Rankings are
// deterministic for identical inputs; ID and GeneratedAt are not part
// of that contract.
type Report struct {
	ID          string
	GeneratedAt string

	StartDate string
	EndDate   string
	Dates     []string

	Rows     []RecapRow
	Summary  SummaryStats
	Rankings Rankings
}
