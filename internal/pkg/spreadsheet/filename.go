package spreadsheet

import (
	"path/filepath"
	"regexp"
)

// Time-clock exports are usually named like
// attendance_report_detail_2025-11-01_2025-11-22.xlsx.
var periodHintRegex = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})_(\d{4}-\d{2}-\d{2})`)

// PeriodHintFromFilename extracts the embedded start/end dates from a
// file name when present. It is a suggestion for the operator only and
// must never silently replace an explicitly chosen range.
func PeriodHintFromFilename(path string) (start, end string, ok bool) {
	m := periodHintRegex.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
