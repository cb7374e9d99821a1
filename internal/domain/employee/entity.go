package employee

import "strings"

// Employee is one block of the raw time-clock export: the person plus
// every scan-day record found between the block markers. Immutable
// after parsing.
type Employee struct {
	ID       string
	Name     string
	Position string
	Records  []AttendanceRecord
}

// AttendanceRecord is one physical scan-day. Day/Month/Year keep the
// zero-padded form of the source date token; CheckIn/CheckOut hold
// canonical HH:MM or the absence marker.
type AttendanceRecord struct {
	Day      string
	Month    string
	Year     string
	CheckIn  string
	CheckOut string
}

// Date returns the record's ISO date string.
func (r AttendanceRecord) Date() string {
	return r.Year + "-" + r.Month + "-" + r.Day
}

// NormalizeID strips the "/suffix" some clock machines append to the
// NIK, so attendance and schedule rows join on the same key.
func NormalizeID(raw string) string {
	s := strings.TrimSpace(raw)
	if i := strings.Index(s, "/"); i >= 0 {
		return s[:i]
	}
	return s
}
