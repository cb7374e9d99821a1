// Package attendance parses the raw time-clock export: a human-oriented
// printout of repeating multi-row employee blocks delimited by marker
// cells, not a clean table.
package attendance

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/annur-digital/rekap-absensi-go/internal/domain/employee"
	"github.com/annur-digital/rekap-absensi-go/internal/pkg/spreadsheet"
	"github.com/annur-digital/rekap-absensi-go/internal/pkg/timecodec"
)

// Column roles of the attendance export (see the input contract).
const (
	colMarker   = 0 // block markers and date tokens
	colValue    = 1 // value cell next to a marker
	colCheckIn  = 4
	colCheckOut = 5
	colJobTitle = 9
)

// Markers that delimit one employee block.
const (
	markerEmployee = "Nama Karyawan"
	markerID       = "ID/NIK"
	markerPosition = "Jabatan"
	markerTotal    = "TOTAL"
)

// metadataLookahead is how many rows below the block opener may carry
// the job-title cell.
const metadataLookahead = 4

var dateTokenRegex = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)

type Parser struct {
	defaultPosition  string
	organizationName string
}

func NewParser(defaultPosition, organizationName string) *Parser {
	return &Parser{
		defaultPosition:  defaultPosition,
		organizationName: organizationName,
	}
}

// Parse scans the row grid as a block state machine: a "Nama Karyawan"
// row opens a block, date-token rows append scan records, a "TOTAL" row
// closes it. Blocks without records are discarded. An empty result set
// is a hard error; there is no partial-success mode.
func (p *Parser) Parse(grid spreadsheet.Grid) ([]employee.Employee, error) {
	var employees []employee.Employee
	var current *employee.Employee // nil means outside-block

	commit := func() {
		if current != nil && len(current.Records) > 0 {
			employees = append(employees, *current)
		}
		current = nil
	}

	for i := range grid {
		marker := grid.Cell(i, colMarker).String()

		if marker == markerEmployee && grid.Cell(i, colValue).Kind != spreadsheet.CellEmpty {
			commit()
			current = &employee.Employee{
				Name:     grid.Cell(i, colValue).String(),
				Position: p.defaultPosition,
			}
			p.captureMetadata(grid, i, current)
			continue
		}

		if current != nil && marker != "" {
			if m := dateTokenRegex.FindStringSubmatch(marker); m != nil {
				current.Records = append(current.Records, employee.AttendanceRecord{
					Year:     m[1],
					Month:    m[2],
					Day:      m[3],
					CheckIn:  timecodec.FormatClockTime(grid.Cell(i, colCheckIn)),
					CheckOut: timecodec.FormatClockTime(grid.Cell(i, colCheckOut)),
				})
			}
		}

		if marker == markerTotal && current != nil {
			commit()
		}
	}

	// Trailing block without a TOTAL row still counts.
	commit()

	if len(employees) == 0 {
		return nil, employee.ErrNoEmployeesFound
	}

	slog.Info("parsed attendance export", "employees", len(employees))
	return employees, nil
}

// captureMetadata inspects the few rows below a block opener for the
// employee's NIK and job title. The title lives in the metadata column;
// cells holding the organization name are a letterhead artifact and
// are skipped.
func (p *Parser) captureMetadata(grid spreadsheet.Grid, row int, emp *employee.Employee) {
	for j := 0; j < metadataLookahead; j++ {
		cell := grid.Cell(row+j, colJobTitle)
		if cell.Kind != spreadsheet.CellString {
			continue
		}
		val := strings.TrimSpace(cell.Text)
		if val != "" && val != p.organizationName {
			emp.Position = val
			break
		}
	}

	if grid.Cell(row+1, colMarker).String() == markerID {
		emp.ID = employee.NormalizeID(grid.Cell(row+1, colValue).String())
	}

	if grid.Cell(row+2, colMarker).String() == markerPosition {
		if val := strings.TrimSpace(grid.Cell(row+2, colJobTitle).String()); val != "" {
			emp.Position = val
		}
	}
}
