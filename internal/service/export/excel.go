// Package export renders a generated report into operator-facing
// artifacts: a styled Excel workbook and a summary card image. It only
// reads what the engine produced and never re-derives a classification.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/annur-digital/rekap-absensi-go/internal/domain/recap"
)

const (
	sheetRekap      = "Rekap Absensi"
	sheetKesimpulan = "Kesimpulan"
	sheetDisiplin   = "Top Disiplin Waktu"
	sheetTertib     = "Top Tertib Administrasi"
	sheetRendah     = "Top Rendah Kesadaran"
)

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Ags", "Sep", "Okt", "Nov", "Des"}

type ExcelExporter struct {
	organizationName string
}

func NewExcelExporter(organizationName string) *ExcelExporter {
	return &ExcelExporter{organizationName: organizationName}
}

// Write renders the full report into one workbook at path.
func (e *ExcelExporter) Write(report recap.Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newStyleSet(f)
	if err != nil {
		return fmt.Errorf("failed to build cell styles: %w", err)
	}

	if err := e.writeRecapSheet(f, styles, report); err != nil {
		return err
	}
	if err := e.writeSummarySheet(f, styles, report.Summary); err != nil {
		return err
	}

	rankingSheets := []struct {
		name    string
		entries []recap.RankingEntry
		count   func(recap.RankingEntry) (int, int)
		label   string
	}{
		{sheetDisiplin, report.Rankings.TopDisiplin,
			func(e recap.RankingEntry) (int, int) { return e.Green, e.GreenPercent }, "Hijau"},
		{sheetTertib, report.Rankings.TopTertib,
			func(e recap.RankingEntry) (int, int) { return e.Blue, e.BluePercent }, "Biru"},
		{sheetRendah, report.Rankings.TopRendah,
			func(e recap.RankingEntry) (int, int) { return e.Red, e.RedPercent }, "Merah"},
	}
	for _, rs := range rankingSheets {
		if err := e.writeRankingSheet(f, rs.name, rs.label, rs.entries, rs.count); err != nil {
			return err
		}
	}

	// The default sheet is replaced by the recap sheets.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func (e *ExcelExporter) writeRecapSheet(f *excelize.File, styles *styleSet, report recap.Report) error {
	if _, err := f.NewSheet(sheetRekap); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	setCell(f, sheetRekap, 1, 1, "REKAP ABSENSI "+e.organizationName)
	setCell(f, sheetRekap, 1, 2, "Periode: "+report.Summary.Period)

	headerRow := 4
	headers := []string{"No", "ID/NIK", "Nama", "Jabatan"}
	for i, h := range headers {
		setCell(f, sheetRekap, i+1, headerRow, h)
	}
	for i, date := range report.Dates {
		setCell(f, sheetRekap, len(headers)+1+i, headerRow, dateLabel(date))
	}
	f.SetCellStyle(sheetRekap,
		cellName(1, headerRow), cellName(len(headers)+len(report.Dates), headerRow),
		styles.header)

	for r, row := range report.Rows {
		y := headerRow + 1 + r
		setCell(f, sheetRekap, 1, y, row.Rank)
		setCell(f, sheetRekap, 2, y, row.EmployeeID)
		setCell(f, sheetRekap, 3, y, row.Name)
		setCell(f, sheetRekap, 4, y, row.Position)

		for i, date := range report.Dates {
			ev := row.DailyEvaluations[date]
			rec := row.DailyRecords[date]
			name := cellName(len(headers)+1+i, y)

			f.SetCellValue(sheetRekap, name, dayCellText(ev, rec))
			f.SetCellStyle(sheetRekap, name, name, styles.fill(f, ev.Color))
		}
	}
	return nil
}

// dayCellText shows the scan pair on present days and the evaluation
// token otherwise; the fill carries the classification.
func dayCellText(ev recap.DailyEvaluation, rec recap.DayRecord) string {
	if ev.Text == "H" {
		return rec.In + " | " + rec.Out
	}
	return ev.Text
}

func (e *ExcelExporter) writeSummarySheet(f *excelize.File, styles *styleSet, s recap.SummaryStats) error {
	if _, err := f.NewSheet(sheetKesimpulan); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	lines := []struct {
		label string
		value any
	}{
		{"KESIMPULAN PROFIL ABSENSI", e.organizationName},
		{"Periode", s.Period},
		{"Predikat", s.Predikat},
		{"Persentase Kehadiran", fmt.Sprintf("%d%%", s.AttendancePercent)},
		{"Total Guru & Karyawan", s.TotalEmployees},
		{"Total Hari Kerja", s.TotalWorkingDays},
		{"Total Hadir", s.TotalPresent},
		{"Tepat Waktu", fmt.Sprintf("%d (%d%%)", s.TotalOnTime, s.OnTimePercent)},
		{"Terlambat", fmt.Sprintf("%d (%d%%)", s.TotalLate, s.LatePercent)},
		{"Alfa", fmt.Sprintf("%d (%d%%)", s.TotalAbsent, s.AbsentPercent)},
	}
	for i, line := range lines {
		setCell(f, sheetKesimpulan, 1, i+1, line.label)
		setCell(f, sheetKesimpulan, 2, i+1, line.value)
	}
	f.SetCellStyle(sheetKesimpulan, cellName(1, 1), cellName(2, 1), styles.header)
	return nil
}

func (e *ExcelExporter) writeRankingSheet(
	f *excelize.File,
	sheet, countLabel string,
	entries []recap.RankingEntry,
	count func(recap.RankingEntry) (int, int),
) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{"No", "ID/NIK", "Nama", "Jabatan", "Hari Kerja", countLabel, "Persentase"}
	for i, h := range headers {
		setCell(f, sheet, i+1, 1, h)
	}

	for i, entry := range entries {
		c, pct := count(entry)
		y := i + 2
		setCell(f, sheet, 1, y, i+1)
		setCell(f, sheet, 2, y, entry.EmployeeID)
		setCell(f, sheet, 3, y, entry.Name)
		setCell(f, sheet, 4, y, entry.Position)
		setCell(f, sheet, 5, y, entry.WorkingDays)
		setCell(f, sheet, 6, y, c)
		setCell(f, sheet, 7, y, fmt.Sprintf("%d%%", pct))
	}
	return nil
}

// styleSet caches fill styles per classification color.
type styleSet struct {
	header int
	fills  map[string]int
}

func newStyleSet(f *excelize.File) (*styleSet, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D1D5DB"}},
	})
	if err != nil {
		return nil, err
	}
	return &styleSet{header: header, fills: make(map[string]int)}, nil
}

func (s *styleSet) fill(f *excelize.File, color string) int {
	if id, ok := s.fills[color]; ok {
		return id
	}
	id, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return 0
	}
	s.fills[color] = id
	return id
}

func setCell(f *excelize.File, sheet string, col, row int, value any) {
	f.SetCellValue(sheet, cellName(col, row), value)
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// dateLabel renders an ISO date as the short header form, e.g. "2 Des".
func dateLabel(dateStr string) string {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return fmt.Sprintf("%d %s", d.Day(), monthLabels[int(d.Month())-1])
}
