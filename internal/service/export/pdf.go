package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/annur-digital/rekap-absensi-go/internal/domain/recap"
)

// Column widths of the identity block on the recap page, in mm.
const (
	pdfColNo      = 10.0
	pdfColID      = 20.0
	pdfColNama    = 48.0
	pdfColJabatan = 38.0
	pdfRowHeight  = 6.0
)

type PDFExporter struct {
	organizationName string
}

func NewPDFExporter(organizationName string) *PDFExporter {
	return &PDFExporter{organizationName: organizationName}
}

// Write renders the report as one printable document: the recap grid
// in landscape, then the summary page and the three ranking tables.
func (e *PDFExporter) Write(report recap.Report, path string) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 12)

	e.writeRecapPage(pdf, report)
	e.writeSummaryPage(pdf, report.Summary)

	rankingPages := []struct {
		title   string
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
	for _, rp := range rankingPages {
		e.writeRankingPage(pdf, rp.title, rp.label, rp.entries, rp.count)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to save pdf: %w", err)
	}
	return nil
}

func (e *PDFExporter) writeRecapPage(pdf *fpdf.Fpdf, report recap.Report) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "REKAP ABSENSI "+e.organizationName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Periode: "+report.Summary.Period, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	var dateWidth float64
	if len(report.Dates) > 0 {
		dateWidth = (pageWidth - left - right -
			pdfColNo - pdfColID - pdfColNama - pdfColJabatan) / float64(len(report.Dates))
	}

	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetFillColor(209, 213, 219)
	pdf.CellFormat(pdfColNo, pdfRowHeight, "No", "1", 0, "C", true, 0, "")
	pdf.CellFormat(pdfColID, pdfRowHeight, "ID/NIK", "1", 0, "C", true, 0, "")
	pdf.CellFormat(pdfColNama, pdfRowHeight, "Nama", "1", 0, "C", true, 0, "")
	pdf.CellFormat(pdfColJabatan, pdfRowHeight, "Jabatan", "1", 0, "C", true, 0, "")
	for _, date := range report.Dates {
		pdf.CellFormat(dateWidth, pdfRowHeight, dateLabel(date), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(pdfRowHeight)

	pdf.SetFont("Helvetica", "", 6)
	for _, row := range report.Rows {
		pdf.CellFormat(pdfColNo, pdfRowHeight, fmt.Sprintf("%d", row.Rank), "1", 0, "C", false, 0, "")
		pdf.CellFormat(pdfColID, pdfRowHeight, row.EmployeeID, "1", 0, "C", false, 0, "")
		pdf.CellFormat(pdfColNama, pdfRowHeight, row.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(pdfColJabatan, pdfRowHeight, row.Position, "1", 0, "L", false, 0, "")
		for _, date := range report.Dates {
			ev := row.DailyEvaluations[date]
			r, g, b := hexToRGB(ev.Color)
			pdf.SetFillColor(r, g, b)
			pdf.CellFormat(dateWidth, pdfRowHeight,
				dayCellText(ev, row.DailyRecords[date]), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(pdfRowHeight)
	}
}

func (e *PDFExporter) writeSummaryPage(pdf *fpdf.Fpdf, s recap.SummaryStats) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "KESIMPULAN PROFIL ABSENSI "+e.organizationName, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	lines := [][2]string{
		{"Periode", s.Period},
		{"Predikat", s.Predikat},
		{"Persentase Kehadiran", fmt.Sprintf("%d%%", s.AttendancePercent)},
		{"Total Guru & Karyawan", fmt.Sprintf("%d", s.TotalEmployees)},
		{"Total Hari Kerja", fmt.Sprintf("%d", s.TotalWorkingDays)},
		{"Total Hadir", fmt.Sprintf("%d", s.TotalPresent)},
		{"Tepat Waktu", fmt.Sprintf("%d (%d%%)", s.TotalOnTime, s.OnTimePercent)},
		{"Terlambat", fmt.Sprintf("%d (%d%%)", s.TotalLate, s.LatePercent)},
		{"Alfa", fmt.Sprintf("%d (%d%%)", s.TotalAbsent, s.AbsentPercent)},
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range lines {
		pdf.CellFormat(60, 7, line[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(80, 7, line[1], "1", 1, "L", false, 0, "")
	}
}

func (e *PDFExporter) writeRankingPage(
	pdf *fpdf.Fpdf,
	title, countLabel string,
	entries []recap.RankingEntry,
	count func(recap.RankingEntry) (int, int),
) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	widths := []float64{10, 22, 60, 45, 24, 20, 24}
	headers := []string{"No", "ID/NIK", "Nama", "Jabatan", "Hari Kerja", countLabel, "Persentase"}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(209, 213, 219)
	for i, h := range headers {
		pdf.CellFormat(widths[i], pdfRowHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(pdfRowHeight)

	pdf.SetFont("Helvetica", "", 9)
	for i, entry := range entries {
		c, pct := count(entry)
		cols := []string{
			fmt.Sprintf("%d", i+1),
			entry.EmployeeID,
			entry.Name,
			entry.Position,
			fmt.Sprintf("%d", entry.WorkingDays),
			fmt.Sprintf("%d", c),
			fmt.Sprintf("%d%%", pct),
		}
		for j, col := range cols {
			pdf.CellFormat(widths[j], pdfRowHeight, col, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(pdfRowHeight)
	}
}

func hexToRGB(hex string) (r, g, b int) {
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return 255, 255, 255
	}
	return r, g, b
}
