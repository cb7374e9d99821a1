package export

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/annur-digital/rekap-absensi-go/internal/domain/recap"
)

const (
	cardWidth    = 440
	cardHeight   = 300
	headerHeight = 72
	cardScale    = 2
	jpegQuality  = 90
)

// Header band color per grade band; a styling choice only, the grade
// itself comes from the engine.
var gradeColors = map[string]color.RGBA{
	recap.GradeUnggul:      {R: 0x16, G: 0xA3, B: 0x4A, A: 0xFF},
	recap.GradeBaikSekali:  {R: 0x4F, G: 0x46, B: 0xE5, A: 0xFF},
	recap.GradeBaik:        {R: 0x06, G: 0xB6, B: 0xD4, A: 0xFF},
	recap.GradeCukup:       {R: 0xF5, G: 0x9E, B: 0x0B, A: 0xFF},
	recap.GradeBuruk:       {R: 0xF9, G: 0x73, B: 0x16, A: 0xFF},
	recap.GradeBurukSekali: {R: 0xDC, G: 0x26, B: 0x26, A: 0xFF},
}

// WriteSummaryCard renders the summary as a shareable JPEG card, the
// counterpart of the recap's copy-as-image button.
func WriteSummaryCard(summary recap.SummaryStats, organizationName, path string) error {
	src := image.NewRGBA(image.Rect(0, 0, cardWidth, cardHeight))

	// Background
	fillRect(src, src.Bounds(), color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})

	// Header band in the grade color
	bandColor, ok := gradeColors[summary.Predikat]
	if !ok {
		bandColor = gradeColors[recap.GradeBurukSekali]
	}
	fillRect(src, image.Rect(0, 0, cardWidth, headerHeight), bandColor)

	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black := color.RGBA{A: 0xFF}

	drawText(src, 16, 24, "KESIMPULAN PROFIL ABSENSI", white)
	drawText(src, 16, 42, organizationName, white)
	drawText(src, 16, 60, "Periode: "+summary.Period, white)

	lines := []string{
		fmt.Sprintf("Predikat: %s", summary.Predikat),
		fmt.Sprintf("Persentase Kehadiran: %d%%", summary.AttendancePercent),
		fmt.Sprintf("Total Guru & Karyawan: %d orang", summary.TotalEmployees),
		fmt.Sprintf("Total Hari Kerja: %d", summary.TotalWorkingDays),
		fmt.Sprintf("Hadir: %d", summary.TotalPresent),
		fmt.Sprintf("Tepat Waktu: %d (%d%%)", summary.TotalOnTime, summary.OnTimePercent),
		fmt.Sprintf("Terlambat: %d (%d%%)", summary.TotalLate, summary.LatePercent),
		fmt.Sprintf("Alfa: %d (%d%%)", summary.TotalAbsent, summary.AbsentPercent),
	}
	for i, line := range lines {
		drawText(src, 16, headerHeight+28+i*24, line, black)
	}

	// Scale up for legibility before encoding.
	dst := image.NewRGBA(image.Rect(0, 0, cardWidth*cardScale, cardHeight*cardScale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary card file: %w", err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("failed to encode summary card: %w", err)
	}
	return nil
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func drawText(img *image.RGBA, x, y int, text string, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
