package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/annur-digital/rekap-absensi-go/internal/config"
	"github.com/annur-digital/rekap-absensi-go/internal/domain/recap"
	domainschedule "github.com/annur-digital/rekap-absensi-go/internal/domain/schedule"
	"github.com/annur-digital/rekap-absensi-go/internal/pkg/spreadsheet"
	"github.com/annur-digital/rekap-absensi-go/internal/pkg/validator"
	attendanceParser "github.com/annur-digital/rekap-absensi-go/internal/service/attendance"
	"github.com/annur-digital/rekap-absensi-go/internal/service/export"
	recapService "github.com/annur-digital/rekap-absensi-go/internal/service/recap"
	scheduleParser "github.com/annur-digital/rekap-absensi-go/internal/service/schedule"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		attendancePath string
		schedulePath   string
		startDate      string
		endDate        string
		outDir         string
		noImage        bool
		noPDF          bool
	)

	cmd := &cobra.Command{
		Use:   "rekap",
		Short: "Generate an attendance recap from a time-clock export and a schedule sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			setupLogger(cfg.App.LogLevel)

			if outDir == "" {
				outDir = cfg.Recap.OutputDir
			}

			// A file name like ..._2025-11-01_2025-11-22.xlsx suggests the
			// period. It only fills in missing flags; an explicit range is
			// never overridden, only notified about.
			if hintStart, hintEnd, ok := spreadsheet.PeriodHintFromFilename(attendancePath); ok {
				if startDate == "" && endDate == "" {
					startDate, endDate = hintStart, hintEnd
					slog.Info("period detected from file name", "start", startDate, "end", endDate)
				} else if startDate != hintStart || endDate != hintEnd {
					slog.Info("file name suggests a different period",
						"suggested_start", hintStart, "suggested_end", hintEnd,
						"chosen_start", startDate, "chosen_end", endDate)
				}
			}
			if startDate == "" || endDate == "" {
				return fmt.Errorf("start and end dates are required (flags --start/--end, or a file name with an embedded period)")
			}

			attendanceGrid, err := spreadsheet.Open(attendancePath)
			if err != nil {
				return fmt.Errorf("failed to read attendance file: %w", err)
			}
			employees, err := attendanceParser.NewParser(
				cfg.Recap.DefaultPosition, cfg.Recap.OrganizationName,
			).Parse(attendanceGrid)
			if err != nil {
				return fmt.Errorf("failed to parse attendance file: %w", err)
			}

			var schedules []domainschedule.WeeklySchedule
			if schedulePath != "" {
				scheduleGrid, err := spreadsheet.Open(schedulePath)
				if err != nil {
					return fmt.Errorf("failed to read schedule file: %w", err)
				}
				schedules, err = scheduleParser.NewParser().Parse(scheduleGrid)
				if err != nil {
					return fmt.Errorf("failed to parse schedule file: %w", err)
				}
			} else {
				slog.Warn("no schedule file given; lateness cannot be evaluated")
			}

			service := recapService.NewRecapService(cfg.Recap.RankingTopN)
			report, err := service.Generate(cmd.Context(), recap.GenerateRequest{
				StartDate: startDate,
				EndDate:   endDate,
				Employees: employees,
				Schedules: schedules,
			})
			if err != nil {
				var verrs validator.ValidationErrors
				if errors.As(err, &verrs) {
					for field, msg := range verrs.ToMap() {
						slog.Error("invalid input", "field", field, "reason", msg)
					}
				}
				return fmt.Errorf("failed to generate recap: %w", err)
			}

			workbookPath := filepath.Join(outDir,
				fmt.Sprintf("rekap-absensi_%s_%s.xlsx", report.StartDate, report.EndDate))
			exporter := export.NewExcelExporter(cfg.Recap.OrganizationName)
			if err := exporter.Write(report, workbookPath); err != nil {
				return fmt.Errorf("failed to export workbook: %w", err)
			}

			fmt.Printf("Rekap %s ditulis ke %s\n", report.Summary.Period, workbookPath)
			fmt.Printf("Kehadiran %d%% (%s), %d karyawan, %d hari kerja\n",
				report.Summary.AttendancePercent, report.Summary.Predikat,
				report.Summary.TotalEmployees, report.Summary.TotalWorkingDays)

			if !noPDF {
				pdfPath := filepath.Join(outDir,
					fmt.Sprintf("rekap-absensi_%s_%s.pdf", report.StartDate, report.EndDate))
				if err := export.NewPDFExporter(cfg.Recap.OrganizationName).Write(report, pdfPath); err != nil {
					return fmt.Errorf("failed to export pdf: %w", err)
				}
				fmt.Printf("Dokumen PDF ditulis ke %s\n", pdfPath)
			}

			if !noImage {
				cardPath := filepath.Join(outDir,
					fmt.Sprintf("kesimpulan-absensi_%s_%s.jpg", report.StartDate, report.EndDate))
				if err := export.WriteSummaryCard(report.Summary, cfg.Recap.OrganizationName, cardPath); err != nil {
					return fmt.Errorf("failed to export summary card: %w", err)
				}
				fmt.Printf("Kartu kesimpulan ditulis ke %s\n", cardPath)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&attendancePath, "attendance", "", "path to the time-clock export (.xlsx/.xls)")
	cmd.Flags().StringVar(&schedulePath, "schedule", "", "path to the weekly schedule sheet (.xlsx/.xls)")
	cmd.Flags().StringVar(&startDate, "start", "", "period start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "period end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default: OUTPUT_DIR)")
	cmd.Flags().BoolVar(&noImage, "no-image", false, "skip the summary card image")
	cmd.Flags().BoolVar(&noPDF, "no-pdf", false, "skip the PDF document")
	_ = cmd.MarkFlagRequired("attendance")

	return cmd
}

func setupLogger(level string) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}
