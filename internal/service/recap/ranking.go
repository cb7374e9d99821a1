package recap

import (
	"sort"

	"github.com/annur-digital/rekap-absensi-go/internal/domain/recap"
	"github.com/annur-digital/rekap-absensi-go/internal/domain/schedule"
	"github.com/annur-digital/rekap-absensi-go/internal/pkg/daterange"
	"github.com/annur-digital/rekap-absensi-go/internal/pkg/timecodec"
)

// buildRankings computes the discipline lens for every employee and
// derives the three independent top-N lists. This is a separate
// classification from the present/absent status lens on purpose: a day
// lands in at most one of green (check-in on time per schedule), blue
// (both scans present), or red (no scans at all).
func buildRankings(
	rows []recap.RecapRow,
	dates []string,
	schedules map[string]schedule.WeeklySchedule,
	topN int,
) recap.Rankings {
	entries := make([]recap.RankingEntry, 0, len(rows))

	for _, row := range rows {
		entry := recap.RankingEntry{
			EmployeeID: row.EmployeeID,
			Name:       row.Name,
			Position:   row.Position,
		}
		sched, hasSchedule := schedules[row.EmployeeID]

		for _, date := range dates {
			if row.DailyEvaluations[date].Text == "L" {
				continue
			}
			entry.WorkingDays++

			rec := row.DailyRecords[date]
			hasIn := rec.In != timecodec.Absent
			hasOut := rec.Out != timecodec.Absent

			switch {
			case !hasIn && !hasOut:
				entry.Red++
			case hasIn && hasOut:
				entry.Blue++
			case hasIn:
				if !hasSchedule {
					continue
				}
				day, err := daterange.DayName(date)
				if err != nil {
					continue
				}
				inMin := timecodec.ToMinutes(rec.In)
				schedMin := timecodec.ToMinutes(sched.StartFor(day))
				if inMin != nil && schedMin != nil && *inMin <= *schedMin {
					entry.Green++
				}
			}
		}

		entry.GreenPercent = percentOf(entry.Green, entry.WorkingDays)
		entry.BluePercent = percentOf(entry.Blue, entry.WorkingDays)
		entry.RedPercent = percentOf(entry.Red, entry.WorkingDays)
		entries = append(entries, entry)
	}

	return recap.Rankings{
		TopDisiplin: topBy(entries, topN,
			func(e recap.RankingEntry) (int, int) { return e.GreenPercent, e.Green }),
		TopTertib: topBy(entries, topN,
			func(e recap.RankingEntry) (int, int) { return e.BluePercent, e.Blue }),
		TopRendah: topBy(entries, topN,
			func(e recap.RankingEntry) (int, int) { return e.RedPercent, e.Red }),
	}
}

// topBy sorts a copy of the entries descending by percentage, breaking
// ties by raw count; ties beyond that keep input order (stable sort).
func topBy(entries []recap.RankingEntry, topN int, key func(recap.RankingEntry) (int, int)) []recap.RankingEntry {
	sorted := make([]recap.RankingEntry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		pi, ci := key(sorted[i])
		pj, cj := key(sorted[j])
		if pi != pj {
			return pi > pj
		}
		return ci > cj
	})

	if len(sorted) > topN {
		sorted = sorted[:topN]
	}
	return sorted
}
