package recap

import (
	"github.com/annur-digital/rekap-absensi-go/internal/domain/recap"
	"github.com/annur-digital/rekap-absensi-go/internal/pkg/timecodec"
)

// evaluateDay classifies one working date for an employee who has a
// schedule entry. Precedence: day off beats everything, then the
// explicit no-schedule sentinel, then absence, then punctuality.
// The function is pure and total: every input yields exactly one
// outcome.
func evaluateDay(checkIn, scheduleStart string) recap.DailyEvaluation {
	if scheduleStart == timecodec.DayOff || scheduleStart == timecodec.Off {
		return recap.DailyEvaluation{Status: recap.StatusLibur, Color: recap.ColorDayOff, Text: "L"}
	}

	// Schedule row exists but explicitly marks the day unscheduled.
	if scheduleStart == timecodec.Absent {
		if checkIn != timecodec.Absent {
			return recap.DailyEvaluation{Status: recap.StatusHadir, Color: recap.ColorOnTime, Text: "H"}
		}
		return recap.DailyEvaluation{Status: recap.StatusAlfa, Color: recap.ColorAbsent, Text: "-"}
	}

	if checkIn == timecodec.Absent {
		return recap.DailyEvaluation{Status: recap.StatusAlfa, Color: recap.ColorAbsent, Text: "-"}
	}

	checkInMin := timecodec.ToMinutes(checkIn)
	schedMin := timecodec.ToMinutes(scheduleStart)
	if checkInMin == nil || schedMin == nil {
		// Lateness indeterminate: counts as present everywhere except
		// the punctuality tallies.
		return recap.DailyEvaluation{Status: recap.StatusHadir, Color: recap.ColorLate, Text: "H"}
	}

	if *checkInMin <= *schedMin {
		return recap.DailyEvaluation{Status: recap.StatusHadir, Color: recap.ColorOnTime, Text: "H"}
	}
	return recap.DailyEvaluation{Status: recap.StatusTelat, Color: recap.ColorLate, Text: "H"}
}

// evaluateDayWithoutSchedule is the fallback policy when the schedule
// upload is missing or has no entry for the employee: a check-in means
// present (with its own color), otherwise absent. It never yields
// "late" — lateness needs a schedule to compare against.
func evaluateDayWithoutSchedule(checkIn string) recap.DailyEvaluation {
	if checkIn != timecodec.Absent {
		return recap.DailyEvaluation{Status: recap.StatusHadir, Color: recap.ColorNoSchedule, Text: "H"}
	}
	return recap.DailyEvaluation{Status: recap.StatusAlfa, Color: recap.ColorAbsent, Text: "-"}
}
