package service

import (
	"fmt"
	"time"

	"github.com/agrisaarthi/assistant-platform/internal/model"
)

var yesterdayLabels = map[model.Language]string{
	model.LanguageHindi:   "कल",
	model.LanguageKannada: "ನಿನ್ನೆ",
	model.LanguageTamil:   "நேற்று",
	model.LanguageEnglish: "Yesterday",
}

var daysAgoLabels = map[model.Language]string{
	model.LanguageHindi:   "दिन पहले",
	model.LanguageKannada: "ದಿನಗಳ ಹಿಂದೆ",
	model.LanguageTamil:   "நாட்களுக்கு முன்பு",
	model.LanguageEnglish: "days ago",
}

// FormatRecency renders a timestamp relative to now: a clock time on the
// same calendar day, a per-language yesterday label one day prior,
// "N <days ago>" for 2-6 days, and a calendar date beyond that.
func FormatRecency(ts, now time.Time, lang model.Language) string {
	days := calendarDaysBetween(ts, now)

	switch {
	case days <= 0:
		return ts.Format("15:04")
	case days == 1:
		return yesterdayLabels[lang]
	case days < 7:
		return fmt.Sprintf("%d %s", days, daysAgoLabels[lang])
	default:
		return ts.Format("02/01/2006")
	}
}

// calendarDaysBetween counts whole calendar days from ts to now in now's
// location, so 23:59 to 00:01 still counts as one day.
func calendarDaysBetween(ts, now time.Time) int {
	loc := now.Location()
	ts = ts.In(loc)
	a := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, loc)
	b := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	return int(b.Sub(a).Hours() / 24)
}
