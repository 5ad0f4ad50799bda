package export

import (
	"fmt"
	"time"
)

var frenchWeekdays = [...]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FormatLongDate renders t as a French long date, e.g. "samedi 14 mars 2026".
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%s %d %s %d", frenchWeekdays[t.Weekday()], t.Day(), frenchMonths[t.Month()-1], t.Year())
}

// FormatShortDate renders t as "14/03/2026".
func FormatShortDate(t time.Time) string {
	return t.Format("02/01/2006")
}
