package shoots

import (
	"strings"
	"time"

	"shootdesk/models"
)

const dateLayout = "2006-01-02"

// dayLabelLayouts are the calendar formats the backend is known to emit in day labels.
// Layouts without a year are resolved against the current year.
var dayLabelLayouts = []string{
	dateLayout,
	"Mon, Jan 2, 2006",
	"Monday, January 2, 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"01/02/2006",
	"1/2/2006",
	"Mon, Jan 2",
	"Monday, January 2",
	"Monday, Jan 2",
	"Jan 2",
	"January 2",
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ShootDate returns the start of the shoot's day in now's location. The start time
// wins; the day label is only consulted when no start time is set.
func ShootDate(s models.ShootSummary, now time.Time) (time.Time, bool) {
	if s.StartTime != nil && !s.StartTime.IsZero() {
		return StartOfDay(s.StartTime.In(now.Location())), true
	}
	return ParseDayLabel(s.DayLabel, now)
}

// ParseDayLabel resolves a human day label ("Today", "Tomorrow", "Mar 5") to a date.
func ParseDayLabel(label string, now time.Time) (time.Time, bool) {
	trimmed := strings.TrimSpace(label)
	lower := strings.ToLower(trimmed)
	if lower == "" {
		return time.Time{}, false
	}

	today := StartOfDay(now)
	switch {
	case strings.Contains(lower, "tomorrow"):
		return today.AddDate(0, 0, 1), true
	case strings.Contains(lower, "yesterday"):
		return today.AddDate(0, 0, -1), true
	case strings.Contains(lower, "today"):
		return today, true
	}

	for _, layout := range dayLabelLayouts {
		t, err := time.ParseInLocation(layout, trimmed, now.Location())
		if err != nil {
			continue
		}
		if t.Year() == 0 {
			t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
		}
		return t, true
	}
	return time.Time{}, false
}

// ParseDateBound parses a "2006-01-02" or RFC3339 bound into the start of its day.
func ParseDateBound(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return StartOfDay(t.In(loc)), true
	}
	return time.Time{}, false
}

// DayLabelFor renders the bucket label of a calendar day relative to today.
func DayLabelFor(day, today time.Time) string {
	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(today.AddDate(0, 0, 1)):
		return "Tomorrow"
	case day.Year() != today.Year():
		return day.Format("Mon, Jan 2, 2006")
	default:
		return day.Format("Mon, Jan 2")
	}
}

// weekStart returns the Monday of the calendar week containing day.
func weekStart(day time.Time) time.Time {
	return day.AddDate(0, 0, -int((day.Weekday()+6)%7))
}
