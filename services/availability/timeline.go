package availability

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"shootdesk/models"
	"shootdesk/services/shoots"
)

// The timeline covers 07:00 to 19:00 in one-hour slots.
const (
	DayStartHour = 7
	DayEndHour   = 19
)

const dateLayout = "2006-01-02"

// ParseClock parses a zero-padded "HH:MM" into minutes from midnight.
func ParseClock(s string) (int, bool) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 24 {
		return 0, false
	}
	minute, err := strconv.Atoi(m[:min(2, len(m))])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

var timeLabelLayouts = []string{"15:04", "3:04 PM", "3:04PM", "3 PM", "3PM"}

// shootStartMinute returns the start of a shoot in minutes from midnight.
func shootStartMinute(s models.ShootSummary, loc *time.Location) (int, bool) {
	if s.StartTime != nil && !s.StartTime.IsZero() {
		t := s.StartTime.In(loc)
		return t.Hour()*60 + t.Minute(), true
	}
	label := strings.ToUpper(strings.TrimSpace(s.TimeLabel))
	for _, layout := range timeLabelLayouts {
		if t, err := time.Parse(layout, label); err == nil {
			return t.Hour()*60 + t.Minute(), true
		}
	}
	return 0, false
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// SlotsForDate returns the photographer's slots that apply to day. Date-specific
// slots override the recurring weekday schedule when any exist.
func SlotsForDate(slots []models.AvailabilitySlot, photographerID string, day time.Time) []models.AvailabilitySlot {
	date := day.Format(dateLayout)
	weekday := strings.ToLower(day.Weekday().String())

	var dated, recurring []models.AvailabilitySlot
	for _, s := range slots {
		if photographerID != "" && s.PhotographerID != "" && s.PhotographerID != photographerID {
			continue
		}
		switch {
		case s.Date != "":
			if s.Date == date {
				dated = append(dated, s)
			}
		case matchesWeekday(s.DayOfWeek, weekday):
			recurring = append(recurring, s)
		}
	}
	if len(dated) > 0 {
		return dated
	}
	return recurring
}

func matchesWeekday(dow, weekday string) bool {
	dow = strings.ToLower(strings.TrimSpace(dow))
	if len(dow) < 3 {
		return false
	}
	return strings.HasPrefix(weekday, dow)
}

// ShootsOnDate returns the photographer's shoots on day. Shoots are correlated by
// their parsed start time; the day label is only used when no start time exists.
func ShootsOnDate(assigned []models.ShootSummary, photographerID string, day, now time.Time) []models.ShootSummary {
	var out []models.ShootSummary
	for _, s := range assigned {
		if photographerID != "" && s.PhotographerID() != "" && s.PhotographerID() != photographerID {
			continue
		}
		var d time.Time
		var ok bool
		if s.StartTime != nil && !s.StartTime.IsZero() {
			d, ok = shoots.StartOfDay(s.StartTime.In(now.Location())), true
		} else {
			d, ok = shoots.ParseDayLabel(s.DayLabel, now)
		}
		if ok && d.Equal(day) {
			out = append(out, s)
		}
	}
	return out
}

type window struct {
	start, end int
	slot       models.AvailabilitySlot
}

func slotWindows(slots []models.AvailabilitySlot) []window {
	out := make([]window, 0, len(slots))
	for _, s := range slots {
		start, ok1 := ParseClock(s.StartTime)
		end, ok2 := ParseClock(s.EndTime)
		if !ok1 || !ok2 || end <= start {
			continue
		}
		out = append(out, window{start: start, end: end, slot: s})
	}
	return out
}

// BuildTimeline classifies each hour between 07:00 and 19:00 on date as past,
// booked, available or unavailable, in that priority.
func BuildTimeline(date time.Time, photographerID string, assigned []models.ShootSummary, slots []models.AvailabilitySlot, now time.Time) []models.TimelineSlot {
	day := shoots.StartOfDay(date.In(now.Location()))
	windows := slotWindows(SlotsForDate(slots, photographerID, day))
	dayShoots := ShootsOnDate(assigned, photographerID, day, now)

	timeline := make([]models.TimelineSlot, 0, DayEndHour-DayStartHour)
	for h := DayStartHour; h < DayEndHour; h++ {
		from, to := h*60, (h+1)*60
		slot := models.TimelineSlot{
			Start:  formatClock(from),
			End:    formatClock(to),
			Status: models.TimelineUnavailable,
		}

		switch {
		case day.Add(time.Duration(to) * time.Minute).Before(now):
			slot.Status = models.TimelinePast
		case bookShoot(&slot, dayShoots, from, to, now.Location()):
			slot.Status = models.TimelineBooked
		case anyWindow(windows, models.SlotBooked, func(w window) bool { return w.start < to && w.end > from }):
			slot.Status = models.TimelineBooked
		case anyWindow(windows, models.SlotAvailable, func(w window) bool { return w.start >= from && w.start < to }):
			slot.Status = models.TimelineAvailable
		}
		timeline = append(timeline, slot)
	}
	return timeline
}

func bookShoot(slot *models.TimelineSlot, dayShoots []models.ShootSummary, from, to int, loc *time.Location) bool {
	for _, s := range dayShoots {
		start, ok := shootStartMinute(s, loc)
		if !ok || start < from || start >= to {
			continue
		}
		label := s.TimeLabel
		if label == "" {
			label = formatClock(start)
		}
		slot.Booking = &models.BookingSummary{
			ShootID: s.ID,
			Address: s.FullAddress(),
			Client:  s.ClientName,
			Time:    label,
		}
		return true
	}
	return false
}

func anyWindow(ws []window, status string, hit func(window) bool) bool {
	for _, w := range ws {
		if strings.EqualFold(w.slot.Status, status) && hit(w) {
			return true
		}
	}
	return false
}

// NextAvailability scans today and then up to days forward for the earliest
// available slot. Slots are ordered by their "HH:MM" start string; slots that
// already ended today or that an assigned shoot starts inside are skipped.
func NextAvailability(photographerID string, slots []models.AvailabilitySlot, assigned []models.ShootSummary, now time.Time, days int) *models.NextAvailable {
	today := shoots.StartOfDay(now)
	nowMinute := now.Hour()*60 + now.Minute()

	for i := 0; i <= days; i++ {
		day := today.AddDate(0, 0, i)
		var open []window
		for _, w := range slotWindows(SlotsForDate(slots, photographerID, day)) {
			if strings.EqualFold(w.slot.Status, models.SlotAvailable) {
				open = append(open, w)
			}
		}
		sort.SliceStable(open, func(a, b int) bool { return open[a].slot.StartTime < open[b].slot.StartTime })
		dayShoots := ShootsOnDate(assigned, photographerID, day, now)

		for _, w := range open {
			if i == 0 && w.end <= nowMinute {
				continue
			}
			if coveredByShoot(w, dayShoots, now.Location()) {
				continue
			}
			return &models.NextAvailable{
				Date:      day.Format(dateLayout),
				StartTime: w.slot.StartTime,
				EndTime:   w.slot.EndTime,
				SlotID:    w.slot.ID,
			}
		}
	}
	return nil
}

func coveredByShoot(w window, dayShoots []models.ShootSummary, loc *time.Location) bool {
	for _, s := range dayShoots {
		if start, ok := shootStartMinute(s, loc); ok && start >= w.start && start < w.end {
			return true
		}
	}
	return false
}
