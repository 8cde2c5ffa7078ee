package shoots

import (
	"strings"
	"time"

	"shootdesk/models"
)

// StatusCompleted is the only status that clears the overdue predicate.
const StatusCompleted = "completed"

// IsOverdue reports whether the delivery deadline passed on a shoot that is not completed.
// Shoots without a deadline are never overdue.
func IsOverdue(s models.ShootSummary, now time.Time) bool {
	if s.DeliveryDeadline == nil || s.DeliveryDeadline.IsZero() {
		return false
	}
	return s.DeliveryDeadline.Before(now) && s.EffectiveStatus() != StatusCompleted
}

// IsHighPriority reports flagged shoots and shoots marked high or urgent.
func IsHighPriority(s models.ShootSummary) bool {
	if s.IsFlagged {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(s.Priority)) {
	case "high", "urgent":
		return true
	}
	return false
}

// IsUnpaid compares totals when a quote exists and falls back to the payment status.
func IsUnpaid(s models.ShootSummary) bool {
	if s.TotalQuote > 0 {
		return s.TotalQuote-s.TotalPaid > 0.005
	}
	ps := strings.ToLower(strings.TrimSpace(s.PaymentStatus))
	return ps != "" && ps != "paid"
}

// MissingEditor reports shoots with no editor assigned.
func MissingEditor(s models.ShootSummary) bool {
	return s.Editor == nil || strings.TrimSpace(s.Editor.ID) == ""
}

// dateWindow is a half-open [from, to) range of day starts. A nil bound is open.
type dateWindow struct {
	from, to *time.Time
}

func (w dateWindow) contains(day time.Time) bool {
	if w.from != nil && day.Before(*w.from) {
		return false
	}
	if w.to != nil && !day.Before(*w.to) {
		return false
	}
	return true
}

// DateWindow resolves a date-range selector against now. The second return is false
// when the selector imposes no constraint.
func DateWindow(rangeName string, custom models.CustomRange, now time.Time) (from, to *time.Time, active bool) {
	today := StartOfDay(now)
	span := func(start time.Time, days int) (*time.Time, *time.Time, bool) {
		end := start.AddDate(0, 0, days)
		return &start, &end, true
	}

	switch strings.ToLower(strings.TrimSpace(rangeName)) {
	case models.DateRangeToday:
		return span(today, 1)
	case models.DateRangeTomorrow:
		return span(today.AddDate(0, 0, 1), 1)
	case models.DateRangeNext7:
		return span(today, 7)
	case models.DateRangeWeek:
		return span(weekStart(today), 7)
	case models.DateRangeCustom:
		var f, t *time.Time
		if d, ok := ParseDateBound(custom.From, now.Location()); ok {
			f = &d
		}
		if d, ok := ParseDateBound(custom.To, now.Location()); ok {
			end := d.AddDate(0, 0, 1)
			t = &end
		}
		if f == nil && t == nil {
			return nil, nil, false
		}
		return f, t, true
	}
	return nil, nil, false
}

type matcher struct {
	now           time.Time
	statuses      map[string]bool
	client        string
	address       string
	photographers map[string]bool
	unassigned    bool
	services      map[string]bool
	window        *dateWindow
	flagged       bool
	priority      models.PriorityFilters
}

func newMatcher(f models.FiltersState, now time.Time) *matcher {
	m := &matcher{
		now:           now,
		statuses:      lowerSet(f.Statuses, strings.ToLower),
		client:        strings.ToLower(strings.TrimSpace(f.Client)),
		address:       strings.ToLower(strings.TrimSpace(f.Address)),
		photographers: lowerSet(f.PhotographerIDs, func(s string) string { return s }),
		unassigned:    f.UnassignedOnly,
		services:      lowerSet(f.Services, NormalizeService),
		flagged:       f.FlaggedOnly,
		priority:      f.Priority,
	}
	if from, to, ok := DateWindow(f.DateRange, f.Custom, now); ok {
		m.window = &dateWindow{from: from, to: to}
	}
	return m
}

func lowerSet(values []string, norm func(string) string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if v = norm(strings.TrimSpace(v)); v != "" {
			set[v] = true
		}
	}
	return set
}

func (m *matcher) match(s models.ShootSummary) bool {
	if len(m.statuses) > 0 && !m.statuses[s.EffectiveStatus()] {
		return false
	}
	if m.client != "" && !strings.Contains(strings.ToLower(s.ClientName), m.client) {
		return false
	}
	if m.address != "" && !strings.Contains(strings.ToLower(s.FullAddress()), m.address) {
		return false
	}
	if len(m.photographers) > 0 && !m.photographers[s.PhotographerID()] {
		return false
	}
	if m.unassigned && s.PhotographerID() != "" {
		return false
	}
	if len(m.services) > 0 && !m.hasService(s) {
		return false
	}
	if m.window != nil {
		day, ok := ShootDate(s, m.now)
		if !ok || !m.window.contains(day) {
			return false
		}
	}
	if m.flagged && !s.IsFlagged {
		return false
	}
	return m.matchPriority(s)
}

func (m *matcher) hasService(s models.ShootSummary) bool {
	for _, svc := range s.Services {
		if m.services[NormalizeService(svc)] {
			return true
		}
	}
	return false
}

func (m *matcher) matchPriority(s models.ShootSummary) bool {
	p := m.priority
	switch {
	case p.HighPriority && !IsHighPriority(s):
		return false
	case p.MissingRaw && !s.MissingRaw:
		return false
	case p.MissingEditor && !MissingEditor(s):
		return false
	case p.Overdue && !IsOverdue(s, m.now):
		return false
	case p.Unpaid && !IsUnpaid(s):
		return false
	}
	return true
}

// Filter returns the shoots satisfying every active filter dimension, in input order.
func Filter(shoots []models.ShootSummary, f models.FiltersState, now time.Time) []models.ShootSummary {
	m := newMatcher(f, now)
	out := make([]models.ShootSummary, 0, len(shoots))
	for _, s := range shoots {
		if m.match(s) {
			out = append(out, s)
		}
	}
	return out
}
