package shoots

import (
	"sort"
	"time"

	"shootdesk/models"
)

var pendingReviewStatuses = map[string]bool{
	"uploaded":  true,
	"editing":   true,
	"review":    true,
	"in_review": true,
}

// SortByStart orders shoots by start time, undated shoots last, ties stable.
func SortByStart(shoots []models.ShootSummary) {
	sort.SliceStable(shoots, func(i, j int) bool {
		a, b := shoots[i].StartTime, shoots[j].StartTime
		if (a == nil) != (b == nil) {
			return a != nil
		}
		if a == nil {
			return false
		}
		return a.Before(*b)
	})
}

func selectByStatus(shoots []models.ShootSummary, keep func(string) bool) []models.ShootSummary {
	out := make([]models.ShootSummary, 0)
	for _, s := range shoots {
		if keep(s.EffectiveStatus()) {
			out = append(out, s)
		}
	}
	SortByStart(out)
	return out
}

// RequestedShoots is the approval queue: shoots still in the requested state.
func RequestedShoots(shoots []models.ShootSummary) []models.ShootSummary {
	return selectByStatus(shoots, func(st string) bool { return st == "requested" })
}

// PendingReviews lists shoots whose media is uploaded but not yet delivered.
func PendingReviews(shoots []models.ShootSummary) []models.ShootSummary {
	return selectByStatus(shoots, func(st string) bool { return pendingReviewStatuses[st] })
}

// CountByStatus tallies effective statuses for the tab badges. "all" holds the total.
func CountByStatus(shoots []models.ShootSummary) map[string]int {
	counts := map[string]int{"all": len(shoots)}
	for _, s := range shoots {
		if st := s.EffectiveStatus(); st != "" {
			counts[st]++
		}
	}
	return counts
}

// Board filters and then groups shoots by day.
func Board(shoots []models.ShootSummary, f models.FiltersState, now time.Time, opts GroupOptions) models.GroupedShoots {
	return GroupByDay(Filter(shoots, f, now), now, opts)
}
