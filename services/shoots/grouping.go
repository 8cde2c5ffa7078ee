package shoots

import (
	"sort"
	"strings"
	"time"

	"shootdesk/models"
)

// DefaultHistoryLimit caps the number of past day buckets shown with history on.
const DefaultHistoryLimit = 3

// UpcomingLabel buckets shoots with neither a start time nor a day label.
const UpcomingLabel = "Upcoming"

// GroupOptions controls which past buckets are returned.
type GroupOptions struct {
	IncludeHistory bool
	HistoryLimit   int
}

type dayBucket struct {
	group models.DayGroup
	day   time.Time
	dated bool
	order int
}

// dayKey derives the bucket key, label and day of a shoot.
func dayKey(s models.ShootSummary, now time.Time) (key, label string, day time.Time, dated bool) {
	if d, ok := ShootDate(s, now); ok {
		return d.Format(dateLayout), DayLabelFor(d, StartOfDay(now)), d, true
	}
	if l := strings.TrimSpace(s.DayLabel); l != "" {
		return "label:" + strings.ToLower(l), l, time.Time{}, false
	}
	return "upcoming", UpcomingLabel, time.Time{}, false
}

// GroupByDay partitions shoots into labeled day buckets split into past, today and
// future. Past buckets are strictly before the start of today, most recent first,
// and only returned when history is requested. Today and future run ascending with
// undated buckets last. Shoots keep their input order inside a bucket.
func GroupByDay(shoots []models.ShootSummary, now time.Time, opts GroupOptions) models.GroupedShoots {
	today := StartOfDay(now)
	index := make(map[string]*dayBucket)
	var buckets []*dayBucket

	for _, s := range shoots {
		key, label, day, dated := dayKey(s, now)
		b, ok := index[key]
		if !ok {
			b = &dayBucket{
				group: models.DayGroup{Key: key, Label: label},
				day:   day,
				dated: dated,
				order: len(buckets),
			}
			if dated {
				d := day
				b.group.Date = &d
			}
			index[key] = b
			buckets = append(buckets, b)
		}
		b.group.Shoots = append(b.group.Shoots, s)
	}

	var past, current, future []*dayBucket
	for _, b := range buckets {
		switch {
		case !b.dated:
			b.group.Bucket = models.BucketFuture
			future = append(future, b)
		case b.day.Before(today):
			b.group.Bucket = models.BucketPast
			past = append(past, b)
		case b.day.Equal(today):
			b.group.Bucket = models.BucketToday
			current = append(current, b)
		default:
			b.group.Bucket = models.BucketFuture
			future = append(future, b)
		}
	}

	sort.SliceStable(past, func(i, j int) bool { return past[i].day.After(past[j].day) })
	sortAscending(current)
	sortAscending(future)

	out := models.GroupedShoots{
		Past:   []models.DayGroup{},
		Today:  collect(current),
		Future: collect(future),
	}
	if opts.IncludeHistory {
		limit := opts.HistoryLimit
		if limit <= 0 {
			limit = DefaultHistoryLimit
		}
		if len(past) > limit {
			past = past[:limit]
		}
		out.Past = collect(past)
	}
	return out
}

// sortAscending orders dated buckets by day and pushes undated ones to the end,
// keeping first-appearance order among the undated.
func sortAscending(bs []*dayBucket) {
	sort.SliceStable(bs, func(i, j int) bool {
		a, b := bs[i], bs[j]
		if a.dated != b.dated {
			return a.dated
		}
		if !a.dated {
			return a.order < b.order
		}
		return a.day.Before(b.day)
	})
}

func collect(bs []*dayBucket) []models.DayGroup {
	out := make([]models.DayGroup, 0, len(bs))
	for _, b := range bs {
		out = append(out, b.group)
	}
	return out
}
