package availability

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"shootdesk/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday 10:30.
var now = time.Date(2026, 10, 14, 10, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	return time.Date(2026, 10, 14+offset, 0, 0, 0, 0, time.UTC)
}

func at(offset, hour, minute int) *time.Time {
	t := day(offset).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	return &t
}

func statuses(tl []models.TimelineSlot) []string {
	out := make([]string, 0, len(tl))
	for _, s := range tl {
		out = append(out, s.Status)
	}
	return out
}

func TestTimelineAlwaysHasTwelveClassifiedSlots(t *testing.T) {
	valid := map[string]bool{
		models.TimelinePast: true, models.TimelineBooked: true,
		models.TimelineAvailable: true, models.TimelineUnavailable: true,
	}
	slots := []models.AvailabilitySlot{
		{PhotographerID: "p1", DayOfWeek: "monday", StartTime: "09:00", EndTime: "12:00", Status: "available"},
		{PhotographerID: "p1", Date: "2026-10-14", StartTime: "13:00", EndTime: "15:00", Status: "booked"},
		{PhotographerID: "p1", StartTime: "bad", EndTime: "worse", Status: "available"},
	}
	for offset := -3; offset < 10; offset++ {
		tl := BuildTimeline(day(offset), "p1", nil, slots, now)
		require.Len(t, tl, 12)
		assert.Equal(t, "07:00", tl[0].Start)
		assert.Equal(t, "19:00", tl[11].End)
		for _, s := range tl {
			assert.True(t, valid[s.Status], "unexpected status %q", s.Status)
		}
	}
}

func TestTimelinePriority(t *testing.T) {
	slots := []models.AvailabilitySlot{
		{PhotographerID: "p1", Date: "2026-10-14", StartTime: "07:00", EndTime: "18:00", Status: "available"},
		{PhotographerID: "p1", Date: "2026-10-14", StartTime: "11:00", EndTime: "12:00", Status: "available"},
		{PhotographerID: "p1", Date: "2026-10-14", StartTime: "12:00", EndTime: "13:00", Status: "available"},
		{PhotographerID: "p1", Date: "2026-10-14", StartTime: "14:30", EndTime: "15:30", Status: "booked"},
		{PhotographerID: "p1", Date: "2026-10-14", StartTime: "15:00", EndTime: "16:00", Status: "available"},
		{PhotographerID: "p1", Date: "2026-10-14", StartTime: "16:00", EndTime: "17:00", Status: "available"},
	}
	assigned := []models.ShootSummary{
		{ID: "s1", Address: "1 Main St", City: "Austin", ClientName: "Acme", StartTime: at(0, 12, 15),
			Photographer: &models.PhotographerRef{ID: "p1"}},
		{ID: "s-other-day", StartTime: at(1, 16, 0), Photographer: &models.PhotographerRef{ID: "p1"}},
		{ID: "s-other-photog", StartTime: at(0, 17, 0), Photographer: &models.PhotographerRef{ID: "p2"}},
	}

	tl := BuildTimeline(day(0), "p1", assigned, slots, now)
	assert.Equal(t, []string{
		"past",        // 07
		"past",        // 08
		"past",        // 09 ended before 10:30
		"unavailable", // 10 long slot started earlier
		"available",   // 11 slot starts
		"booked",      // 12 via s1
		"unavailable", // 13
		"booked",      // 14 overlaps booked slot
		"booked",      // 15 booked slot wins
		"available",   // 16 slot starts
		"unavailable", // 17
		"unavailable", // 18 no slot
	}, statuses(tl))

	require.NotNil(t, tl[5].Booking)
	want := models.BookingSummary{ShootID: "s1", Address: "1 Main St, Austin", Client: "Acme", Time: "12:15"}
	if diff := cmp.Diff(want, *tl[5].Booking); diff != "" {
		t.Errorf("booking summary mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, tl[7].Booking)
}

func TestTimelineSpannedHoursAreUnavailable(t *testing.T) {
	slots := []models.AvailabilitySlot{
		{PhotographerID: "p1", Date: "2026-10-15", StartTime: "09:00", EndTime: "17:00", Status: "available"},
	}
	tl := BuildTimeline(day(1), "p1", nil, slots, now)
	assert.Equal(t, models.TimelineUnavailable, tl[1].Status)
	assert.Equal(t, models.TimelineAvailable, tl[2].Status)
	for _, s := range tl[3:] {
		assert.Equal(t, models.TimelineUnavailable, s.Status, "hour %s", s.Start)
	}
}

func TestTimelineDateSpecificOverridesRecurring(t *testing.T) {
	slots := []models.AvailabilitySlot{
		{DayOfWeek: "Thursday", StartTime: "08:00", EndTime: "17:00", Status: "available"},
		{Date: "2026-10-22", StartTime: "08:00", EndTime: "17:00", Status: "unavailable"},
	}
	// Oct 15 is a Thursday with no dated slot: the recurring window applies.
	tl := BuildTimeline(day(1), "p1", nil, slots, now)
	assert.Equal(t, models.TimelineAvailable, tl[1].Status)
	assert.Equal(t, models.TimelineUnavailable, tl[0].Status)

	// Oct 22 is also a Thursday, but the dated slot overrides it.
	tl = BuildTimeline(day(8), "p1", nil, slots, now)
	for _, s := range tl {
		assert.Equal(t, models.TimelineUnavailable, s.Status)
	}
}

func TestTimelineLabelFallbackOnlyWithoutStartTime(t *testing.T) {
	assigned := []models.ShootSummary{
		{ID: "label-only", DayLabel: "Tomorrow", TimeLabel: "9:00 am"},
		// Label says tomorrow but the timestamp is authoritative.
		{ID: "stamped", DayLabel: "Tomorrow", StartTime: at(2, 11, 0)},
	}
	tl := BuildTimeline(day(1), "p1", assigned, nil, now)
	require.NotNil(t, tl[2].Booking)
	assert.Equal(t, "label-only", tl[2].Booking.ShootID)
	assert.Equal(t, "9:00 am", tl[2].Booking.Time)
	assert.Equal(t, models.TimelineUnavailable, tl[4].Status)

	tl = BuildTimeline(day(2), "p1", assigned, nil, now)
	assert.Equal(t, "stamped", tl[4].Booking.ShootID)
}

func TestNextAvailability(t *testing.T) {
	slots := []models.AvailabilitySlot{
		{ID: "ended", Date: "2026-10-14", StartTime: "08:00", EndTime: "10:00", Status: "available"},
		{ID: "later", Date: "2026-10-14", StartTime: "16:00", EndTime: "17:00", Status: "available"},
		{ID: "running", Date: "2026-10-14", StartTime: "10:00", EndTime: "11:00", Status: "available"},
		{ID: "busy", Date: "2026-10-14", StartTime: "09:00", EndTime: "12:00", Status: "booked"},
	}
	next := NextAvailability("p1", slots, nil, now, 7)
	require.NotNil(t, next)
	assert.Equal(t, models.NextAvailable{Date: "2026-10-14", StartTime: "10:00", EndTime: "11:00", SlotID: "running"}, *next)

	recurring := []models.AvailabilitySlot{
		{ID: "sat", DayOfWeek: "saturday", StartTime: "09:00", EndTime: "12:00", Status: "available"},
		{ID: "fri-off", DayOfWeek: "friday", StartTime: "09:00", EndTime: "12:00", Status: "unavailable"},
	}
	next = NextAvailability("p1", recurring, nil, now, 7)
	require.NotNil(t, next)
	assert.Equal(t, "2026-10-17", next.Date)
	assert.Equal(t, "sat", next.SlotID)

	far := []models.AvailabilitySlot{{Date: "2026-10-30", StartTime: "09:00", EndTime: "10:00", Status: "available"}}
	assert.Nil(t, NextAvailability("p1", far, nil, now, 7))
}

func TestNextAvailabilitySkipsSlotsWithAssignedShoots(t *testing.T) {
	slots := []models.AvailabilitySlot{
		{ID: "taken", Date: "2026-10-14", StartTime: "11:00", EndTime: "13:00", Status: "available"},
		{ID: "free", Date: "2026-10-14", StartTime: "15:00", EndTime: "16:00", Status: "available"},
		{ID: "tomorrow", Date: "2026-10-15", StartTime: "09:00", EndTime: "10:00", Status: "available"},
	}
	assigned := []models.ShootSummary{
		{ID: "s1", StartTime: at(0, 12, 0), Photographer: &models.PhotographerRef{ID: "p1"}},
		{ID: "s-other", StartTime: at(0, 15, 0), Photographer: &models.PhotographerRef{ID: "p2"}},
	}
	next := NextAvailability("p1", slots, assigned, now, 7)
	require.NotNil(t, next)
	assert.Equal(t, "free", next.SlotID)

	assigned = append(assigned, models.ShootSummary{ID: "s2", StartTime: at(0, 15, 30)})
	next = NextAvailability("p1", slots, assigned, now, 7)
	require.NotNil(t, next)
	assert.Equal(t, models.NextAvailable{Date: "2026-10-15", StartTime: "09:00", EndTime: "10:00", SlotID: "tomorrow"}, *next)
}

func TestParseClock(t *testing.T) {
	m, ok := ParseClock("09:45")
	require.True(t, ok)
	assert.Equal(t, 585, m)
	m, ok = ParseClock("17:00:00")
	require.True(t, ok)
	assert.Equal(t, 1020, m)
	_, ok = ParseClock("noon")
	assert.False(t, ok)
}

type fakeSource struct {
	slots  []models.AvailabilitySlot
	shoots []models.ShootSummary
	query  url.Values
	err    error
}

func (f *fakeSource) PhotographerAvailability(_ context.Context, _, _ string) ([]models.AvailabilitySlot, error) {
	return f.slots, f.err
}

func (f *fakeSource) ListShoots(_ context.Context, _ string, q url.Values) ([]models.ShootSummary, error) {
	f.query = q
	return f.shoots, nil
}

func TestServiceTimeline(t *testing.T) {
	src := &fakeSource{
		slots:  []models.AvailabilitySlot{{Date: "2026-10-15", StartTime: "09:00", EndTime: "10:00", Status: "available"}},
		shoots: []models.ShootSummary{{ID: "s", StartTime: at(1, 13, 0)}},
	}
	svc := &DefaultAvailabilityService{Backend: src}

	tl, err := svc.Timeline(context.Background(), "tok", "p1", day(1), now)
	require.NoError(t, err)
	assert.Equal(t, "p1", src.query.Get("photographer_id"))
	assert.Equal(t, models.TimelineAvailable, tl[2].Status)
	assert.Equal(t, models.TimelineBooked, tl[6].Status)

	src.err = errors.New("boom")
	_, err = svc.Timeline(context.Background(), "tok", "p1", day(1), now)
	assert.ErrorContains(t, err, "failed to fetch availability")
}

func TestServiceNext(t *testing.T) {
	src := &fakeSource{
		slots: []models.AvailabilitySlot{
			{ID: "a", Date: "2026-10-14", StartTime: "11:00", EndTime: "12:00", Status: "available"},
			{ID: "b", Date: "2026-10-14", StartTime: "13:00", EndTime: "14:00", Status: "available"},
		},
		shoots: []models.ShootSummary{{ID: "s", StartTime: at(0, 11, 15)}},
	}
	svc := &DefaultAvailabilityService{Backend: src}

	next, err := svc.Next(context.Background(), "tok", "p1", now)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "b", next.SlotID)
	assert.Equal(t, "p1", src.query.Get("photographer_id"))
}
