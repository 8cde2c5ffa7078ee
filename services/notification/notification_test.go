package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"shootdesk/backend"
	"shootdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func TestClassifyKeywordOrder(t *testing.T) {
	cases := map[string]string{
		"Cancellation requested for 12 Oak St": "cancellation",
		"Shoot declined by photographer":       "declined",
		"Hold request pending":                 "hold",
		"New shoot request":                    "request",
		"Edit request approved":                "request",
		"Booking approved":                     "approved",
		"Shoot scheduled for Friday":           "scheduled",
		"Editing completed":                    "completed",
		"Payment received":                     "payment",
		"Photos uploaded":                      "upload",
		"Edits ready":                          "editing",
		"New message from client":              "message",
		"Welcome aboard":                       "info",
	}
	for title, kind := range cases {
		assert.Equal(t, kind, Classify(models.Notification{Title: title}).Kind, title)
	}
}

func TestClassifyPrefersBackendKind(t *testing.T) {
	c := Classify(models.Notification{Kind: "Payment", Title: "Shoot cancelled"})
	assert.Equal(t, "payment", c.Kind)
	assert.Equal(t, "credit-card", c.Icon)

	c = Classify(models.Notification{Kind: "brand_new_kind", Title: "Shoot cancelled"})
	assert.Equal(t, "cancellation", c.Kind)
}

func TestApprovalFor(t *testing.T) {
	a := ApprovalFor(models.Notification{Title: "Cancellation request", ShootID: "s1"})
	require.NotNil(t, a)
	assert.Equal(t, models.Approval{Type: ApprovalCancellation, ShootID: "s1"}, *a)

	a = ApprovalFor(models.Notification{Title: "Hold requested", ActionURL: "/admin/shoots/s42?tab=hold"})
	require.NotNil(t, a)
	assert.Equal(t, models.Approval{Type: ApprovalHold, ShootID: "s42"}, *a)

	assert.Nil(t, ApprovalFor(models.Notification{Title: "Shoot cancelled", ShootID: "s1"}))
	assert.Nil(t, ApprovalFor(models.Notification{Title: "Cancellation request"}))
	assert.Nil(t, ApprovalFor(models.Notification{Title: "Shoot scheduled", ShootID: "s1"}))

	a = ApprovalFor(models.Notification{Title: "Cancellation awaiting approval", ShootID: "s7"})
	require.NotNil(t, a)
	assert.Equal(t, ApprovalCancellation, a.Type)

	// Decided requests navigate instead of reopening the dialog.
	for _, title := range []string{
		"Cancellation approved",
		"Hold approved for 12 Oak St",
		"Cancellation request rejected",
		"Hold request declined",
	} {
		assert.Nil(t, ApprovalFor(models.Notification{Title: title, ShootID: "s1"}), title)
	}
}

func TestPartition(t *testing.T) {
	items := []models.Notification{
		{ID: "old", CreatedAt: now.Add(-2 * time.Hour), Read: true},
		{ID: "edge", CreatedAt: now.Add(-30 * time.Minute)},
		{ID: "fresh", CreatedAt: now.Add(-time.Minute)},
		{ID: "stale", CreatedAt: now.Add(-31 * time.Minute)},
	}
	feed := Partition(items, now, 30*time.Minute)

	var recent, older []string
	for _, n := range feed.Recent {
		recent = append(recent, n.ID)
	}
	for _, n := range feed.Older {
		older = append(older, n.ID)
	}
	assert.Equal(t, []string{"fresh", "edge"}, recent)
	assert.Equal(t, []string{"stale", "old"}, older)
	assert.Equal(t, 3, feed.UnreadCount)
}

type fakeBackend struct {
	items  []models.Notification
	action backend.ShootAction
	id     string
	err    error
}

func (f *fakeBackend) ListNotifications(context.Context, string) ([]models.Notification, error) {
	return f.items, f.err
}

func (f *fakeBackend) ResolveShootRequest(_ context.Context, _, id string, action backend.ShootAction) error {
	f.id, f.action = id, action
	return f.err
}

func TestResolve(t *testing.T) {
	fb := &fakeBackend{}
	svc, err := NewDefaultNotificationService(fb)
	require.NoError(t, err)

	require.NoError(t, svc.Resolve(context.Background(), "tok", "s1", ApprovalHold, false))
	assert.Equal(t, backend.RejectHold, fb.action)
	assert.Equal(t, "s1", fb.id)

	require.NoError(t, svc.Resolve(context.Background(), "tok", "s2", ApprovalCancellation, true))
	assert.Equal(t, backend.ApproveCancellation, fb.action)

	assert.Error(t, svc.Resolve(context.Background(), "tok", "s3", "refund", true))
	assert.Error(t, svc.Resolve(context.Background(), "tok", "", ApprovalHold, true))

	fb.err = errors.New("down")
	assert.ErrorContains(t, svc.Resolve(context.Background(), "tok", "s1", ApprovalHold, true), "down")
}

func TestFeed(t *testing.T) {
	fb := &fakeBackend{items: []models.Notification{{ID: "n", Title: "Payment received", CreatedAt: now}}}
	svc, err := NewDefaultNotificationService(fb)
	require.NoError(t, err)

	feed, err := svc.Feed(context.Background(), "tok", now)
	require.NoError(t, err)
	require.Len(t, feed.Recent, 1)
	assert.Equal(t, "payment", feed.Recent[0].Classification.Kind)
}
