package notification

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"shootdesk/models"
)

// Approval dialog types.
const (
	ApprovalCancellation = "cancellation"
	ApprovalHold         = "hold"
)

type kindSpec struct {
	keyword string
	class   models.Classification
}

// keywordKinds is checked in order against the lowercased title; first match wins.
var keywordKinds = []kindSpec{
	{"cancel", models.Classification{Kind: "cancellation", Icon: "x-circle", Tone: "red", Urgency: "high"}},
	{"decline", models.Classification{Kind: "declined", Icon: "ban", Tone: "red", Urgency: "high"}},
	{"hold", models.Classification{Kind: "hold", Icon: "pause-circle", Tone: "orange", Urgency: "high"}},
	{"request", models.Classification{Kind: "request", Icon: "inbox", Tone: "amber", Urgency: "medium"}},
	{"approved", models.Classification{Kind: "approved", Icon: "check-circle", Tone: "green", Urgency: "low"}},
	{"scheduled", models.Classification{Kind: "scheduled", Icon: "calendar", Tone: "blue", Urgency: "low"}},
	{"completed", models.Classification{Kind: "completed", Icon: "check-circle", Tone: "green", Urgency: "low"}},
	{"payment", models.Classification{Kind: "payment", Icon: "credit-card", Tone: "emerald", Urgency: "medium"}},
	{"upload", models.Classification{Kind: "upload", Icon: "upload", Tone: "indigo", Urgency: "low"}},
	{"edit", models.Classification{Kind: "editing", Icon: "edit", Tone: "purple", Urgency: "low"}},
	{"message", models.Classification{Kind: "message", Icon: "message-circle", Tone: "blue", Urgency: "low"}},
}

var infoClass = models.Classification{Kind: "info", Icon: "bell", Tone: "gray", Urgency: "low"}

var kindsByName = func() map[string]models.Classification {
	m := map[string]models.Classification{infoClass.Kind: infoClass}
	for _, k := range keywordKinds {
		m[k.class.Kind] = k.class
	}
	return m
}()

var shootPathRe = regexp.MustCompile(`/shoots/([^/?#]+)`)

// Classify maps a notification to its icon, tone and urgency. A backend-supplied
// kind is trusted when recognised; otherwise the title is matched by keyword.
func Classify(n models.Notification) models.Classification {
	if c, ok := kindsByName[strings.ToLower(strings.TrimSpace(n.Kind))]; ok {
		return c
	}
	title := strings.ToLower(n.Title)
	for _, k := range keywordKinds {
		if strings.Contains(title, k.keyword) {
			return k.class
		}
	}
	return infoClass
}

// ShootIDOf returns the notification's shoot id, parsing it from the action URL
// when the backend did not send one.
func ShootIDOf(n models.Notification) string {
	if id := strings.TrimSpace(n.ShootID); id != "" {
		return id
	}
	if m := shootPathRe.FindStringSubmatch(n.ActionURL); m != nil {
		return m[1]
	}
	return ""
}

// Titles that mark a request as still waiting on staff, and those that mark it
// as already decided.
var (
	pendingWords  = []string{"request", "awaiting approval", "pending"}
	resolvedWords = []string{"approved", "rejected", "declined"}
)

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// ApprovalFor returns the approval dialog for cancellation and hold requests, or nil
// when clicking the notification should navigate instead.
func ApprovalFor(n models.Notification) *models.Approval {
	c := Classify(n)
	if c.Kind != "cancellation" && c.Kind != "hold" {
		return nil
	}
	title := strings.ToLower(n.Title)
	if containsAny(title, resolvedWords) {
		return nil
	}
	if !containsAny(title+" "+strings.ToLower(n.ActionURL), pendingWords) {
		return nil
	}
	id := ShootIDOf(n)
	if id == "" {
		return nil
	}
	t := ApprovalCancellation
	if c.Kind == "hold" {
		t = ApprovalHold
	}
	return &models.Approval{Type: t, ShootID: id}
}

// Partition splits notifications into those created within window of now and the
// rest, each newest first.
func Partition(items []models.Notification, now time.Time, window time.Duration) models.NotificationFeed {
	feed := models.NotificationFeed{
		Recent: []models.ClassifiedNotification{},
		Older:  []models.ClassifiedNotification{},
	}
	for _, n := range items {
		cn := models.ClassifiedNotification{
			Notification:   n,
			Classification: Classify(n),
			Approval:       ApprovalFor(n),
		}
		if !n.Read {
			feed.UnreadCount++
		}
		if now.Sub(n.CreatedAt) <= window {
			feed.Recent = append(feed.Recent, cn)
		} else {
			feed.Older = append(feed.Older, cn)
		}
	}
	newest := func(list []models.ClassifiedNotification) {
		sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	}
	newest(feed.Recent)
	newest(feed.Older)
	return feed
}
