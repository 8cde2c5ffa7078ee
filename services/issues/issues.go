package issues

import (
	"sort"
	"strings"

	"shootdesk/models"
)

// Severity levels for the issues card, most severe first.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

var severityRank = map[string]int{
	SeverityCritical: 0,
	SeverityHigh:     1,
	SeverityMedium:   2,
	SeverityLow:      3,
}

// SeverityFromStatus maps a client request status onto a severity level.
func SeverityFromStatus(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "urgent", "escalated", "critical":
		return SeverityCritical
	case "open", "new", "pending", "":
		return SeverityHigh
	case "in_progress", "in-progress", "acknowledged":
		return SeverityMedium
	default:
		return SeverityLow
	}
}

func issueTitle(r models.ClientRequest) string {
	if r.Address != "" {
		return r.Address
	}
	if r.ShootID != "" {
		return "Shoot " + r.ShootID
	}
	return "Client request"
}

// ToIssueItems prepares client requests for the issues card, most severe first,
// newest first within a level.
func ToIssueItems(requests []models.ClientRequest) []models.DashboardIssueItem {
	items := make([]models.DashboardIssueItem, 0, len(requests))
	for _, r := range requests {
		status := strings.ToLower(strings.TrimSpace(r.Status))
		if status == "" {
			status = "open"
		}
		items = append(items, models.DashboardIssueItem{
			ID:        r.ID,
			ShootID:   r.ShootID,
			Title:     issueTitle(r),
			Detail:    strings.TrimSpace(r.Note),
			Client:    r.ClientName,
			Status:    status,
			Severity:  SeverityFromStatus(r.Status),
			CreatedAt: r.CreatedAt,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := severityRank[items[i].Severity], severityRank[items[j].Severity]
		if ri != rj {
			return ri < rj
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items
}

var statusOrder = map[string]int{"open": 0, "in_progress": 1, "completed": 2}
var priorityOrder = map[string]int{"high": 0, "normal": 1, "low": 2}

func rank(m map[string]int, key string) int {
	if r, ok := m[strings.ToLower(key)]; ok {
		return r
	}
	return len(m)
}

// SortEditingRequests orders requests open, in progress then completed; then by
// priority high to low; then newest first. The input slice is not modified.
func SortEditingRequests(in []models.EditingRequest) []models.EditingRequest {
	out := append([]models.EditingRequest(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if sa, sb := rank(statusOrder, a.Status), rank(statusOrder, b.Status); sa != sb {
			return sa < sb
		}
		if pa, pb := rank(priorityOrder, a.Priority), rank(priorityOrder, b.Priority); pa != pb {
			return pa < pb
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return out
}
