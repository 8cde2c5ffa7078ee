package models

import "time"

// EditingRequest is a ticket raised against a shoot.
type EditingRequest struct {
	ID          string    `json:"id"`
	ShootID     string    `json:"shoot_id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Priority    string    `json:"priority"` // low, normal, high
	Status      string    `json:"status"`   // open, in_progress, completed
	CreatedAt   time.Time `json:"created_at"`
}

// EditingRequestPatch is the body forwarded for editing request updates.
type EditingRequestPatch struct {
	Priority *string `json:"priority,omitempty" binding:"omitempty,oneof=low normal high"`
	Status   *string `json:"status,omitempty" binding:"omitempty,oneof=open in_progress completed"`
	Summary  *string `json:"summary,omitempty"`
}

// ClientRequest is a freeform note attached to a shoot.
type ClientRequest struct {
	ID         string    `json:"id"`
	ShootID    string    `json:"shoot_id"`
	Address    string    `json:"address,omitempty"`
	ClientName string    `json:"client_name,omitempty"`
	Note       string    `json:"note"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// DashboardIssueItem is a client request prepared for the issues card.
type DashboardIssueItem struct {
	ID        string    `json:"id"`
	ShootID   string    `json:"shootId"`
	Title     string    `json:"title"`
	Detail    string    `json:"detail"`
	Client    string    `json:"client,omitempty"`
	Status    string    `json:"status"`
	Severity  string    `json:"severity"`
	CreatedAt time.Time `json:"createdAt"`
}
