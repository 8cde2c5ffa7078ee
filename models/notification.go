package models

import "time"

// Notification is a server-delivered dashboard notification.
type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind,omitempty"` // backend-supplied NotificationKind, when available
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
	ShootID   string    `json:"shoot_id,omitempty"`
	ActionURL string    `json:"action_url,omitempty"`
}

// Classification is the presentation bucket of a notification.
type Classification struct {
	Kind    string `json:"kind"`
	Icon    string `json:"icon"`
	Tone    string `json:"tone"`
	Urgency string `json:"urgency"`
}

// Approval describes the dialog opened instead of navigating.
type Approval struct {
	Type    string `json:"type"` // "cancellation" or "hold"
	ShootID string `json:"shootId"`
}

// ClassifiedNotification pairs a notification with its presentation data.
type ClassifiedNotification struct {
	Notification
	Classification Classification `json:"classification"`
	Approval       *Approval      `json:"approval,omitempty"`
}

// NotificationFeed is the recent/older split shown by the notification center.
type NotificationFeed struct {
	Recent      []ClassifiedNotification `json:"recent"`
	Older       []ClassifiedNotification `json:"older"`
	UnreadCount int                      `json:"unreadCount"`
}
