package models

// Availability slot statuses as reported by the backend.
const (
	SlotAvailable   = "available"
	SlotUnavailable = "unavailable"
	SlotBooked      = "booked"
)

// Timeline slot statuses. Every hourly slot carries exactly one.
const (
	TimelinePast        = "past"
	TimelineBooked      = "booked"
	TimelineAvailable   = "available"
	TimelineUnavailable = "unavailable"
)

// AvailabilitySlot is a photographer's declared time window, either on a
// specific date or recurring on a weekday.
type AvailabilitySlot struct {
	ID             string `json:"id"`
	PhotographerID string `json:"photographer_id"`
	Date           string `json:"date,omitempty"`        // "2006-01-02"; empty for recurring slots
	DayOfWeek      string `json:"day_of_week,omitempty"` // e.g. "monday"
	StartTime      string `json:"start_time"`            // zero-padded "HH:MM"
	EndTime        string `json:"end_time"`              // zero-padded "HH:MM"
	Status         string `json:"status"`
}

// BookingSummary is the denormalized shoot shown on a booked timeline slot.
type BookingSummary struct {
	ShootID string `json:"shootId"`
	Address string `json:"address"`
	Client  string `json:"client"`
	Time    string `json:"time"`
}

// TimelineSlot is one hour of a photographer's day timeline.
type TimelineSlot struct {
	Start   string          `json:"start"` // "HH:MM"
	End     string          `json:"end"`
	Status  string          `json:"status"`
	Booking *BookingSummary `json:"booking,omitempty"`
}

// NextAvailable is the earliest open slot found by the forward search.
type NextAvailable struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	SlotID    string `json:"slotId,omitempty"`
}
