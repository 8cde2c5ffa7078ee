package models

import (
	"strings"
	"time"
)

// PhotographerRef is the minimal person reference embedded in a shoot.
type PhotographerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ShootSummary identifies one scheduled or requested photography job.
type ShootSummary struct {
	ID               string           `json:"id"`
	Address          string           `json:"address"`
	City             string           `json:"city,omitempty"`
	State            string           `json:"state,omitempty"`
	Zip              string           `json:"zip,omitempty"`
	StartTime        *time.Time       `json:"start_time,omitempty"`
	DayLabel         string           `json:"day_label,omitempty"`  // server label such as "Today" or "Mar 5"
	TimeLabel        string           `json:"time_label,omitempty"` // e.g. "9:00 AM"
	Photographer     *PhotographerRef `json:"photographer,omitempty"`
	Editor           *PhotographerRef `json:"editor,omitempty"`
	ClientName       string           `json:"client_name,omitempty"`
	Services         []string         `json:"services,omitempty"`
	Status           string           `json:"status,omitempty"`
	WorkflowStatus   string           `json:"workflow_status,omitempty"`
	Priority         string           `json:"priority,omitempty"`
	IsFlagged        bool             `json:"is_flagged"`
	MissingRaw       bool             `json:"missing_raw"`
	MissingFinal     bool             `json:"missing_final"`
	DeliveryDeadline *time.Time       `json:"delivery_deadline,omitempty"`
	TotalQuote       float64          `json:"total_quote,omitempty"`
	TotalPaid        float64          `json:"total_paid,omitempty"`
	PaymentStatus    string           `json:"payment_status,omitempty"`
	Latitude         *float64         `json:"latitude,omitempty"`
	Longitude        *float64         `json:"longitude,omitempty"`
}

// EffectiveStatus returns the lowercased workflow status, or the plain status when
// no workflow status is set.
func (s ShootSummary) EffectiveStatus() string {
	st := s.WorkflowStatus
	if strings.TrimSpace(st) == "" {
		st = s.Status
	}
	return strings.ToLower(strings.TrimSpace(st))
}

// PhotographerID returns the assigned photographer's id or "".
func (s ShootSummary) PhotographerID() string {
	if s.Photographer == nil {
		return ""
	}
	return s.Photographer.ID
}

// FullAddress joins the street address with city, state and zip.
func (s ShootSummary) FullAddress() string {
	parts := []string{}
	for _, p := range []string{s.Address, s.City, strings.TrimSpace(s.State + " " + s.Zip)} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// ShootPatch is the body forwarded for approve/decline/modify/assign mutations.
type ShootPatch struct {
	Status         *string    `json:"status,omitempty"`
	WorkflowStatus *string    `json:"workflow_status,omitempty"`
	PhotographerID *string    `json:"photographer_id,omitempty"`
	StartTime      *time.Time `json:"start_time,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	DeclineReason  *string    `json:"decline_reason,omitempty"`
}

// DateRange values accepted by FiltersState.DateRange.
const (
	DateRangeAll      = "all"
	DateRangeToday    = "today"
	DateRangeTomorrow = "tomorrow"
	DateRangeNext7    = "next7"
	DateRangeWeek     = "week"
	DateRangeCustom   = "custom"
)

// CustomRange bounds a custom date range with "2006-01-02" (or RFC3339) strings.
// Empty bounds are unbounded.
type CustomRange struct {
	From string `json:"from,omitempty" form:"from"`
	To   string `json:"to,omitempty" form:"to"`
}

// PriorityFilters are the independent priority toggles of the shoot filter bar.
type PriorityFilters struct {
	HighPriority  bool `json:"highPriority" form:"highPriority"`
	MissingRaw    bool `json:"missingRaw" form:"missingRaw"`
	MissingEditor bool `json:"missingEditor" form:"missingEditor"`
	Overdue       bool `json:"overdue" form:"overdue"`
	Unpaid        bool `json:"unpaid" form:"unpaid"`
}

// FiltersState is the multi-field shoot filter. Zero values mean "no constraint".
type FiltersState struct {
	Statuses        []string        `json:"statuses" form:"statuses"`
	Client          string          `json:"client" form:"client"`
	Address         string          `json:"address" form:"address"`
	PhotographerIDs []string        `json:"photographerIds" form:"photographerIds"`
	UnassignedOnly  bool            `json:"unassignedOnly" form:"unassignedOnly"`
	Services        []string        `json:"services" form:"services"`
	DateRange       string          `json:"dateRange" form:"dateRange"`
	Custom          CustomRange     `json:"custom"`
	FlaggedOnly     bool            `json:"flaggedOnly" form:"flaggedOnly"`
	Priority        PriorityFilters `json:"priority"`
}

// Day buckets used by the grouped shoot timeline.
const (
	BucketPast   = "past"
	BucketToday  = "today"
	BucketFuture = "future"
)

// DayGroup is one labeled day bucket of shoots.
type DayGroup struct {
	Key    string         `json:"key"`
	Label  string         `json:"label"`
	Date   *time.Time     `json:"date,omitempty"` // nil for undated buckets
	Bucket string         `json:"bucket"`
	Shoots []ShootSummary `json:"shoots"`
}

// GroupedShoots is the past/today/future partition of day buckets.
type GroupedShoots struct {
	Past   []DayGroup `json:"past"`
	Today  []DayGroup `json:"today"`
	Future []DayGroup `json:"future"`
}

// All returns every bucket in display order.
func (g GroupedShoots) All() []DayGroup {
	out := make([]DayGroup, 0, len(g.Past)+len(g.Today)+len(g.Future))
	out = append(out, g.Past...)
	out = append(out, g.Today...)
	return append(out, g.Future...)
}
