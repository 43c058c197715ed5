package activity

import "time"

// ActivityType represents the type of activity event
type ActivityType string

const (
	TypeRecordsLoaded             ActivityType = "records_loaded"
	TypeDateLookup                ActivityType = "date_lookup"
	TypeRecommendationServed      ActivityType = "recommendation_served"
	TypeRecommendationUnavailable ActivityType = "recommendation_unavailable"
	TypeExportGenerated           ActivityType = "export_generated"
)

// ActivityEntry represents an event in the activity log. Entries never carry
// profile content.
type ActivityEntry struct {
	ID           int64        `json:"id"`
	RequestID    *string      `json:"request_id,omitempty"`
	ActivityType ActivityType `json:"type"`
	Summary      string       `json:"summary"`
	Details      string       `json:"details,omitempty"` // JSON string
	CreatedAt    time.Time    `json:"created_at"`
}
