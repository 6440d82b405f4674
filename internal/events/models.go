package events

import "time"

// EventType classifies a tracked visitor action.
type EventType string

const (
	EventTypeView       EventType = "view"
	EventTypeClick      EventType = "click"
	EventTypeConversion EventType = "conversion"
)

// IsValid reports whether the event type is one of the known types.
func (t EventType) IsValid() bool {
	switch t {
	case EventTypeView, EventTypeClick, EventTypeConversion:
		return true
	}
	return false
}

// Event represents a single recorded visitor action against a link.
// Events are written once at ingestion time and never mutated; optional
// attributes use the empty string when the upstream collector could not
// determine them.
type Event struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	LinkID           uint      `gorm:"index:idx_link_timestamp;not null" json:"link_id"`
	OwnerID          uint      `gorm:"index:idx_owner_timestamp;not null" json:"owner_id"`
	EventType        EventType `gorm:"index;size:16;not null" json:"event_type"`
	Timestamp        time.Time `gorm:"index:idx_link_timestamp;index:idx_owner_timestamp;not null" json:"timestamp"`
	IPAddress        string    `gorm:"index" json:"ip_address,omitempty"`
	DeviceType       string    `json:"device_type,omitempty"`
	Browser          string    `json:"browser,omitempty"`
	OS               string    `gorm:"column:os" json:"os,omitempty"`
	ScreenResolution string    `json:"screen_resolution,omitempty"`
	Country          string    `json:"country,omitempty"`
	City             string    `json:"city,omitempty"`
	Referrer         string    `json:"referrer,omitempty"`
	UTMSource        string    `json:"utm_source,omitempty"`
	UTMMedium        string    `json:"utm_medium,omitempty"`
	UTMCampaign      string    `json:"utm_campaign,omitempty"`
	IsBot            bool      `json:"is_bot"`
	CreatedAt        time.Time `json:"created_at"`
}

// HasUTM reports whether at least one UTM attribute is present.
func (e *Event) HasUTM() bool {
	return e.UTMSource != "" || e.UTMMedium != "" || e.UTMCampaign != ""
}
