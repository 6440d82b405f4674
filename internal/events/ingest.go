package events

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"linkpulse/internal/links"
	"linkpulse/internal/pkg/geoip"
	"linkpulse/internal/pkg/useragent"
)

// TrackRequest is the raw payload accepted by the tracking endpoint before
// enrichment.
type TrackRequest struct {
	LinkID           uint      `json:"link_id"`
	EventType        EventType `json:"event_type"`
	IPAddress        string    `json:"ip_address"`
	UserAgent        string    `json:"user_agent"`
	ScreenResolution string    `json:"screen_resolution"`
	Referrer         string    `json:"referrer"`
	UTMSource        string    `json:"utm_source"`
	UTMMedium        string    `json:"utm_medium"`
	UTMCampaign      string    `json:"utm_campaign"`
}

// BuildEvent enriches a raw tracking request into a persistable Event:
// user-agent classification, IP geolocation, and bot flagging. Enrichment is
// best-effort; missing classifications stay empty rather than failing the
// event.
func BuildEvent(req TrackRequest, ownerID uint, timestamp time.Time) Event {
	parsed := useragent.Parse(req.UserAgent)
	location := geoip.Lookup(req.IPAddress)

	return Event{
		LinkID:           req.LinkID,
		OwnerID:          ownerID,
		EventType:        req.EventType,
		Timestamp:        timestamp.UTC(),
		IPAddress:        req.IPAddress,
		DeviceType:       parsed.DeviceType,
		Browser:          parsed.Browser,
		OS:               parsed.OS,
		ScreenResolution: req.ScreenResolution,
		Country:          location.Country,
		City:             location.City,
		Referrer:         req.Referrer,
		UTMSource:        req.UTMSource,
		UTMMedium:        req.UTMMedium,
		UTMCampaign:      req.UTMCampaign,
		IsBot:            parsed.Bot,
	}
}

// RecordEvent validates a tracking request against the link directory,
// enriches it, persists the event, and bumps the link's aggregate click
// counter for click events.
func RecordEvent(db *gorm.DB, req TrackRequest, timestamp time.Time) (*Event, error) {
	if !req.EventType.IsValid() {
		return nil, fmt.Errorf("invalid event type: %q", req.EventType)
	}

	link, err := links.GetLinkByID(db, req.LinkID)
	if err != nil {
		return nil, err
	}

	event := BuildEvent(req, link.OwnerID, timestamp)
	if err := db.Create(&event).Error; err != nil {
		return nil, fmt.Errorf("failed to persist event: %w", err)
	}

	if event.EventType == EventTypeClick {
		if err := links.IncrementClicks(db, link.ID); err != nil {
			return nil, fmt.Errorf("failed to increment link clicks: %w", err)
		}
	}

	return &event, nil
}
