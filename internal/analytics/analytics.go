// Package analytics derives aggregate statistical views from a collection of
// raw link traffic events (views, clicks, conversions).
//
// The package is organized into focused modules:
//   - analytics.go: result and bucket definitions
//   - rollup.go: the shared group-by/count/percentage primitive
//   - dimensions.go: per-dimension breakdowns (chart, geo, device, browser, OS, resolution, UTM, referrer)
//   - temporal.go: hour-of-day x day-of-week patterns
//   - funnel.go: view -> click -> conversion stage counts and drop-off
//   - quality.go: bot/human split and suspicious IP detection
//   - ranking.go: per-link performance metrics with rank assignment
//   - realtime.go: short-window live counters
//   - totals.go: summary totals shared by the dashboard
//   - service.go: fetch-once, fan-out orchestration
//
// Every computation here is a pure function of its input event slice: no I/O,
// no shared state, and deterministic bucket ordering, so re-running on the
// same input always yields identical output.
package analytics

import (
	"linkpulse/internal/events"
)

// ChartPoint is one calendar date (UTC) of traffic counts.
type ChartPoint struct {
	Date        string `json:"date"`
	Clicks      int    `json:"clicks"`
	Views       int    `json:"views"`
	Conversions int    `json:"conversions"`
}

// CityBucket is one city's totals nested under a country.
type CityBucket struct {
	City        string `json:"city"`
	Clicks      int    `json:"clicks"`
	Conversions int    `json:"conversions"`
}

// GeoBucket is one country's totals with nested city breakdown.
type GeoBucket struct {
	Country        string       `json:"country"`
	CountryCode    string       `json:"country_code"`
	Clicks         int          `json:"clicks"`
	Conversions    int          `json:"conversions"`
	ConversionRate float64      `json:"conversion_rate"`
	Cities         []CityBucket `json:"cities"`
}

// DeviceBucket is one device type's share of traffic.
type DeviceBucket struct {
	DeviceType string  `json:"device_type"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// BrowserBucket is one browser's share of traffic. Version granularity is not
// tracked; the field is carried for API compatibility and is always null.
type BrowserBucket struct {
	Browser    string  `json:"browser"`
	Version    *string `json:"version"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// OSBucket is one operating system's share of traffic.
type OSBucket struct {
	OS         string  `json:"os"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ResolutionBucket is one screen resolution's share of traffic.
type ResolutionBucket struct {
	Resolution string  `json:"resolution"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// UTMBucket is one (source, medium, campaign) triple's totals. Missing
// attributes are reported as the literal "none".
type UTMBucket struct {
	Source         string  `json:"source"`
	Medium         string  `json:"medium"`
	Campaign       string  `json:"campaign"`
	Clicks         int     `json:"clicks"`
	Conversions    int     `json:"conversions"`
	ConversionRate float64 `json:"conversion_rate"`
}

// ReferrerBucket is one referrer's totals; events without a referrer fall
// into the literal "direct" bucket.
type ReferrerBucket struct {
	Referrer    string `json:"referrer"`
	Clicks      int    `json:"clicks"`
	Conversions int    `json:"conversions"`
	IsDirect    bool   `json:"is_direct"`
}

// HourlyBucket is one observed (day-of-week, hour) pair of traffic counts.
// DayOfWeek follows time.Weekday numbering (0 = Sunday), both in UTC.
type HourlyBucket struct {
	Hour        int `json:"hour"`
	DayOfWeek   int `json:"day_of_week"`
	Clicks      int `json:"clicks"`
	Conversions int `json:"conversions"`
}

// FunnelStage is one stage of the view -> click -> conversion funnel.
type FunnelStage struct {
	Stage       events.EventType `json:"stage"`
	Count       int              `json:"count"`
	DropoffRate float64          `json:"dropoff_rate"`
}

// TrafficQuality summarizes the bot/human composition of the event set.
type TrafficQuality struct {
	TotalTraffic  int      `json:"total_traffic"`
	BotTraffic    int      `json:"bot_traffic"`
	HumanTraffic  int      `json:"human_traffic"`
	BotPercentage float64  `json:"bot_percentage"`
	SuspiciousIPs []string `json:"suspicious_ips"`
	QualityScore  float64  `json:"quality_score"`
}

// LinkPerformance is one link's metrics in the owner-wide ranking.
type LinkPerformance struct {
	LinkID         uint    `json:"link_id"`
	Domain         string  `json:"domain"`
	Path           string  `json:"path"`
	Clicks         int     `json:"clicks"`
	Conversions    int     `json:"conversions"`
	ConversionRate float64 `json:"conversion_rate"`
	CTR            float64 `json:"ctr"`
	HealthScore    float64 `json:"health_score"`
	Rank           int     `json:"rank"`
}

// Totals holds the headline counters for the filtered event set.
type Totals struct {
	TotalClicks      int     `json:"total_clicks"`
	TotalViews       int     `json:"total_views"`
	TotalConversions int     `json:"total_conversions"`
	UniqueVisitors   int     `json:"unique_visitors"`
	ConversionRate   float64 `json:"conversion_rate"`
}

// Result bundles every derived view for a single analytics query. It is
// assembled fresh per request and never persisted.
type Result struct {
	Totals           Totals             `json:"totals"`
	Chart            []ChartPoint       `json:"chart"`
	Geography        []GeoBucket        `json:"geography"`
	Devices          []DeviceBucket     `json:"devices"`
	Browsers         []BrowserBucket    `json:"browsers"`
	OperatingSystems []OSBucket         `json:"operating_systems"`
	Resolutions      []ResolutionBucket `json:"resolutions"`
	Campaigns        []UTMBucket        `json:"campaigns"`
	Referrers        []ReferrerBucket   `json:"referrers"`
	HourlyPatterns   []HourlyBucket     `json:"hourly_patterns"`
	Funnel           []FunnelStage      `json:"funnel"`
	Quality          TrafficQuality     `json:"quality"`
	LinkRankings     []LinkPerformance  `json:"link_rankings"`
}

// RealtimeResult is the lightweight live-traffic view.
type RealtimeResult struct {
	ActiveVisitors      int            `json:"active_visitors"`
	RecentEvents        []events.Event `json:"recent_events"`
	ClicksLastHour      int            `json:"clicks_last_hour"`
	ConversionsLastHour int            `json:"conversions_last_hour"`
}
