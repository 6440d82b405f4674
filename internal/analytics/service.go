package analytics

import (
	"context"
	"log/slog"
	"time"

	"linkpulse/internal/events"
	"linkpulse/internal/links"
	"linkpulse/internal/pkg/async"
)

// EventSource yields the event sequence matching a filter, descending by
// timestamp. Fetch failures are surfaced to the caller unchanged; no retries
// happen at this layer.
type EventSource interface {
	Query(filters events.EventFilters) ([]events.Event, error)
}

// LinkDirectory lists the links owned by a creator.
type LinkDirectory interface {
	ListLinks(ownerID uint) ([]links.Link, error)
}

// Service assembles the full analytics result for a query: one fetch from
// the event source, then a concurrent fan-out of the pure per-dimension
// computations over the shared input slice.
type Service struct {
	source    EventSource
	directory LinkDirectory
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates an analytics service over the given collaborators.
func NewService(source EventSource, directory LinkDirectory, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		source:    source,
		directory: directory,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Snapshot computes every rollup for the filtered event set. The event slice
// is pulled once and shared read-only across the dimension tasks; link
// rankings additionally list the owner's links once, skipped entirely when
// the filter is already scoped to a single link.
func (s *Service) Snapshot(ctx context.Context, filters events.EventFilters) (*Result, error) {
	evts, err := s.source.Query(filters)
	if err != nil {
		return nil, err
	}

	var ownerLinks []links.Link
	if !filters.LinkScoped() {
		ownerLinks, err = s.directory.ListLinks(filters.OwnerID)
		if err != nil {
			return nil, err
		}
	}

	tasks := []async.Task{
		{Name: "totals", Execute: func() (interface{}, error) { return ComputeTotals(evts), nil }},
		{Name: "chart", Execute: func() (interface{}, error) { return ComputeChart(evts), nil }},
		{Name: "geography", Execute: func() (interface{}, error) { return ComputeGeography(evts), nil }},
		{Name: "devices", Execute: func() (interface{}, error) { return ComputeDevices(evts), nil }},
		{Name: "browsers", Execute: func() (interface{}, error) { return ComputeBrowsers(evts), nil }},
		{Name: "operatingSystems", Execute: func() (interface{}, error) { return ComputeOperatingSystems(evts), nil }},
		{Name: "resolutions", Execute: func() (interface{}, error) { return ComputeResolutions(evts), nil }},
		{Name: "campaigns", Execute: func() (interface{}, error) { return ComputeCampaigns(evts), nil }},
		{Name: "referrers", Execute: func() (interface{}, error) { return ComputeReferrers(evts), nil }},
		{Name: "hourlyPatterns", Execute: func() (interface{}, error) { return ComputeHourlyPatterns(evts), nil }},
		{Name: "funnel", Execute: func() (interface{}, error) { return ComputeFunnel(evts), nil }},
		{Name: "quality", Execute: func() (interface{}, error) { return ComputeQuality(evts), nil }},
		{Name: "linkRankings", Execute: func() (interface{}, error) {
			return ComputeLinkRankings(evts, ownerLinks, filters.LinkScoped()), nil
		}},
	}

	pool := async.NewPool(4)
	results := pool.Execute(ctx, tasks)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{}
	if v, ok := results["totals"].Data.(Totals); ok {
		result.Totals = v
	}
	if v, ok := results["chart"].Data.([]ChartPoint); ok {
		result.Chart = v
	}
	if v, ok := results["geography"].Data.([]GeoBucket); ok {
		result.Geography = v
	}
	if v, ok := results["devices"].Data.([]DeviceBucket); ok {
		result.Devices = v
	}
	if v, ok := results["browsers"].Data.([]BrowserBucket); ok {
		result.Browsers = v
	}
	if v, ok := results["operatingSystems"].Data.([]OSBucket); ok {
		result.OperatingSystems = v
	}
	if v, ok := results["resolutions"].Data.([]ResolutionBucket); ok {
		result.Resolutions = v
	}
	if v, ok := results["campaigns"].Data.([]UTMBucket); ok {
		result.Campaigns = v
	}
	if v, ok := results["referrers"].Data.([]ReferrerBucket); ok {
		result.Referrers = v
	}
	if v, ok := results["hourlyPatterns"].Data.([]HourlyBucket); ok {
		result.HourlyPatterns = v
	}
	if v, ok := results["funnel"].Data.([]FunnelStage); ok {
		result.Funnel = v
	}
	if v, ok := results["quality"].Data.(TrafficQuality); ok {
		result.Quality = v
	}
	if v, ok := results["linkRankings"].Data.([]LinkPerformance); ok {
		result.LinkRankings = v
	}

	s.logger.Debug("Assembled analytics snapshot",
		slog.Int("events", len(evts)),
		slog.Uint64("owner_id", uint64(filters.OwnerID)),
		slog.Bool("link_scoped", filters.LinkScoped()))

	return result, nil
}

// Realtime computes the live-traffic view: a single 1-hour fetch, with the
// 5-minute active visitor figure filtered from the same set. Every call
// recomputes from a fresh pull; staleness is bounded only by the caller's
// polling interval.
func (s *Service) Realtime(ownerID, linkID uint) (*RealtimeResult, error) {
	now := s.now()
	evts, err := s.source.Query(events.EventFilters{
		OwnerID: ownerID,
		LinkID:  linkID,
		From:    now.Add(-realtimeWindow),
		To:      now,
	})
	if err != nil {
		return nil, err
	}

	result := ComputeRealtime(evts, now)
	return &result, nil
}
