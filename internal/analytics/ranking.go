package analytics

import (
	"math"
	"sort"

	"linkpulse/internal/events"
	"linkpulse/internal/links"
)

// defaultHealthScore is reported for links with no click traffic: a fixed
// midpoint rather than a judgement either way.
const defaultHealthScore = 50

// ComputeLinkRankings derives per-link performance metrics across the
// owner's links. The already-fetched event set is partitioned by link ID in
// memory; no per-link re-fetch happens here. Links sort descending by clicks
// and ranks are assigned as the 1-based position in that order, so a link's
// rank is purely positional.
//
// When the event filter is already scoped to a single link the ranking is
// meaningless, so the result is an empty list, not an error.
func ComputeLinkRankings(evts []events.Event, ownerLinks []links.Link, linkScoped bool) []LinkPerformance {
	if linkScoped {
		return []LinkPerformance{}
	}

	byLink := make(map[uint]*tally, len(ownerLinks))
	for i := range evts {
		t, ok := byLink[evts[i].LinkID]
		if !ok {
			t = &tally{}
			byLink[evts[i].LinkID] = t
		}
		switch evts[i].EventType {
		case events.EventTypeClick:
			t.clicks++
		case events.EventTypeView:
			t.views++
		case events.EventTypeConversion:
			t.conversions++
		}
	}

	rankings := make([]LinkPerformance, 0, len(ownerLinks))
	for _, link := range ownerLinks {
		var t tally
		if lt, ok := byLink[link.ID]; ok {
			t = *lt
		}
		convRate := percent(t.conversions, t.clicks)
		health := float64(defaultHealthScore)
		if t.clicks > 0 {
			health = math.Min(100, convRate*10)
		}
		rankings = append(rankings, LinkPerformance{
			LinkID:         link.ID,
			Domain:         link.Domain,
			Path:           link.Path,
			Clicks:         t.clicks,
			Conversions:    t.conversions,
			ConversionRate: convRate,
			CTR:            percent(t.clicks, t.views),
			HealthScore:    health,
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool { return rankings[i].Clicks > rankings[j].Clicks })
	for i := range rankings {
		rankings[i].Rank = i + 1
	}
	return rankings
}
