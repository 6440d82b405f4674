package analytics

import (
	"linkpulse/internal/events"
)

// ComputeTotals derives the headline counters for the filtered event set.
// Unique visitors are counted as distinct non-empty IP addresses; the
// conversion rate is conversions over clicks, zero-guarded.
func ComputeTotals(evts []events.Event) Totals {
	var totals Totals
	seenIPs := make(map[string]struct{})
	for i := range evts {
		switch evts[i].EventType {
		case events.EventTypeClick:
			totals.TotalClicks++
		case events.EventTypeView:
			totals.TotalViews++
		case events.EventTypeConversion:
			totals.TotalConversions++
		}
		if ip := evts[i].IPAddress; ip != "" {
			seenIPs[ip] = struct{}{}
		}
	}
	totals.UniqueVisitors = len(seenIPs)
	totals.ConversionRate = percent(totals.TotalConversions, totals.TotalClicks)
	return totals
}
