package analytics

import (
	"time"

	"linkpulse/internal/events"
)

const (
	// realtimeWindow is the event fetch window for the live view.
	realtimeWindow = time.Hour
	// activeVisitorWindow is the sub-window used for the active visitor
	// count; it is a client-side filter of the fetched hour, not a second
	// fetch.
	activeVisitorWindow = 5 * time.Minute
	// recentEventsLimit caps the recent events list in the realtime view.
	recentEventsLimit = 50
)

// ComputeRealtime builds the live-traffic view from a pre-fetched 1-hour
// event set ordered descending by timestamp. Active visitors are the
// distinct non-empty IP addresses seen within the trailing 5 minutes of
// "now".
func ComputeRealtime(evts []events.Event, now time.Time) RealtimeResult {
	activeCutoff := now.Add(-activeVisitorWindow)
	activeIPs := make(map[string]struct{})

	result := RealtimeResult{RecentEvents: []events.Event{}}
	for i := range evts {
		switch evts[i].EventType {
		case events.EventTypeClick:
			result.ClicksLastHour++
		case events.EventTypeConversion:
			result.ConversionsLastHour++
		}
		if ip := evts[i].IPAddress; ip != "" && !evts[i].Timestamp.Before(activeCutoff) {
			activeIPs[ip] = struct{}{}
		}
		if len(result.RecentEvents) < recentEventsLimit {
			result.RecentEvents = append(result.RecentEvents, evts[i])
		}
	}
	result.ActiveVisitors = len(activeIPs)
	return result
}
