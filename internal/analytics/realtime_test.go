package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkpulse/internal/events"
	"linkpulse/internal/testsupport"
)

func TestComputeRealtime(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	evts := []events.Event{
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithTimestamp(now.Add(-time.Minute)), testsupport.WithIP("192.0.2.1")),
		testsupport.MakeEvent(events.EventTypeConversion, testsupport.WithTimestamp(now.Add(-4*time.Minute)), testsupport.WithIP("192.0.2.2")),
		// Active window boundary is inclusive at exactly -5m.
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithTimestamp(now.Add(-5*time.Minute)), testsupport.WithIP("192.0.2.3")),
		// Inside the hour but outside the active window.
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithTimestamp(now.Add(-30*time.Minute)), testsupport.WithIP("192.0.2.4")),
	}

	result := ComputeRealtime(evts, now)
	assert.Equal(t, 3, result.ActiveVisitors)
	assert.Equal(t, 3, result.ClicksLastHour)
	assert.Equal(t, 1, result.ConversionsLastHour)
	assert.Len(t, result.RecentEvents, 4)
}

func TestComputeRealtimeRecentEventsCap(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	evts := make([]events.Event, 0, 60)
	for i := 0; i < 60; i++ {
		evts = append(evts, testsupport.MakeEvent(events.EventTypeView,
			testsupport.WithTimestamp(now.Add(-time.Duration(i)*time.Minute)),
			testsupport.WithIP(fmt.Sprintf("192.0.2.%d", i+1))))
	}

	result := ComputeRealtime(evts, now)
	require.Len(t, result.RecentEvents, 50)
	// Input is descending by timestamp; the cap keeps the newest ones.
	assert.Equal(t, now, result.RecentEvents[0].Timestamp)
	assert.Equal(t, evts[49].Timestamp, result.RecentEvents[49].Timestamp)
	// Minutes 0 through 5 are active (the -5m boundary is inclusive).
	assert.Equal(t, 6, result.ActiveVisitors)
}

func TestComputeRealtimeEmpty(t *testing.T) {
	result := ComputeRealtime(nil, time.Now())
	assert.Zero(t, result.ActiveVisitors)
	assert.NotNil(t, result.RecentEvents)
	assert.Empty(t, result.RecentEvents)
}
