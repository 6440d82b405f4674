package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"linkpulse/internal/events"
	"linkpulse/internal/testsupport"
)

func TestGroupByPreservesFirstSeenOrder(t *testing.T) {
	evts := []events.Event{
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithGeo("Spain", "")),
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithGeo("Japan", "")),
		testsupport.MakeEvent(events.EventTypeView, testsupport.WithGeo("Spain", "")),
	}

	r := groupBy(evts, func(e *events.Event) (string, bool) { return e.Country, true })
	assert.Equal(t, []string{"Spain", "Japan"}, r.keys())
	assert.Equal(t, tally{clicks: 1, views: 1}, r.get("Spain"))
	assert.Equal(t, tally{}, r.get("never seen"))
}

func TestGroupBySkipsUnkeyedEvents(t *testing.T) {
	evts := []events.Event{
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithGeo("Spain", "")),
		testsupport.MakeEvent(events.EventTypeClick),
	}
	r := groupBy(evts, func(e *events.Event) (string, bool) { return e.Country, e.Country != "" })
	assert.Equal(t, []string{"Spain"}, r.keys())
}

func TestPercent(t *testing.T) {
	assert.InDelta(t, 50.0, percent(1, 2), 0.001)
	assert.InDelta(t, 100.0, percent(3, 3), 0.001)
	assert.Zero(t, percent(0, 0))
	assert.Zero(t, percent(5, 0))
	assert.InDelta(t, 33.333333, percent(1, 3), 0.001)
}
