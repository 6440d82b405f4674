package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"linkpulse/internal/events"
	"linkpulse/internal/testsupport"
)

func TestComputeTotals(t *testing.T) {
	evts := []events.Event{
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithIP("192.0.2.1")),
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithIP("192.0.2.1")),
		testsupport.MakeEvent(events.EventTypeConversion, testsupport.WithIP("192.0.2.1")),
	}

	totals := ComputeTotals(evts)
	assert.Equal(t, 2, totals.TotalClicks)
	assert.Zero(t, totals.TotalViews)
	assert.Equal(t, 1, totals.TotalConversions)
	assert.Equal(t, 1, totals.UniqueVisitors)
	assert.InDelta(t, 50.0, totals.ConversionRate, 0.001)
}

func TestComputeTotalsEmpty(t *testing.T) {
	totals := ComputeTotals(nil)
	assert.Zero(t, totals.TotalClicks)
	assert.Zero(t, totals.UniqueVisitors)
	assert.Zero(t, totals.ConversionRate)
}

func TestComputeTotalsIgnoresEmptyIPs(t *testing.T) {
	evts := []events.Event{
		testsupport.MakeEvent(events.EventTypeView),
		testsupport.MakeEvent(events.EventTypeView, testsupport.WithIP("192.0.2.5")),
		testsupport.MakeEvent(events.EventTypeView, testsupport.WithIP("192.0.2.6")),
	}
	totals := ComputeTotals(evts)
	assert.Equal(t, 2, totals.UniqueVisitors)
	assert.Equal(t, 3, totals.TotalViews)
}
