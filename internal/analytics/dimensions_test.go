package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkpulse/internal/events"
	"linkpulse/internal/testsupport"
)

func TestComputeChart(t *testing.T) {
	day1 := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 3, 18, 30, 0, 0, time.UTC)
	evts := []events.Event{
		testsupport.MakeEvent(events.EventTypeView, testsupport.WithTimestamp(day2)),
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithTimestamp(day1)),
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithTimestamp(day1.Add(2*time.Hour))),
		testsupport.MakeEvent(events.EventTypeConversion, testsupport.WithTimestamp(day2)),
	}

	points := ComputeChart(evts)
	require.Len(t, points, 2)

	assert.Equal(t, "2025-06-02", points[0].Date)
	assert.Equal(t, 2, points[0].Clicks)
	assert.Equal(t, 0, points[0].Views)
	assert.Equal(t, "2025-06-03", points[1].Date)
	assert.Equal(t, 1, points[1].Views)
	assert.Equal(t, 1, points[1].Conversions)
}

func TestComputeChartEmpty(t *testing.T) {
	points := ComputeChart(nil)
	assert.Empty(t, points)
}

func TestComputeGeography(t *testing.T) {
	evts := []events.Event{
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithGeo("Germany", "Berlin")),
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithGeo("Germany", "Munich")),
		testsupport.MakeEvent(events.EventTypeConversion, testsupport.WithGeo("Germany", "Berlin")),
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithGeo("Spain", "")),
		testsupport.MakeEvent(events.EventTypeClick), // no country, skipped
	}

	buckets := ComputeGeography(evts)
	require.Len(t, buckets, 2)

	germany := buckets[0]
	assert.Equal(t, "Germany", germany.Country)
	assert.Equal(t, "GE", germany.CountryCode)
	assert.Equal(t, 2, germany.Clicks)
	assert.Equal(t, 1, germany.Conversions)
	assert.InDelta(t, 50.0, germany.ConversionRate, 0.001)
	require.Len(t, germany.Cities, 2)
	assert.Equal(t, "Berlin", germany.Cities[0].City)
	assert.Equal(t, 1, germany.Cities[0].Conversions)

	spain := buckets[1]
	assert.Equal(t, "Spain", spain.Country)
	assert.Equal(t, 1, spain.Clicks)
	assert.NotNil(t, spain.Cities)
	assert.Empty(t, spain.Cities)
}

func TestCountryCode(t *testing.T) {
	assert.Equal(t, "GE", countryCode("Germany"))
	assert.Equal(t, "UN", countryCode("United States"))
	assert.Equal(t, "J", countryCode("j"))
	assert.Equal(t, "", countryCode(""))
}

func TestComputeDevicesSentinel(t *testing.T) {
	evts := []events.Event{
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithTech("mobile", "", "", "")),
		testsupport.MakeEvent(events.EventTypeView, testsupport.WithTech("mobile", "", "", "")),
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithTech("desktop", "", "", "")),
		testsupport.MakeEvent(events.EventTypeView), // unclassified
	}

	buckets := ComputeDevices(evts)
	require.Len(t, buckets, 3)

	assert.Equal(t, "mobile", buckets[0].DeviceType)
	assert.Equal(t, 2, buckets[0].Count)
	assert.InDelta(t, 50.0, buckets[0].Percentage, 0.001)

	total := 0
	sawUnknown := false
	for _, b := range buckets {
		total += b.Count
		if b.DeviceType == events.SentinelUnknown {
			sawUnknown = true
			assert.Equal(t, 1, b.Count)
		}
	}
	assert.True(t, sawUnknown)
	// Every event is attributed; the device dimension conserves the total.
	assert.Equal(t, len(evts), total)
}

func TestComputeBrowsersSkipsUnclassified(t *testing.T) {
	evts := []events.Event{
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithTech("", "chrome", "", "")),
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithTech("", "chrome", "", "")),
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithTech("", "firefox", "", "")),
		testsupport.MakeEvent(events.EventTypeClick), // no browser, dropped
	}

	buckets := ComputeBrowsers(evts)
	require.Len(t, buckets, 2)
	assert.Equal(t, "chrome", buckets[0].Browser)
	assert.Equal(t, 2, buckets[0].Count)
	assert.Nil(t, buckets[0].Version)
	// Percentage denominator is the full event count, including the dropped
	// event, so the shares sum below 100 here.
	assert.InDelta(t, 50.0, buckets[0].Percentage, 0.001)
	assert.InDelta(t, 25.0, buckets[1].Percentage, 0.001)
}

func TestComputeOperatingSystems(t *testing.T) {
	evts := []events.Event{
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithTech("", "", "Linux", "")),
		testsupport.MakeEvent(events.EventTypeView, testsupport.WithTech("", "", "MacOS", "")),
		testsupport.MakeEvent(events.EventTypeView, testsupport.WithTech("", "", "MacOS", "")),
	}

	buckets := ComputeOperatingSystems(evts)
	require.Len(t, buckets, 2)
	assert.Equal(t, "MacOS", buckets[0].OS)
	assert.Equal(t, 2, buckets[0].Count)
}

func TestComputeResolutions(t *testing.T) {
	evts := []events.Event{
		testsupport.MakeEvent(events.EventTypeView, testsupport.WithTech("", "", "", "1920x1080")),
		testsupport.MakeEvent(events.EventTypeView),
	}

	buckets := ComputeResolutions(evts)
	require.Len(t, buckets, 1)
	assert.Equal(t, "1920x1080", buckets[0].Resolution)
	assert.InDelta(t, 50.0, buckets[0].Percentage, 0.001)
}

func TestComputeCampaigns(t *testing.T) {
	evts := []events.Event{
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithUTM("ig", "social", "")),
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithUTM("ig", "social", "")),
		testsupport.MakeEvent(events.EventTypeConversion, testsupport.WithUTM("ig", "social", "")),
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithUTM("newsletter", "email", "spring")),
		testsupport.MakeEvent(events.EventTypeClick), // untagged, excluded entirely
	}

	buckets := ComputeCampaigns(evts)
	require.Len(t, buckets, 2)

	top := buckets[0]
	assert.Equal(t, "ig", top.Source)
	assert.Equal(t, "social", top.Medium)
	assert.Equal(t, events.SentinelNone, top.Campaign)
	assert.Equal(t, 2, top.Clicks)
	assert.Equal(t, 1, top.Conversions)
	assert.InDelta(t, 50.0, top.ConversionRate, 0.001)

	assert.Equal(t, "spring", buckets[1].Campaign)
}

func TestComputeCampaignsAllUntagged(t *testing.T) {
	evts := []events.Event{
		testsupport.MakeEvent(events.EventTypeClick),
		testsupport.MakeEvent(events.EventTypeView),
	}
	assert.Empty(t, ComputeCampaigns(evts))
}

func TestComputeReferrers(t *testing.T) {
	evts := []events.Event{
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithReferrer("https://news.ycombinator.com/")),
		testsupport.MakeEvent(events.EventTypeClick),
		testsupport.MakeEvent(events.EventTypeClick),
		testsupport.MakeEvent(events.EventTypeConversion),
	}

	buckets := ComputeReferrers(evts)
	require.Len(t, buckets, 2)

	direct := buckets[0]
	assert.Equal(t, events.SentinelDirect, direct.Referrer)
	assert.True(t, direct.IsDirect)
	assert.Equal(t, 2, direct.Clicks)
	assert.Equal(t, 1, direct.Conversions)

	assert.Equal(t, "https://news.ycombinator.com/", buckets[1].Referrer)
	assert.False(t, buckets[1].IsDirect)
}

func TestDimensionsAreIdempotent(t *testing.T) {
	evts := []events.Event{
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithGeo("Japan", "Tokyo"), testsupport.WithTech("mobile", "safari", "iOS", "390x844")),
		testsupport.MakeEvent(events.EventTypeView, testsupport.WithGeo("Japan", "Osaka"), testsupport.WithTech("desktop", "chrome", "Linux", "1920x1080")),
		testsupport.MakeEvent(events.EventTypeConversion, testsupport.WithUTM("google", "cpc", "launch")),
	}

	assert.Equal(t, ComputeGeography(evts), ComputeGeography(evts))
	assert.Equal(t, ComputeDevices(evts), ComputeDevices(evts))
	assert.Equal(t, ComputeBrowsers(evts), ComputeBrowsers(evts))
	assert.Equal(t, ComputeCampaigns(evts), ComputeCampaigns(evts))
	assert.Equal(t, ComputeChart(evts), ComputeChart(evts))
}
