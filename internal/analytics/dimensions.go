package analytics

import (
	"sort"
	"strings"

	"linkpulse/internal/events"
)

// utmKeySep joins the UTM triple into a single grouping key. The unit
// separator cannot appear in sanitized UTM values.
const utmKeySep = "\x1f"

const chartDateLayout = "2006-01-02"

// ComputeChart builds the per-date time series. One point per UTC calendar
// date present in the event set, ascending by date string; dates with no
// events are omitted (callers zero-fill if they need a dense series).
func ComputeChart(evts []events.Event) []ChartPoint {
	r := groupBy(evts, func(e *events.Event) (string, bool) {
		return e.Timestamp.UTC().Format(chartDateLayout), true
	})

	points := make([]ChartPoint, 0, len(r.keys()))
	for _, date := range r.keys() {
		t := r.get(date)
		points = append(points, ChartPoint{
			Date:        date,
			Clicks:      t.clicks,
			Views:       t.views,
			Conversions: t.conversions,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

// countryCode derives a display code from a country name as its upper-cased
// first two characters. A deliberately coarse approximation, not an ISO
// lookup; kept for compatibility with the data already served to clients.
func countryCode(country string) string {
	if len(country) < 2 {
		return strings.ToUpper(country)
	}
	return strings.ToUpper(country[:2])
}

// ComputeGeography builds the country breakdown with nested cities. Events
// without a country are skipped; events without a city still count toward
// their country but produce no city bucket. Countries and cities both sort
// descending by clicks.
func ComputeGeography(evts []events.Event) []GeoBucket {
	countries := groupBy(evts, func(e *events.Event) (string, bool) {
		return e.Country, e.Country != ""
	})
	cities := groupBy(evts, func(e *events.Event) (string, bool) {
		if e.Country == "" || e.City == "" {
			return "", false
		}
		return e.Country + utmKeySep + e.City, true
	})

	cityBuckets := make(map[string][]CityBucket)
	for _, k := range cities.keys() {
		t := cities.get(k)
		country, city, _ := strings.Cut(k, utmKeySep)
		cityBuckets[country] = append(cityBuckets[country], CityBucket{
			City:        city,
			Clicks:      t.clicks,
			Conversions: t.conversions,
		})
	}

	buckets := make([]GeoBucket, 0, len(countries.keys()))
	for _, country := range countries.keys() {
		t := countries.get(country)
		nested := cityBuckets[country]
		sort.SliceStable(nested, func(i, j int) bool { return nested[i].Clicks > nested[j].Clicks })
		if nested == nil {
			nested = []CityBucket{}
		}
		buckets = append(buckets, GeoBucket{
			Country:        country,
			CountryCode:    countryCode(country),
			Clicks:         t.clicks,
			Conversions:    t.conversions,
			ConversionRate: percent(t.conversions, t.clicks),
			Cities:         nested,
		})
	}
	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].Clicks > buckets[j].Clicks })
	return buckets
}

// ComputeDevices builds the device type breakdown. Every event produces a
// bucket; unclassified events fall into the "unknown" bucket. Percentage is
// the bucket's share of the full filtered event count, not of classified
// traffic only.
func ComputeDevices(evts []events.Event) []DeviceBucket {
	r := groupBy(evts, func(e *events.Event) (string, bool) {
		if e.DeviceType == "" {
			return events.SentinelUnknown, true
		}
		return e.DeviceType, true
	})

	total := len(evts)
	buckets := make([]DeviceBucket, 0, len(r.keys()))
	for _, device := range r.keys() {
		t := r.get(device)
		buckets = append(buckets, DeviceBucket{
			DeviceType: device,
			Count:      t.total(),
			Percentage: percent(t.total(), total),
		})
	}
	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].Count > buckets[j].Count })
	return buckets
}

// ComputeBrowsers builds the browser breakdown. Events without a browser
// classification are skipped. Percentage shares the full-event-count
// denominator with the other technology dimensions.
func ComputeBrowsers(evts []events.Event) []BrowserBucket {
	r := groupBy(evts, func(e *events.Event) (string, bool) {
		return e.Browser, e.Browser != ""
	})

	total := len(evts)
	buckets := make([]BrowserBucket, 0, len(r.keys()))
	for _, browser := range r.keys() {
		t := r.get(browser)
		buckets = append(buckets, BrowserBucket{
			Browser:    browser,
			Count:      t.total(),
			Percentage: percent(t.total(), total),
		})
	}
	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].Count > buckets[j].Count })
	return buckets
}

// ComputeOperatingSystems builds the OS breakdown; unclassified events are
// skipped.
func ComputeOperatingSystems(evts []events.Event) []OSBucket {
	r := groupBy(evts, func(e *events.Event) (string, bool) {
		return e.OS, e.OS != ""
	})

	total := len(evts)
	buckets := make([]OSBucket, 0, len(r.keys()))
	for _, os := range r.keys() {
		t := r.get(os)
		buckets = append(buckets, OSBucket{
			OS:         os,
			Count:      t.total(),
			Percentage: percent(t.total(), total),
		})
	}
	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].Count > buckets[j].Count })
	return buckets
}

// ComputeResolutions builds the screen resolution breakdown; events without
// one are skipped.
func ComputeResolutions(evts []events.Event) []ResolutionBucket {
	r := groupBy(evts, func(e *events.Event) (string, bool) {
		return e.ScreenResolution, e.ScreenResolution != ""
	})

	total := len(evts)
	buckets := make([]ResolutionBucket, 0, len(r.keys()))
	for _, res := range r.keys() {
		t := r.get(res)
		buckets = append(buckets, ResolutionBucket{
			Resolution: res,
			Count:      t.total(),
			Percentage: percent(t.total(), total),
		})
	}
	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].Count > buckets[j].Count })
	return buckets
}

// ComputeCampaigns builds the UTM breakdown keyed by the literal
// (source, medium, campaign) triple. Events carrying no UTM attribute at all
// are excluded; a missing attribute within a tagged event is reported as
// "none".
func ComputeCampaigns(evts []events.Event) []UTMBucket {
	r := groupBy(evts, func(e *events.Event) (string, bool) {
		if !e.HasUTM() {
			return "", false
		}
		return utmValue(e.UTMSource) + utmKeySep + utmValue(e.UTMMedium) + utmKeySep + utmValue(e.UTMCampaign), true
	})

	buckets := make([]UTMBucket, 0, len(r.keys()))
	for _, key := range r.keys() {
		t := r.get(key)
		parts := strings.SplitN(key, utmKeySep, 3)
		buckets = append(buckets, UTMBucket{
			Source:         parts[0],
			Medium:         parts[1],
			Campaign:       parts[2],
			Clicks:         t.clicks,
			Conversions:    t.conversions,
			ConversionRate: percent(t.conversions, t.clicks),
		})
	}
	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].Clicks > buckets[j].Clicks })
	return buckets
}

func utmValue(v string) string {
	if v == "" {
		return events.SentinelNone
	}
	return v
}

// ComputeReferrers builds the referrer breakdown. Events without a referrer
// fall into the literal "direct" bucket.
func ComputeReferrers(evts []events.Event) []ReferrerBucket {
	r := groupBy(evts, func(e *events.Event) (string, bool) {
		if e.Referrer == "" {
			return events.SentinelDirect, true
		}
		return e.Referrer, true
	})

	buckets := make([]ReferrerBucket, 0, len(r.keys()))
	for _, ref := range r.keys() {
		t := r.get(ref)
		buckets = append(buckets, ReferrerBucket{
			Referrer:    ref,
			Clicks:      t.clicks,
			Conversions: t.conversions,
			IsDirect:    ref == events.SentinelDirect,
		})
	}
	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].Clicks > buckets[j].Clicks })
	return buckets
}
