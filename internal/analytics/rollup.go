package analytics

import (
	"linkpulse/internal/events"
)

// tally accumulates per-event-type counts for one bucket key.
type tally struct {
	clicks      int
	views       int
	conversions int
}

// total returns the number of events of any type attributed to the bucket.
func (t *tally) total() int {
	return t.clicks + t.views + t.conversions
}

// keyFunc derives a grouping key from an event. Returning ok=false skips the
// event for this dimension (the null policy for geo, browser, OS and
// resolution); dimensions that always bucket substitute their sentinel key
// instead of skipping.
type keyFunc func(e *events.Event) (key string, ok bool)

// rollup is the shared group-and-count accumulator. It preserves first-seen
// key order so callers get a deterministic base order before applying their
// own sort rule.
type rollup struct {
	order []string
	byKey map[string]*tally
}

// groupBy runs the event slice through the key function and counts each
// attributed event by its type. Pure function of its input.
func groupBy(evts []events.Event, key keyFunc) *rollup {
	r := &rollup{byKey: make(map[string]*tally)}
	for i := range evts {
		k, ok := key(&evts[i])
		if !ok {
			continue
		}
		t, exists := r.byKey[k]
		if !exists {
			t = &tally{}
			r.byKey[k] = t
			r.order = append(r.order, k)
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
	return r
}

// keys returns the bucket keys in first-seen order.
func (r *rollup) keys() []string {
	return r.order
}

// get returns the tally for a key; the zero tally if the key was never seen.
func (r *rollup) get(key string) tally {
	if t, ok := r.byKey[key]; ok {
		return *t
	}
	return tally{}
}

// percent computes part/total*100, resolving a zero denominator to 0 rather
// than NaN.
func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
