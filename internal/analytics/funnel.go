package analytics

import (
	"linkpulse/internal/events"
)

// funnelStages is the fixed stage order; stages absent from the input still
// appear with a zero count.
var funnelStages = []events.EventType{
	events.EventTypeView,
	events.EventTypeClick,
	events.EventTypeConversion,
}

// ComputeFunnel counts events by type across the whole filtered set and
// derives per-stage drop-off toward the next stage. The terminal stage always
// reports zero drop-off.
//
// This is a population-level funnel: there is no session linkage between a
// view and its subsequent click, so when conversions are tracked
// independently of clicks the drop-off can be negative or exceed 100.
// Callers must tolerate out-of-range values here.
func ComputeFunnel(evts []events.Event) []FunnelStage {
	counts := make(map[events.EventType]int, len(funnelStages))
	for i := range evts {
		counts[evts[i].EventType]++
	}

	stages := make([]FunnelStage, len(funnelStages))
	for i, stage := range funnelStages {
		count := counts[stage]
		dropoff := 0.0
		if i < len(funnelStages)-1 && count > 0 {
			next := counts[funnelStages[i+1]]
			dropoff = float64(count-next) / float64(count) * 100
		}
		stages[i] = FunnelStage{
			Stage:       stage,
			Count:       count,
			DropoffRate: dropoff,
		}
	}
	return stages
}
