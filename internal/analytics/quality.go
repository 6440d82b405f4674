package analytics

import (
	"sort"

	"linkpulse/internal/events"
)

// suspiciousIPThreshold flags an IP once its event count within the filtered
// window strictly exceeds this value. A plain volume heuristic, informational
// only; no blocking follows from it.
const suspiciousIPThreshold = 50

// ComputeQuality summarizes the bot/human composition of the event set and
// flags high-volume IP addresses. An empty set scores 100: nothing to judge,
// assume clean.
func ComputeQuality(evts []events.Event) TrafficQuality {
	total := len(evts)
	bots := 0
	perIP := make(map[string]int)
	ipOrder := make([]string, 0)
	for i := range evts {
		if evts[i].IsBot {
			bots++
		}
		if ip := evts[i].IPAddress; ip != "" {
			if _, seen := perIP[ip]; !seen {
				ipOrder = append(ipOrder, ip)
			}
			perIP[ip]++
		}
	}

	suspicious := make([]string, 0)
	for _, ip := range ipOrder {
		if perIP[ip] > suspiciousIPThreshold {
			suspicious = append(suspicious, ip)
		}
	}
	sort.Strings(suspicious)

	quality := TrafficQuality{
		TotalTraffic:  total,
		BotTraffic:    bots,
		HumanTraffic:  total - bots,
		BotPercentage: percent(bots, total),
		SuspiciousIPs: suspicious,
		QualityScore:  percent(total-bots, total),
	}
	if total == 0 {
		quality.QualityScore = 100
	}
	return quality
}
