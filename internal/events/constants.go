package events

// Sentinel values substituted for missing optional attributes so grouping
// always has a defined key.
const (
	SentinelNone    = "none"    // missing UTM attribute
	SentinelDirect  = "direct"  // missing referrer
	SentinelUnknown = "unknown" // missing device classification
)
