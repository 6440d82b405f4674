package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventTypeIsValid(t *testing.T) {
	assert.True(t, EventTypeView.IsValid())
	assert.True(t, EventTypeClick.IsValid())
	assert.True(t, EventTypeConversion.IsValid())
	assert.False(t, EventType("hover").IsValid())
	assert.False(t, EventType("").IsValid())
}

func TestEventHasUTM(t *testing.T) {
	assert.False(t, (&Event{}).HasUTM())
	assert.True(t, (&Event{UTMSource: "ig"}).HasUTM())
	assert.True(t, (&Event{UTMMedium: "social"}).HasUTM())
	assert.True(t, (&Event{UTMCampaign: "launch"}).HasUTM())
}
