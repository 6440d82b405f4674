// Package testsupport provides shared helpers for package tests: an
// isolated in-memory sqlite database and event builders.
package testsupport

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"linkpulse/internal/events"
	"linkpulse/internal/links"
	"linkpulse/internal/users"
)

var dbCounter atomic.Int64

// SetupTestDB creates a migrated in-memory sqlite database unique to the
// calling test.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the shared in-memory database alive for the
	// duration of the test.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&users.User{}, &links.Link{}, &events.Event{}))
	return db
}

// EventOption mutates an event under construction.
type EventOption func(*events.Event)

// MakeEvent builds an event with sensible defaults for tests.
func MakeEvent(eventType events.EventType, opts ...EventOption) events.Event {
	event := events.Event{
		LinkID:    1,
		OwnerID:   1,
		EventType: eventType,
		Timestamp: time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(&event)
	}
	return event
}

// WithTimestamp sets the event timestamp.
func WithTimestamp(ts time.Time) EventOption {
	return func(e *events.Event) { e.Timestamp = ts }
}

// WithIP sets the event IP address.
func WithIP(ip string) EventOption {
	return func(e *events.Event) { e.IPAddress = ip }
}

// WithLink sets the event link ID.
func WithLink(linkID uint) EventOption {
	return func(e *events.Event) { e.LinkID = linkID }
}

// WithGeo sets the event country and city.
func WithGeo(country, city string) EventOption {
	return func(e *events.Event) {
		e.Country = country
		e.City = city
	}
}

// WithTech sets the event device, browser, OS, and resolution.
func WithTech(device, browser, os, resolution string) EventOption {
	return func(e *events.Event) {
		e.DeviceType = device
		e.Browser = browser
		e.OS = os
		e.ScreenResolution = resolution
	}
}

// WithUTM sets the event UTM triple.
func WithUTM(source, medium, campaign string) EventOption {
	return func(e *events.Event) {
		e.UTMSource = source
		e.UTMMedium = medium
		e.UTMCampaign = campaign
	}
}

// WithReferrer sets the event referrer.
func WithReferrer(referrer string) EventOption {
	return func(e *events.Event) { e.Referrer = referrer }
}

// WithBot marks the event as bot traffic.
func WithBot() EventOption {
	return func(e *events.Event) { e.IsBot = true }
}
