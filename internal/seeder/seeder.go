// Package seeder generates demo traffic data for development dashboards.
package seeder

import (
	"fmt"
	"math/rand/v2"
	"time"

	"log/slog"

	"gorm.io/gorm"

	"linkpulse/internal/events"
	"linkpulse/internal/links"
	"linkpulse/internal/users"
)

// Seeder handles the demo data seeding process.
type Seeder struct {
	DB         *gorm.DB
	Logger     *slog.Logger
	EventCount int
}

// NewSeeder creates a new seeder instance.
func NewSeeder(db *gorm.DB, logger *slog.Logger, eventCount int) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{DB: db, Logger: logger, EventCount: eventCount}
}

var (
	seedDomains     = []string{"go.example.com", "lnk.example.io", "promo.example.dev"}
	seedPaths       = []string{"/launch", "/spring-sale", "/newsletter", "/beta", "/docs"}
	seedCountries   = map[string][]string{"Germany": {"Berlin", "Munich"}, "Spain": {"Madrid", "Barcelona"}, "Japan": {"Tokyo", "Osaka"}, "Brazil": {"Sao Paulo"}}
	seedDevices     = []string{"desktop", "mobile", "tablet"}
	seedBrowsers    = []string{"chrome", "firefox", "safari", "edge"}
	seedOSes        = []string{"Windows", "MacOS", "Linux", "Android", "iOS"}
	seedResolutions = []string{"1920x1080", "1366x768", "390x844", "2560x1440"}
	seedReferrers   = []string{"", "https://news.ycombinator.com/", "https://twitter.com/", "https://google.com/"}
	seedSources     = []string{"", "ig", "newsletter", "google"}
	seedMediums     = []string{"", "social", "email", "cpc"}
)

// Seed creates a demo creator with a handful of links and EventCount random
// events spread over the last 30 days.
func (s *Seeder) Seed() error {
	start := time.Now()
	s.Logger.Info("Seeding demo data...", slog.Int("eventCount", s.EventCount))

	owner, err := users.CreateUser(s.DB, "demo@linkpulse.local", "Demo Creator", "demo-password")
	if err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}

	var demoLinks []links.Link
	for _, domain := range seedDomains {
		for _, path := range seedPaths[:2+rand.IntN(len(seedPaths)-2)] {
			link := links.Link{OwnerID: owner.ID, Domain: domain, Path: path}
			if err := links.CreateLink(s.DB, &link); err != nil {
				return fmt.Errorf("failed to create demo link: %w", err)
			}
			demoLinks = append(demoLinks, link)
		}
	}

	countries := make([]string, 0, len(seedCountries))
	for country := range seedCountries {
		countries = append(countries, country)
	}

	now := time.Now().UTC()
	batch := make([]events.Event, 0, s.EventCount)
	for i := 0; i < s.EventCount; i++ {
		link := demoLinks[rand.IntN(len(demoLinks))]
		country := countries[rand.IntN(len(countries))]
		cities := seedCountries[country]

		event := events.Event{
			LinkID:           link.ID,
			OwnerID:          owner.ID,
			EventType:        randomEventType(),
			Timestamp:        now.Add(-time.Duration(rand.IntN(30*24*60)) * time.Minute),
			IPAddress:        fmt.Sprintf("192.0.2.%d", rand.IntN(200)+1),
			DeviceType:       seedDevices[rand.IntN(len(seedDevices))],
			Browser:          seedBrowsers[rand.IntN(len(seedBrowsers))],
			OS:               seedOSes[rand.IntN(len(seedOSes))],
			ScreenResolution: seedResolutions[rand.IntN(len(seedResolutions))],
			Country:          country,
			City:             cities[rand.IntN(len(cities))],
			Referrer:         seedReferrers[rand.IntN(len(seedReferrers))],
			UTMSource:        seedSources[rand.IntN(len(seedSources))],
			UTMMedium:        seedMediums[rand.IntN(len(seedMediums))],
			IsBot:            rand.IntN(20) == 0,
		}
		batch = append(batch, event)
	}

	if err := s.DB.CreateInBatches(batch, 500).Error; err != nil {
		return fmt.Errorf("failed to insert demo events: %w", err)
	}

	s.Logger.Info("Demo data seeded",
		slog.Int("links", len(demoLinks)),
		slog.Int("events", len(batch)),
		slog.Duration("took", time.Since(start)))
	return nil
}

// randomEventType weights views heaviest, conversions lightest, so demo
// funnels look plausible.
func randomEventType() events.EventType {
	switch n := rand.IntN(10); {
	case n < 6:
		return events.EventTypeView
	case n < 9:
		return events.EventTypeClick
	default:
		return events.EventTypeConversion
	}
}
