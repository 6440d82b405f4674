package events

import (
	"time"

	"gorm.io/gorm"
)

// EventFilters represents filtering options for events.
// OwnerID is required; the remaining fields narrow the result set when set.
type EventFilters struct {
	OwnerID   uint
	LinkID    uint
	From      time.Time
	To        time.Time
	EventType EventType
}

// LinkScoped reports whether the filter is already narrowed to a single link.
func (f EventFilters) LinkScoped() bool {
	return f.LinkID != 0
}

// GetFilteredEvents retrieves the events matching the filters, ordered
// descending by timestamp.
func GetFilteredEvents(db *gorm.DB, filters EventFilters) ([]Event, error) {
	query := db.Model(&Event{}).Where("owner_id = ?", filters.OwnerID)

	if filters.LinkID != 0 {
		query = query.Where("link_id = ?", filters.LinkID)
	}
	if !filters.From.IsZero() {
		query = query.Where("timestamp >= ?", filters.From)
	}
	if !filters.To.IsZero() {
		query = query.Where("timestamp <= ?", filters.To)
	}
	if filters.EventType != "" {
		query = query.Where("event_type = ?", filters.EventType)
	}

	var evts []Event
	if err := query.Order("timestamp DESC").Find(&evts).Error; err != nil {
		return nil, err
	}
	return evts, nil
}

// GetEventCountInTimeRange counts events for an owner in a time range.
func GetEventCountInTimeRange(db *gorm.DB, ownerID uint, from, to time.Time) (int64, error) {
	var count int64
	err := db.Model(&Event{}).
		Where("owner_id = ? AND timestamp BETWEEN ? AND ?", ownerID, from, to).
		Count(&count).Error
	return count, err
}

// Store is a gorm-backed event source.
type Store struct {
	db *gorm.DB
}

// NewStore creates an event store over the given connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Query returns the events matching the filters, descending by timestamp.
func (s *Store) Query(filters EventFilters) ([]Event, error) {
	return GetFilteredEvents(s.db, filters)
}

// Insert persists a new event.
func (s *Store) Insert(event *Event) error {
	return s.db.Create(event).Error
}
