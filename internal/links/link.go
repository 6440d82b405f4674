// Package links manages trackable link entities and their lookup.
package links

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LinkNotFoundError is returned when a link lookup fails.
type LinkNotFoundError struct {
	ID uint
}

func (e *LinkNotFoundError) Error() string {
	return fmt.Sprintf("link not found: %d", e.ID)
}

// NewLinkNotFoundError creates a new LinkNotFoundError.
func NewLinkNotFoundError(id uint) *LinkNotFoundError {
	return &LinkNotFoundError{ID: id}
}

// Link represents a trackable destination. The Clicks counter is maintained
// by the ingestion path; analytics treats the link as a read-only grouping
// key.
type Link struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID    uint      `gorm:"index;not null" json:"owner_id"`
	Domain     string    `gorm:"index:idx_domain_path;not null" json:"domain"`
	Path       string    `gorm:"index:idx_domain_path;not null" json:"path"`
	Clicks     int64     `gorm:"not null;default:0" json:"clicks"`
	ShareToken *string   `gorm:"uniqueIndex" json:"share_token,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateLink creates a new link after normalizing its path.
func CreateLink(db *gorm.DB, link *Link) error {
	if link.Domain == "" {
		return errors.New("domain cannot be empty")
	}
	if !strings.HasPrefix(link.Path, "/") {
		link.Path = "/" + link.Path
	}
	link.CreatedAt = time.Now().UTC()
	return db.Create(link).Error
}

// GetLinkByID retrieves a link by its ID.
func GetLinkByID(db *gorm.DB, id uint) (*Link, error) {
	var link Link
	if err := db.First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewLinkNotFoundError(id)
		}
		return nil, fmt.Errorf("unexpected error querying link: %w", err)
	}
	return &link, nil
}

// GetLinksByOwner retrieves all links belonging to an owner.
func GetLinksByOwner(db *gorm.DB, ownerID uint) ([]Link, error) {
	var result []Link
	if err := db.Where("owner_id = ?", ownerID).Order("id ASC").Find(&result).Error; err != nil {
		return nil, fmt.Errorf("failed to get links: %w", err)
	}
	return result, nil
}

// UpdateLink updates an existing link.
func UpdateLink(db *gorm.DB, link *Link) error {
	return db.Save(link).Error
}

// DeleteLink deletes a link by its ID.
func DeleteLink(db *gorm.DB, id uint) error {
	result := db.Delete(&Link{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return NewLinkNotFoundError(id)
	}
	return nil
}

// IncrementClicks bumps the aggregate click counter for a link.
func IncrementClicks(db *gorm.DB, id uint) error {
	return db.Model(&Link{}).Where("id = ?", id).
		UpdateColumn("clicks", gorm.Expr("clicks + 1")).Error
}

// EnableSharing assigns a share token to the link, making its dashboard
// publicly reachable. Idempotent if a token is already set.
func EnableSharing(db *gorm.DB, link *Link) error {
	if link.ShareToken != nil {
		return nil
	}
	token := uuid.NewString()
	link.ShareToken = &token
	return db.Save(link).Error
}

// DisableSharing removes the link's share token.
func DisableSharing(db *gorm.DB, link *Link) error {
	link.ShareToken = nil
	return db.Model(link).Update("share_token", nil).Error
}

// GetLinkByShareToken retrieves a link by its public share token.
func GetLinkByShareToken(db *gorm.DB, token string) (*Link, error) {
	var link Link
	if err := db.Where("share_token = ?", token).First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// Directory is a gorm-backed link lookup used by the analytics ranking
// module.
type Directory struct {
	db *gorm.DB
}

// NewDirectory creates a link directory over the given connection.
func NewDirectory(db *gorm.DB) *Directory {
	return &Directory{db: db}
}

// ListLinks returns every link owned by the given owner.
func (d *Directory) ListLinks(ownerID uint) ([]Link, error) {
	return GetLinksByOwner(d.db, ownerID)
}
