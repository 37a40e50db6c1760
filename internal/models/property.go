package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Property statuses. Listings are never hard-deleted; owner actions move them
// between statuses.
const (
	PropertyStatusActive   = "active"
	PropertyStatusArchived = "archived"
	PropertyStatusSold     = "sold"
)

// Property is a listing. Variable attributes (price, bedrooms, bathrooms,
// furnishing, ...) live only in Details; there are no mirror columns.
type Property struct {
	PropertyID   uuid.UUID      `gorm:"column:property_id;type:uuid;primaryKey" json:"property_id"`
	Title        string         `gorm:"column:title;not null" json:"title"`
	Description  *string        `gorm:"column:description" json:"description"`
	PropertyType string         `gorm:"column:property_type;not null" json:"property_type"`
	ListingType  string         `gorm:"column:listing_type;not null;default:'sale'" json:"listing_type"`
	Status       string         `gorm:"column:status;type:varchar(20);not null;default:'active'" json:"status"`
	SqFt         *float64       `gorm:"column:sq_ft;type:decimal(12,2)" json:"sq_ft"`
	PostedBy     string         `gorm:"column:posted_by;not null" json:"posted_by"`
	OwnerID      *uuid.UUID     `gorm:"column:owner_id;type:uuid" json:"owner_id"`
	LocationID   uuid.UUID      `gorm:"column:location_id;type:uuid;not null" json:"location_id"`
	Location     *Location      `gorm:"foreignKey:LocationID;references:LocationID" json:"location,omitempty"`
	ProjectID    *uuid.UUID     `gorm:"column:project_id;type:uuid" json:"project_id"`
	ThumbnailURL *string        `gorm:"column:thumbnail_url" json:"thumbnail_url"`
	Details      datatypes.JSON `gorm:"column:details;type:jsonb" json:"details"`
	Images       datatypes.JSON `gorm:"column:images;type:jsonb" json:"images"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Property) TableName() string {
	return "Properties"
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.PropertyID == uuid.Nil {
		p.PropertyID = uuid.New()
	}
	return nil
}

// SavedProperty is the favorite join row (user, property) - unique per pair.
type SavedProperty struct {
	SavedID    uuid.UUID      `gorm:"column:saved_id;type:uuid;primaryKey" json:"saved_id"`
	UserID     uuid.UUID      `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_saved_user_property" json:"user_id"`
	PropertyID uuid.UUID      `gorm:"column:property_id;type:uuid;not null;uniqueIndex:idx_saved_user_property" json:"property_id"`
	Property   *Property      `gorm:"foreignKey:PropertyID;references:PropertyID" json:"property,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SavedProperty) TableName() string {
	return "SavedProperties"
}

func (s *SavedProperty) BeforeCreate(tx *gorm.DB) error {
	if s.SavedID == uuid.Nil {
		s.SavedID = uuid.New()
	}
	return nil
}
