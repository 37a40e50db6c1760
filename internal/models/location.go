package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Location is a geocoded address shared by properties. Rows are deduplicated
// by CoordBucket: coordinates rounded to 4 decimals (~11m), unique-indexed so
// concurrent submissions for the same spot cannot create duplicates.
type Location struct {
	LocationID       uuid.UUID      `gorm:"column:location_id;type:uuid;primaryKey" json:"location_id"`
	StreetAddress    string         `gorm:"column:street_address;not null" json:"street_address"`
	City             *string        `gorm:"column:city" json:"city"`
	State            *string        `gorm:"column:state" json:"state"`
	Country          string         `gorm:"column:country;not null;default:'India'" json:"country"`
	Zipcode          *string        `gorm:"column:zipcode" json:"zipcode"`
	Locality         *string        `gorm:"column:locality" json:"locality"`
	Neighborhood     *string        `gorm:"column:neighborhood" json:"neighborhood"`
	FormattedAddress *string        `gorm:"column:formatted_address" json:"formatted_address"`
	Latitude         float64        `gorm:"column:latitude;not null" json:"latitude"`
	Longitude        float64        `gorm:"column:longitude;not null" json:"longitude"`
	CoordBucket      string         `gorm:"column:coord_bucket;not null;uniqueIndex" json:"-"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Location) TableName() string {
	return "Locations"
}

func (l *Location) BeforeCreate(tx *gorm.DB) error {
	if l.LocationID == uuid.Nil {
		l.LocationID = uuid.New()
	}
	if l.CoordBucket == "" {
		l.CoordBucket = CoordBucket(l.Latitude, l.Longitude)
	}
	return nil
}

// CoordBucket returns the dedup key for a coordinate pair.
func CoordBucket(lat, lng float64) string {
	return fmt.Sprintf("%.4f:%.4f", lat, lng)
}
