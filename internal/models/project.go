package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Builder is a developer/construction company behind projects.
type Builder struct {
	BuilderID       uuid.UUID      `gorm:"column:builder_id;type:uuid;primaryKey" json:"builder_id"`
	Name            string         `gorm:"column:name;not null" json:"name"`
	EstablishedYear *int           `gorm:"column:established_year" json:"established_year"`
	Description     *string        `gorm:"column:description" json:"description"`
	LogoURL         *string        `gorm:"column:logo_url" json:"logo_url"`
	Website         *string        `gorm:"column:website" json:"website"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Builder) TableName() string {
	return "Builders"
}

func (b *Builder) BeforeCreate(tx *gorm.DB) error {
	if b.BuilderID == uuid.Nil {
		b.BuilderID = uuid.New()
	}
	return nil
}

// Project is a builder development; highlights/amenities/images are JSON arrays.
type Project struct {
	ProjectID    uuid.UUID      `gorm:"column:project_id;type:uuid;primaryKey" json:"project_id"`
	Name         string         `gorm:"column:name;not null" json:"name"`
	BuilderID    uuid.UUID      `gorm:"column:builder_id;type:uuid;not null" json:"builder_id"`
	Builder      *Builder       `gorm:"foreignKey:BuilderID;references:BuilderID" json:"builder,omitempty"`
	City         *string        `gorm:"column:city" json:"city"`
	State        *string        `gorm:"column:state" json:"state"`
	Status       string         `gorm:"column:status;type:varchar(32);not null;default:'ongoing'" json:"status"`
	PriceRange   *string        `gorm:"column:price_range" json:"price_range"`
	ThumbnailURL *string        `gorm:"column:thumbnail_url" json:"thumbnail_url"`
	Images       datatypes.JSON `gorm:"column:images;type:jsonb" json:"images"`
	Highlights   datatypes.JSON `gorm:"column:highlights;type:jsonb" json:"highlights"`
	Amenities    datatypes.JSON `gorm:"column:amenities;type:jsonb" json:"amenities"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Project) TableName() string {
	return "Projects"
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ProjectID == uuid.Nil {
		p.ProjectID = uuid.New()
	}
	return nil
}
