package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactMessage is a contact-form submission, optionally about a property.
type ContactMessage struct {
	MessageID  uuid.UUID      `gorm:"column:message_id;type:uuid;primaryKey" json:"message_id"`
	Name       string         `gorm:"column:name;not null" json:"name"`
	Email      string         `gorm:"column:email;not null" json:"email"`
	Phone      *string        `gorm:"column:phone" json:"phone"`
	Message    string         `gorm:"column:message;not null" json:"message"`
	PropertyID *uuid.UUID     `gorm:"column:property_id;type:uuid" json:"property_id"`
	CreatedAt  time.Time      `json:"createdAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ContactMessage) TableName() string {
	return "ContactMessages"
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.MessageID == uuid.Nil {
		m.MessageID = uuid.New()
	}
	return nil
}
