package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ForumPost is a discussion thread root.
type ForumPost struct {
	PostID     uuid.UUID      `gorm:"column:post_id;type:uuid;primaryKey" json:"post_id"`
	Title      string         `gorm:"column:title;not null" json:"title"`
	Body       string         `gorm:"column:body;not null" json:"body"`
	Category   string         `gorm:"column:category;not null;default:'general'" json:"category"`
	AuthorName string         `gorm:"column:author_name;not null" json:"author_name"`
	AuthorID   *uuid.UUID     `gorm:"column:author_id;type:uuid" json:"author_id"`
	Likes      int            `gorm:"column:likes;not null;default:0" json:"likes"`
	Dislikes   int            `gorm:"column:dislikes;not null;default:0" json:"dislikes"`
	Replies    []ForumReply   `gorm:"foreignKey:PostID;references:PostID" json:"replies,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ForumPost) TableName() string {
	return "ForumPosts"
}

func (p *ForumPost) BeforeCreate(tx *gorm.DB) error {
	if p.PostID == uuid.Nil {
		p.PostID = uuid.New()
	}
	return nil
}

// ForumReply is a threaded reply to a post.
type ForumReply struct {
	ReplyID    uuid.UUID      `gorm:"column:reply_id;type:uuid;primaryKey" json:"reply_id"`
	PostID     uuid.UUID      `gorm:"column:post_id;type:uuid;not null;index" json:"post_id"`
	Body       string         `gorm:"column:body;not null" json:"body"`
	AuthorName string         `gorm:"column:author_name;not null" json:"author_name"`
	AuthorID   *uuid.UUID     `gorm:"column:author_id;type:uuid" json:"author_id"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ForumReply) TableName() string {
	return "ForumReplies"
}

func (r *ForumReply) BeforeCreate(tx *gorm.DB) error {
	if r.ReplyID == uuid.Nil {
		r.ReplyID = uuid.New()
	}
	return nil
}
