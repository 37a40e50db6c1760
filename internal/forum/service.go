package forum

import (
	"context"
	"errors"
	"strings"

	"propnest-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMissingFields   = errors.New("Missing required fields")
	ErrPostNotFound    = errors.New("Post not found")
	ErrInvalidReaction = errors.New("Invalid reaction")
)

type Service struct {
	DB *gorm.DB
}

// CreatePostInput for a new thread.
type CreatePostInput struct {
	Title      string
	Body       string
	Category   string
	AuthorName string
	AuthorID   *uuid.UUID
}

func (s *Service) CreatePost(ctx context.Context, in CreatePostInput) (*models.ForumPost, error) {
	if isBlank(in.Title) || isBlank(in.Body) || isBlank(in.Category) {
		return nil, ErrMissingFields
	}
	post := &models.ForumPost{
		Title:      strings.TrimSpace(in.Title),
		Body:       strings.TrimSpace(in.Body),
		Category:   strings.TrimSpace(strings.ToLower(in.Category)),
		AuthorName: in.AuthorName,
		AuthorID:   in.AuthorID,
	}
	if err := s.DB.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns threads newest first, optionally filtered by category,
// with replies loaded for counting.
func (s *Service) ListPosts(ctx context.Context, category string) ([]models.ForumPost, error) {
	tx := s.DB.WithContext(ctx).Model(&models.ForumPost{}).Preload("Replies")
	if category != "" {
		tx = tx.Where("category = ?", strings.ToLower(category))
	}
	var posts []models.ForumPost
	if err := tx.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost returns one thread with its replies.
func (s *Service) GetPost(ctx context.Context, postID uuid.UUID) (*models.ForumPost, error) {
	var post models.ForumPost
	if err := s.DB.WithContext(ctx).Preload("Replies", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).Where("post_id = ?", postID).First(&post).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// CreateReplyInput for a reply to an existing thread.
type CreateReplyInput struct {
	PostID     uuid.UUID
	Body       string
	AuthorName string
	AuthorID   *uuid.UUID
}

func (s *Service) CreateReply(ctx context.Context, in CreateReplyInput) (*models.ForumReply, error) {
	if isBlank(in.Body) {
		return nil, ErrMissingFields
	}
	var post models.ForumPost
	if err := s.DB.WithContext(ctx).Where("post_id = ?", in.PostID).First(&post).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	reply := &models.ForumReply{
		PostID:     in.PostID,
		Body:       strings.TrimSpace(in.Body),
		AuthorName: in.AuthorName,
		AuthorID:   in.AuthorID,
	}
	if err := s.DB.WithContext(ctx).Create(reply).Error; err != nil {
		return nil, err
	}
	return reply, nil
}

// React increments a post's like or dislike counter.
func (s *Service) React(ctx context.Context, postID uuid.UUID, reaction string) (*models.ForumPost, error) {
	var column string
	switch reaction {
	case "like":
		column = "likes"
	case "dislike":
		column = "dislikes"
	default:
		return nil, ErrInvalidReaction
	}

	var post models.ForumPost
	if err := s.DB.WithContext(ctx).Where("post_id = ?", postID).First(&post).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Model(&post).
		Update(column, gorm.Expr(column+" + 1")).Error; err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Where("post_id = ?", postID).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
