package projects

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"propnest-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMissingFields   = errors.New("Missing required fields")
	ErrBuilderNotFound = errors.New("Builder not found")
)

type Service struct {
	DB *gorm.DB
}

// CreateProjectInput for a new builder development.
type CreateProjectInput struct {
	Name         string
	BuilderID    uuid.UUID
	City         string
	State        string
	Status       string
	PriceRange   string
	ThumbnailURL string
	Images       []string
	Highlights   []string
	Amenities    []string
}

func (s *Service) CreateProject(ctx context.Context, in CreateProjectInput) (*models.Project, error) {
	if strings.TrimSpace(in.Name) == "" || in.BuilderID == uuid.Nil {
		return nil, ErrMissingFields
	}

	var builder models.Builder
	if err := s.DB.WithContext(ctx).Where("builder_id = ?", in.BuilderID).First(&builder).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrBuilderNotFound
		}
		return nil, err
	}

	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = "ongoing"
	}

	project := &models.Project{
		Name:         strings.TrimSpace(in.Name),
		BuilderID:    in.BuilderID,
		City:         blankToNil(in.City),
		State:        blankToNil(in.State),
		Status:       status,
		PriceRange:   blankToNil(in.PriceRange),
		ThumbnailURL: blankToNil(in.ThumbnailURL),
		Images:       jsonArray(in.Images),
		Highlights:   jsonArray(in.Highlights),
		Amenities:    jsonArray(in.Amenities),
	}
	if err := s.DB.WithContext(ctx).Create(project).Error; err != nil {
		return nil, err
	}
	project.Builder = &builder
	return project, nil
}

// ListProjects returns all projects with builders loaded, newest first.
func (s *Service) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := s.DB.WithContext(ctx).Preload("Builder").Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func blankToNil(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func jsonArray(items []string) []byte {
	if len(items) == 0 {
		return []byte("[]")
	}
	b, err := json.Marshal(items)
	if err != nil {
		return []byte("[]")
	}
	return b
}
