package builders

import (
	"context"
	"errors"
	"strings"

	"propnest-backend/internal/models"

	"gorm.io/gorm"
)

var ErrMissingFields = errors.New("Missing required fields")

type Service struct {
	DB *gorm.DB
}

// CreateBuilderInput for a new builder profile.
type CreateBuilderInput struct {
	Name            string
	EstablishedYear *int
	Description     string
	LogoURL         string
	Website         string
}

func (s *Service) CreateBuilder(ctx context.Context, in CreateBuilderInput) (*models.Builder, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrMissingFields
	}
	builder := &models.Builder{
		Name:            strings.TrimSpace(in.Name),
		EstablishedYear: in.EstablishedYear,
		Description:     blankToNil(in.Description),
		LogoURL:         blankToNil(in.LogoURL),
		Website:         blankToNil(in.Website),
	}
	if err := s.DB.WithContext(ctx).Create(builder).Error; err != nil {
		return nil, err
	}
	return builder, nil
}

func blankToNil(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
