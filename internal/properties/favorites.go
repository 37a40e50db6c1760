package properties

import (
	"context"

	"propnest-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaveFavorite creates the (user, property) join row. Duplicate saves conflict.
func (s *Service) SaveFavorite(ctx context.Context, userID, propertyID uuid.UUID) (*models.SavedProperty, error) {
	var property models.Property
	if err := s.DB.WithContext(ctx).Where("property_id = ?", propertyID).First(&property).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.SavedProperty{}).
		Where("user_id = ? AND property_id = ?", userID, propertyID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadySaved
	}

	saved := &models.SavedProperty{UserID: userID, PropertyID: propertyID}
	if err := s.DB.WithContext(ctx).Create(saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}

// ListFavorites returns the user's saved rows with property and location loaded.
func (s *Service) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.SavedProperty, error) {
	var saved []models.SavedProperty
	if err := s.DB.WithContext(ctx).
		Preload("Property").Preload("Property.Location").
		Where("user_id = ?", userID).Order("created_at DESC").Find(&saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}

// RemoveFavorite soft-deletes the join row.
func (s *Service) RemoveFavorite(ctx context.Context, userID, propertyID uuid.UUID) error {
	result := s.DB.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&models.SavedProperty{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotSaved
	}
	return nil
}
