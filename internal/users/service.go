package users

import (
	"context"
	"errors"
	"strings"

	"propnest-backend/internal/models"
	"propnest-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrMissingFields   = errors.New("Missing required fields")
	ErrInvalidEmail    = errors.New("Invalid email format")
	ErrInvalidPassword = errors.New("Invalid password format")
	ErrInvalidFullname = errors.New("Full name contains invalid characters")
	ErrEmailTaken      = errors.New("Email already registered")
)

type Service struct {
	DB *gorm.DB
}

// SignupInput matches the signup form.
type SignupInput struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// Signup validates and creates an account. Email is lowercased, password hashed.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	fullname := strings.TrimSpace(in.Fullname)
	if fullname == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, ErrMissingFields
	}
	if !validation.IsValidFullname(fullname) {
		return nil, ErrInvalidFullname
	}
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if !validation.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !validation.IsValidPassword(in.Password) {
		return nil, ErrInvalidPassword
	}

	var existing models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), 10)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Fullname:     fullname,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        blankToNil(in.Phone),
	}
	if err := s.DB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// ContactInput is a contact-form submission.
type ContactInput struct {
	Name       string
	Email      string
	Phone      string
	Message    string
	PropertyID string
}

// SubmitContact validates and stores a contact message. Returns the stored row.
func (s *Service) SubmitContact(ctx context.Context, in ContactInput) (*models.ContactMessage, error) {
	name := strings.TrimSpace(in.Name)
	message := strings.TrimSpace(in.Message)
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if name == "" || email == "" || message == "" {
		return nil, ErrMissingFields
	}
	if !validation.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	msg := &models.ContactMessage{
		Name:    name,
		Email:   email,
		Phone:   blankToNil(in.Phone),
		Message: message,
	}
	if trimmed := strings.TrimSpace(in.PropertyID); trimmed != "" {
		if id, err := uuid.Parse(trimmed); err == nil {
			msg.PropertyID = &id
		}
	}
	if err := s.DB.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

func blankToNil(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
