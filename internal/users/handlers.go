package users

import (
	"errors"

	"propnest-backend/internal/emails"
	"propnest-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type Handlers struct {
	Service *Service
	Mailer  emails.Sender
}

// Signup POST /api/users/signup - 201 {userId}.
func (h *Handlers) Signup(c *fiber.Ctx) error {
	var body SignupInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.Service.Signup(c.Context(), body)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			return response.BadRequest(c, "Missing required fields")
		case errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrInvalidPassword), errors.Is(err, ErrInvalidFullname):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, ErrEmailTaken):
			return response.Err(c, fiber.StatusConflict, err.Error(), nil)
		default:
			return response.Internal(c, err)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"userId": user.UserID.String()})
}

// Contact POST /api/contact - 201 {messageId}; desk notification is best effort.
func (h *Handlers) Contact(c *fiber.Ctx) error {
	var body struct {
		Name       string `json:"name"`
		Email      string `json:"email"`
		Phone      string `json:"phone"`
		Message    string `json:"message"`
		PropertyID string `json:"propertyId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	msg, err := h.Service.SubmitContact(c.Context(), ContactInput{
		Name:       body.Name,
		Email:      body.Email,
		Phone:      body.Phone,
		Message:    body.Message,
		PropertyID: body.PropertyID,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			return response.BadRequest(c, "Missing required fields")
		case errors.Is(err, ErrInvalidEmail):
			return response.BadRequest(c, err.Error())
		default:
			return response.Internal(c, err)
		}
	}

	if h.Mailer != nil {
		n := emails.ContactNotification{
			Name:    msg.Name,
			Email:   msg.Email,
			Message: msg.Message,
		}
		if msg.Phone != nil {
			n.Phone = *msg.Phone
		}
		if msg.PropertyID != nil {
			n.PropertyID = msg.PropertyID.String()
		}
		if err := h.Mailer.SendContactNotification(c.Context(), n); err != nil {
			log.Warn().Err(err).Msg("contact notification email failed")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"messageId": msg.MessageID.String()})
}
