package builders

import (
	"errors"

	"propnest-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// CreateBuilder POST /api/builders/create - 201 {builderId}.
func (h *Handlers) CreateBuilder(c *fiber.Ctx) error {
	var body struct {
		Name            string `json:"name"`
		EstablishedYear *int   `json:"establishedYear"`
		Description     string `json:"description"`
		LogoURL         string `json:"logoUrl"`
		Website         string `json:"website"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	builder, err := h.Service.CreateBuilder(c.Context(), CreateBuilderInput{
		Name:            body.Name,
		EstablishedYear: body.EstablishedYear,
		Description:     body.Description,
		LogoURL:         body.LogoURL,
		Website:         body.Website,
	})
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			return response.BadRequest(c, "Missing required fields")
		}
		return response.Internal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"builderId": builder.BuilderID.String()})
}
