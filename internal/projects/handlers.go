package projects

import (
	"errors"

	"propnest-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// CreateProject POST /api/projects/create - 201 {projectId}.
func (h *Handlers) CreateProject(c *fiber.Ctx) error {
	var body struct {
		Name         string   `json:"name"`
		BuilderID    string   `json:"builderId"`
		City         string   `json:"city"`
		State        string   `json:"state"`
		Status       string   `json:"status"`
		PriceRange   string   `json:"priceRange"`
		ThumbnailURL string   `json:"thumbnailUrl"`
		Images       []string `json:"images"`
		Highlights   []string `json:"highlights"`
		Amenities    []string `json:"amenities"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if body.Name == "" || body.BuilderID == "" {
		return response.BadRequest(c, "Missing required fields")
	}
	builderID, err := uuid.Parse(body.BuilderID)
	if err != nil {
		return response.BadRequest(c, "Invalid builderId")
	}

	project, err := h.Service.CreateProject(c.Context(), CreateProjectInput{
		Name:         body.Name,
		BuilderID:    builderID,
		City:         body.City,
		State:        body.State,
		Status:       body.Status,
		PriceRange:   body.PriceRange,
		ThumbnailURL: body.ThumbnailURL,
		Images:       body.Images,
		Highlights:   body.Highlights,
		Amenities:    body.Amenities,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			return response.BadRequest(c, "Missing required fields")
		case errors.Is(err, ErrBuilderNotFound):
			return response.NotFound(c, err.Error())
		default:
			return response.Internal(c, err)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"projectId": project.ProjectID.String()})
}

// ListProjects GET /api/projects/list - public.
func (h *Handlers) ListProjects(c *fiber.Ctx) error {
	projects, err := h.Service.ListProjects(c.Context())
	if err != nil {
		return response.Internal(c, err)
	}
	return c.JSON(fiber.Map{"projects": ToProjectViews(projects)})
}
