package properties

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"propnest-backend/internal/middleware"
	"propnest-backend/internal/models"
	"propnest-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// CreateProperty POST /api/properties/create - 201 {propertyId}.
func (h *Handlers) CreateProperty(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	loc, _ := body["location"].(map[string]interface{})
	in := CreatePropertyInput{
		Title:            asString(body["title"]),
		Description:      asString(body["description"]),
		PropertyType:     asString(body["propertyType"]),
		ListingType:      asString(body["listingType"]),
		Price:            asString(body["price"]),
		PropertySize:     asString(body["propertySize"]),
		PropertySizeUnit: asString(body["propertySizeUnit"]),
		Bedrooms:         asString(body["bedrooms"]),
		Bathrooms:        asString(body["bathrooms"]),
		Furnishing:       asString(body["furnishing"]),
		Floor:            asString(body["floor"]),
		Facing:           asString(body["facing"]),
		Age:              asString(body["age"]),
		Balconies:        asString(body["balconies"]),
		ProjectID:        asString(body["projectId"]),
		ThumbnailURL:     asString(body["thumbnailUrl"]),
		Images:           asStringSlice(body["images"]),
		PostedByName:     identity.Fullname,
		PostedByEmail:    identity.Email,
		OwnerID:          &identity.UserID,
	}
	if loc != nil {
		in.Location = LocationInput{
			Address: asString(loc["address"]),
			City:    asString(loc["city"]),
			State:   asString(loc["state"]),
			Country: asString(loc["country"]),
		}
	}

	property, err := h.Service.CreateProperty(c.Context(), in)
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			return response.BadRequest(c, "Missing required fields")
		}
		return response.Internal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"propertyId": property.PropertyID.String()})
}

// ListProperties GET /api/properties/list - {properties, pagination}.
func (h *Handlers) ListProperties(c *fiber.Ctx) error {
	q := ListQuery{
		PropertyType: c.Query("propertyType"),
		ListingType:  c.Query("listingType"),
		Location:     c.Query("location"),
		Zipcode:      c.Query("zipcode"),
		Bedrooms:     c.Query("bedrooms"),
		Bathrooms:    c.Query("bathrooms"),
		SortBy:       c.Query("sortBy"),
		Page:         queryInt(c, "page", defaultPage),
		Limit:        queryInt(c, "limit", defaultLimit),
	}
	results, pagination, err := h.Service.ListProperties(c.Context(), q)
	if err != nil {
		return response.Internal(c, err)
	}
	return c.JSON(fiber.Map{
		"properties": ToPropertyViews(results),
		"pagination": pagination,
	})
}

// GetFavorites GET /api/properties/favorites
func (h *Handlers) GetFavorites(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	saved, err := h.Service.ListFavorites(c.Context(), identity.UserID)
	if err != nil {
		return response.Internal(c, err)
	}
	return c.JSON(fiber.Map{"favorites": ToFavoriteViews(saved)})
}

// SaveFavorite POST /api/properties/favorites - body {propertyId}.
func (h *Handlers) SaveFavorite(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body struct {
		PropertyID string `json:"propertyId"`
	}
	if err := c.BodyParser(&body); err != nil || body.PropertyID == "" {
		return response.BadRequest(c, "propertyId is required")
	}
	propertyID, err := uuid.Parse(body.PropertyID)
	if err != nil {
		return response.BadRequest(c, "Invalid propertyId")
	}

	saved, err := h.Service.SaveFavorite(c.Context(), identity.UserID, propertyID)
	if err != nil {
		switch {
		case errors.Is(err, ErrPropertyNotFound):
			return response.NotFound(c, err.Error())
		case errors.Is(err, ErrAlreadySaved):
			return response.Err(c, fiber.StatusConflict, err.Error(), nil)
		default:
			return response.Internal(c, err)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"savedId": saved.SavedID.String()})
}

// RemoveFavorite DELETE /api/properties/favorites/:property_id
func (h *Handlers) RemoveFavorite(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	propertyID, err := uuid.Parse(c.Params("property_id"))
	if err != nil {
		return response.BadRequest(c, "Invalid propertyId")
	}
	if err := h.Service.RemoveFavorite(c.Context(), identity.UserID, propertyID); err != nil {
		if errors.Is(err, ErrNotSaved) {
			return response.NotFound(c, err.Error())
		}
		return response.Internal(c, err)
	}
	return c.JSON(fiber.Map{"removed": true})
}

// ArchiveProperty POST /api/properties/archive - body {propertyId}, owner only.
func (h *Handlers) ArchiveProperty(c *fiber.Ctx) error {
	return h.ownerAction(c, h.Service.ArchiveProperty)
}

// MarkSold POST /api/properties/mark-sold - body {propertyId}, owner only.
func (h *Handlers) MarkSold(c *fiber.Ctx) error {
	return h.ownerAction(c, h.Service.MarkSold)
}

func (h *Handlers) ownerAction(c *fiber.Ctx, action func(ctx context.Context, propertyID, actorID uuid.UUID) (*models.Property, error)) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body struct {
		PropertyID string `json:"propertyId"`
	}
	if err := c.BodyParser(&body); err != nil || body.PropertyID == "" {
		return response.BadRequest(c, "propertyId is required")
	}
	propertyID, err := uuid.Parse(body.PropertyID)
	if err != nil {
		return response.BadRequest(c, "Invalid propertyId")
	}

	property, err := action(c.Context(), propertyID, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, ErrPropertyNotFound):
			return response.NotFound(c, err.Error())
		case errors.Is(err, ErrNotOwner):
			return response.Err(c, fiber.StatusForbidden, err.Error(), nil)
		case errors.Is(err, ErrNotActive):
			return response.BadRequest(c, err.Error())
		default:
			return response.Internal(c, err)
		}
	}
	return c.JSON(fiber.Map{"propertyId": property.PropertyID.String(), "status": property.Status})
}

func asString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case nil:
		return ""
	}
	return fmt.Sprintf("%v", v)
}

func asStringSlice(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func queryInt(c *fiber.Ctx, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
