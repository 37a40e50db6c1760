package forum

import (
	"errors"

	"propnest-backend/internal/middleware"
	"propnest-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// ListPosts GET /api/forum/posts - public, optional ?category=.
func (h *Handlers) ListPosts(c *fiber.Ctx) error {
	posts, err := h.Service.ListPosts(c.Context(), c.Query("category"))
	if err != nil {
		return response.Internal(c, err)
	}
	return c.JSON(fiber.Map{"posts": ToPostViews(posts)})
}

// GetPost GET /api/forum/posts/:post_id - public.
func (h *Handlers) GetPost(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("post_id"))
	if err != nil {
		return response.BadRequest(c, "Invalid postId")
	}
	post, err := h.Service.GetPost(c.Context(), postID)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.Internal(c, err)
	}
	return c.JSON(ToThreadView(*post))
}

// CreatePost POST /api/forum/posts - auth required.
func (h *Handlers) CreatePost(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body struct {
		Title    string `json:"title"`
		Body     string `json:"body"`
		Category string `json:"category"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	post, err := h.Service.CreatePost(c.Context(), CreatePostInput{
		Title:      body.Title,
		Body:       body.Body,
		Category:   body.Category,
		AuthorName: authorName(identity),
		AuthorID:   &identity.UserID,
	})
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			return response.BadRequest(c, "Missing required fields")
		}
		return response.Internal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"postId": post.PostID.String()})
}

// CreateReply POST /api/forum/replies - auth required, body {postId, body}.
func (h *Handlers) CreateReply(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body struct {
		PostID string `json:"postId"`
		Body   string `json:"body"`
	}
	if err := c.BodyParser(&body); err != nil || body.PostID == "" {
		return response.BadRequest(c, "Missing required fields")
	}
	postID, err := uuid.Parse(body.PostID)
	if err != nil {
		return response.BadRequest(c, "Invalid postId")
	}

	reply, err := h.Service.CreateReply(c.Context(), CreateReplyInput{
		PostID:     postID,
		Body:       body.Body,
		AuthorName: authorName(identity),
		AuthorID:   &identity.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			return response.BadRequest(c, "Missing required fields")
		case errors.Is(err, ErrPostNotFound):
			return response.NotFound(c, err.Error())
		default:
			return response.Internal(c, err)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"replyId": reply.ReplyID.String()})
}

// React POST /api/forum/react - auth required, body {postId, reaction}.
func (h *Handlers) React(c *fiber.Ctx) error {
	if _, ok := middleware.CurrentIdentity(c); !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body struct {
		PostID   string `json:"postId"`
		Reaction string `json:"reaction"`
	}
	if err := c.BodyParser(&body); err != nil || body.PostID == "" {
		return response.BadRequest(c, "Missing required fields")
	}
	postID, err := uuid.Parse(body.PostID)
	if err != nil {
		return response.BadRequest(c, "Invalid postId")
	}

	post, err := h.Service.React(c.Context(), postID, body.Reaction)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidReaction):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, ErrPostNotFound):
			return response.NotFound(c, err.Error())
		default:
			return response.Internal(c, err)
		}
	}
	return c.JSON(fiber.Map{"postId": post.PostID.String(), "likes": post.Likes, "dislikes": post.Dislikes})
}

func authorName(identity middleware.Identity) string {
	if identity.Fullname != "" {
		return identity.Fullname
	}
	if identity.Email != "" {
		return identity.Email
	}
	return "Anonymous"
}
