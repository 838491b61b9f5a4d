package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mataraung/trip-api/internal/domain"
	"github.com/mataraung/trip-api/internal/service"
)

// BlogHandler handles blog endpoints for the public site and the admin
// dashboard
type BlogHandler struct {
	blogService *service.BlogService
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// ListPublicPosts handles GET /v1/blog
// The public site only ever sees PUBLISHED posts
func (h *BlogHandler) ListPublicPosts(c *fiber.Ctx) error {
	posts, err := h.blogService.List(c.UserContext(), domain.BlogStatusPublished)
	if err != nil {
		return respondError(c, err)
	}
	if posts == nil {
		posts = []*domain.BlogPost{}
	}
	return respondData(c, posts)
}

// GetPostBySlug handles GET /v1/blog/:slug
func (h *BlogHandler) GetPostBySlug(c *fiber.Ctx) error {
	post, err := h.blogService.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, post)
}

// ListPosts handles GET /v1/admin/blog
// Query params: status (DRAFT, PUBLISHED)
func (h *BlogHandler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.blogService.List(c.UserContext(), c.Query("status", ""))
	if err != nil {
		return respondError(c, err)
	}
	if posts == nil {
		posts = []*domain.BlogPost{}
	}
	return respondData(c, posts)
}

// GetPost handles GET /v1/admin/blog/:id
func (h *BlogHandler) GetPost(c *fiber.Ctx) error {
	post, err := h.blogService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, post)
}

// BlogPostRequest is the admin create/update payload
type BlogPostRequest struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Image    string `json:"image"`
	Category string `json:"category"`
	AuthorID string `json:"author_id"`
	Status   string `json:"status"`
}

func (r *BlogPostRequest) toDomain() *domain.BlogPost {
	return &domain.BlogPost{
		Title:    r.Title,
		Slug:     r.Slug,
		Excerpt:  r.Excerpt,
		Content:  r.Content,
		Image:    r.Image,
		Category: r.Category,
		AuthorID: r.AuthorID,
		Status:   r.Status,
	}
}

// CreatePost handles POST /v1/admin/blog
func (h *BlogHandler) CreatePost(c *fiber.Ctx) error {
	var req BlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	post := req.toDomain()
	if err := h.blogService.Create(c.UserContext(), post); err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, post)
}

// UpdatePost handles PUT /v1/admin/blog/:id
func (h *BlogHandler) UpdatePost(c *fiber.Ctx) error {
	var req BlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	post := req.toDomain()
	post.ID = c.Params("id")
	if err := h.blogService.Update(c.UserContext(), post); err != nil {
		return respondError(c, err)
	}
	return respondData(c, post)
}

// DeletePost handles DELETE /v1/admin/blog/:id
func (h *BlogHandler) DeletePost(c *fiber.Ctx) error {
	if err := h.blogService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.Map{"deleted": true})
}
