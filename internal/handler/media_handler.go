package handler

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/oklog/ulid/v2"

	"github.com/mataraung/trip-api/internal/domain"
)

// allowedImageTypes are the content types accepted for uploads
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// MediaHandler handles image uploads for packages, blog posts and team
// members
type MediaHandler struct {
	fileRepo domain.FileRepository
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(fileRepo domain.FileRepository) *MediaHandler {
	return &MediaHandler{fileRepo: fileRepo}
}

// UploadImage handles POST /v1/admin/media
// Accepts a multipart form with a single "file" field and returns the
// public URL of the stored object
func (h *MediaHandler) UploadImage(c *fiber.Ctx) error {
	if h.fileRepo == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"error":   "media storage is not configured",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return badRequest(c, "only jpeg, png, webp and gif images are accepted")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return respondError(c, err)
	}

	key := objectKey(fileHeader.Filename)
	url, err := h.fileRepo.Upload(c.UserContext(), data, key, contentType)
	if err != nil {
		return respondError(c, err)
	}

	return respondCreated(c, fiber.Map{
		"key": key,
		"url": url,
	})
}

// DeleteImage handles DELETE /v1/admin/media/:key
func (h *MediaHandler) DeleteImage(c *fiber.Ctx) error {
	if h.fileRepo == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"error":   "media storage is not configured",
		})
	}

	key := c.Params("key")
	if key == "" {
		return badRequest(c, "object key is required")
	}

	if err := h.fileRepo.Delete(c.UserContext(), key); err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.Map{"deleted": true})
}

// objectKey builds a collision-free object key, keeping the original file
// extension so the store serves a sensible content type.
func objectKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return "media/" + ulid.Make().String() + ext
}
