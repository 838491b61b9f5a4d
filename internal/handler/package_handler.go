package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mataraung/trip-api/internal/domain"
	"github.com/mataraung/trip-api/internal/service"
)

// PackageHandler handles trip package endpoints for the public site and
// the admin dashboard
type PackageHandler struct {
	packageService *service.PackageService
}

// NewPackageHandler creates a new PackageHandler
func NewPackageHandler(packageService *service.PackageService) *PackageHandler {
	return &PackageHandler{packageService: packageService}
}

// ListPublicPackages handles GET /v1/packages
// The public site only ever sees ACTIVE packages
func (h *PackageHandler) ListPublicPackages(c *fiber.Ctx) error {
	packages, err := h.packageService.List(c.UserContext(), domain.PackageStatusActive)
	if err != nil {
		return respondError(c, err)
	}
	if packages == nil {
		packages = []*domain.TripPackage{}
	}
	return respondData(c, packages)
}

// GetPackage handles GET /v1/packages/:id
func (h *PackageHandler) GetPackage(c *fiber.Ctx) error {
	pkg, err := h.packageService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, pkg)
}

// ListPackages handles GET /v1/admin/packages
// Query params: status (ACTIVE, INACTIVE), include=bookings to join each
// package's confirmed bookings
func (h *PackageHandler) ListPackages(c *fiber.Ctx) error {
	var (
		packages []*domain.TripPackage
		err      error
	)
	if c.Query("include") == "bookings" {
		packages, err = h.packageService.ListWithConfirmedBookings(c.UserContext())
	} else {
		packages, err = h.packageService.List(c.UserContext(), c.Query("status", ""))
	}
	if err != nil {
		return respondError(c, err)
	}
	if packages == nil {
		packages = []*domain.TripPackage{}
	}
	return respondData(c, packages)
}

// PackageRequest is the admin create/update payload
type PackageRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Location    string `json:"location"`
	Price       int64  `json:"price"`
	Duration    string `json:"duration"`
	MaxPeople   int    `json:"max_people"`
	Status      string `json:"status"`
}

func (r *PackageRequest) toDomain() *domain.TripPackage {
	return &domain.TripPackage{
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		Location:    r.Location,
		Price:       r.Price,
		Duration:    r.Duration,
		MaxPeople:   r.MaxPeople,
		Status:      r.Status,
	}
}

// CreatePackage handles POST /v1/admin/packages
func (h *PackageHandler) CreatePackage(c *fiber.Ctx) error {
	var req PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	pkg := req.toDomain()
	if err := h.packageService.Create(c.UserContext(), pkg); err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, pkg)
}

// UpdatePackage handles PUT /v1/admin/packages/:id
func (h *PackageHandler) UpdatePackage(c *fiber.Ctx) error {
	var req PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	pkg := req.toDomain()
	pkg.ID = c.Params("id")
	if err := h.packageService.Update(c.UserContext(), pkg); err != nil {
		return respondError(c, err)
	}
	return respondData(c, pkg)
}

// DeletePackage handles DELETE /v1/admin/packages/:id
func (h *PackageHandler) DeletePackage(c *fiber.Ctx) error {
	if err := h.packageService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.Map{"deleted": true})
}
