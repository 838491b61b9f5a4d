package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mataraung/trip-api/internal/domain"
	"github.com/mataraung/trip-api/internal/service"
)

// TeamHandler handles team member endpoints for the public site and the
// admin dashboard
type TeamHandler struct {
	teamService *service.TeamService
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// ListPublicTeam handles GET /v1/team
// Returns ACTIVE members plus their average rating for the team page header
func (h *TeamHandler) ListPublicTeam(c *fiber.Ctx) error {
	members, err := h.teamService.List(c.UserContext(), domain.TeamStatusActive)
	if err != nil {
		return respondError(c, err)
	}
	if members == nil {
		members = []*domain.TeamMember{}
	}

	return respondData(c, fiber.Map{
		"members":        members,
		"average_rating": h.teamService.AverageRating(members),
	})
}

// ListMembers handles GET /v1/admin/team
// Query params: status (ACTIVE, INACTIVE)
func (h *TeamHandler) ListMembers(c *fiber.Ctx) error {
	members, err := h.teamService.List(c.UserContext(), c.Query("status", ""))
	if err != nil {
		return respondError(c, err)
	}
	if members == nil {
		members = []*domain.TeamMember{}
	}
	return respondData(c, members)
}

// GetMember handles GET /v1/admin/team/:id
func (h *TeamHandler) GetMember(c *fiber.Ctx) error {
	member, err := h.teamService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, member)
}

// TeamMemberRequest is the admin create/update payload
type TeamMemberRequest struct {
	Name           string   `json:"name"`
	Role           string   `json:"role"`
	Specialization string   `json:"specialization"`
	Experience     string   `json:"experience"`
	Location       string   `json:"location"`
	Image          string   `json:"image"`
	Bio            string   `json:"bio"`
	Achievements   []string `json:"achievements"`
	Rating         float64  `json:"rating"`
	Status         string   `json:"status"`
}

func (r *TeamMemberRequest) toDomain() *domain.TeamMember {
	return &domain.TeamMember{
		Name:           r.Name,
		Role:           r.Role,
		Specialization: r.Specialization,
		Experience:     r.Experience,
		Location:       r.Location,
		Image:          r.Image,
		Bio:            r.Bio,
		Achievements:   r.Achievements,
		Rating:         r.Rating,
		Status:         r.Status,
	}
}

// CreateMember handles POST /v1/admin/team
func (h *TeamHandler) CreateMember(c *fiber.Ctx) error {
	var req TeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	member := req.toDomain()
	if err := h.teamService.Create(c.UserContext(), member); err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, member)
}

// UpdateMember handles PUT /v1/admin/team/:id
func (h *TeamHandler) UpdateMember(c *fiber.Ctx) error {
	var req TeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	member := req.toDomain()
	member.ID = c.Params("id")
	if err := h.teamService.Update(c.UserContext(), member); err != nil {
		return respondError(c, err)
	}
	return respondData(c, member)
}

// DeleteMember handles DELETE /v1/admin/team/:id
func (h *TeamHandler) DeleteMember(c *fiber.Ctx) error {
	if err := h.teamService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.Map{"deleted": true})
}
