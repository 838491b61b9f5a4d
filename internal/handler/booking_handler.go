package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mataraung/trip-api/internal/domain"
	"github.com/mataraung/trip-api/internal/service"
)

// BookingHandler handles booking submissions from the public site and
// booking management from the admin dashboard
type BookingHandler struct {
	bookingService  *service.BookingService
	whatsappService *service.WhatsAppService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService *service.BookingService, whatsappService *service.WhatsAppService) *BookingHandler {
	return &BookingHandler{
		bookingService:  bookingService,
		whatsappService: whatsappService,
	}
}

// CreateBookingRequest is the public booking form payload
type CreateBookingRequest struct {
	CustomerName string `json:"customer_name"`
	Whatsapp     string `json:"whatsapp"`
	People       int    `json:"people"`
	PackageID    string `json:"package_id"`
	TripDate     string `json:"trip_date"`
	Notes        string `json:"notes"`
}

// tripDateLayouts are the accepted trip_date formats, date-only first.
var tripDateLayouts = []string{"2006-01-02", time.RFC3339}

func parseTripDate(value string) (time.Time, bool) {
	for _, layout := range tripDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CreateBooking handles POST /v1/bookings
// Creates a PENDING booking with the total price snapshotted from the package
func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	tripDate, ok := parseTripDate(req.TripDate)
	if !ok {
		return badRequest(c, "trip_date must be YYYY-MM-DD")
	}

	booking, err := h.bookingService.Create(c.UserContext(), service.CreateBookingInput{
		CustomerName: req.CustomerName,
		Whatsapp:     req.Whatsapp,
		People:       req.People,
		PackageID:    req.PackageID,
		TripDate:     tripDate,
		Notes:        req.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}

	return respondCreated(c, booking)
}

// ListBookings handles GET /v1/admin/bookings
// Query params: status (PENDING, CONFIRMED, DECLINED, CANCELLED)
func (h *BookingHandler) ListBookings(c *fiber.Ctx) error {
	status := c.Query("status", "")

	bookings, err := h.bookingService.List(c.UserContext(), status)
	if err != nil {
		return respondError(c, err)
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}

	return respondData(c, bookings)
}

// GetBooking handles GET /v1/admin/bookings/:id
func (h *BookingHandler) GetBooking(c *fiber.Ctx) error {
	booking, err := h.bookingService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, booking)
}

// UpdateBookingStatusRequest carries the target status for the generic
// status endpoint
type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

// UpdateBookingStatus handles PATCH /v1/admin/bookings/:id/status
func (h *BookingHandler) UpdateBookingStatus(c *fiber.Ctx) error {
	var req UpdateBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	booking, err := h.bookingService.UpdateStatus(c.UserContext(), c.Params("id"), req.Status)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, booking)
}

// ApproveBooking handles POST /v1/admin/bookings/:id/approve
// Confirms the booking and returns the WhatsApp deep link the dashboard
// opens to notify the customer
func (h *BookingHandler) ApproveBooking(c *fiber.Ctx) error {
	booking, err := h.bookingService.Approve(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	response := fiber.Map{"booking": booking}
	if link, err := h.whatsappService.ConfirmationLink(booking); err == nil {
		response["whatsapp_link"] = link
	}

	return respondData(c, response)
}

// GetWhatsappLink handles GET /v1/admin/bookings/:id/whatsapp-link
// Regenerates the confirmation deep link so the dashboard can reopen
// WhatsApp for an already confirmed booking
func (h *BookingHandler) GetWhatsappLink(c *fiber.Ctx) error {
	booking, err := h.bookingService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if booking.Status != domain.BookingStatusConfirmed {
		return badRequest(c, "booking is not confirmed")
	}

	link, err := h.whatsappService.ConfirmationLink(booking)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.Map{"whatsapp_link": link})
}

// DeclineBooking handles POST /v1/admin/bookings/:id/decline
func (h *BookingHandler) DeclineBooking(c *fiber.Ctx) error {
	booking, err := h.bookingService.Decline(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, booking)
}

// DeleteBooking handles DELETE /v1/admin/bookings/:id
func (h *BookingHandler) DeleteBooking(c *fiber.Ctx) error {
	if err := h.bookingService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.Map{"deleted": true})
}

// GetBookingStats handles GET /v1/admin/bookings/stats
func (h *BookingHandler) GetBookingStats(c *fiber.Ctx) error {
	stats, err := h.bookingService.Stats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, stats)
}
