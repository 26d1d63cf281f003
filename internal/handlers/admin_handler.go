package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/JDigital-dev/phcleanpro/internal/httperr"
	"github.com/JDigital-dev/phcleanpro/internal/httpresp"
	ucBooking "github.com/JDigital-dev/phcleanpro/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// AdminHandler backs the operator dashboard: list/filter bookings,
// move them through the status machine, read stats and leads, and
// wipe the book with an explicit reset.
type AdminHandler struct {
	listUC   *ucBooking.ListBookings
	statsUC  *ucBooking.BookingStats
	updateUC *ucBooking.UpdateBookingStatus
	clearUC  *ucBooking.ClearBookings
	leadsUC  *ucBooking.ListContactLeads
}

func NewAdminHandler(
	listUC *ucBooking.ListBookings,
	statsUC *ucBooking.BookingStats,
	updateUC *ucBooking.UpdateBookingStatus,
	clearUC *ucBooking.ClearBookings,
	leadsUC *ucBooking.ListContactLeads,
) *AdminHandler {
	return &AdminHandler{
		listUC:   listUC,
		statsUC:  statsUC,
		updateUC: updateUC,
		clearUC:  clearUC,
		leadsUC:  leadsUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// BOOKINGS
// ======================================================

func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.listUC.Execute(c.Request.Context(), c.Query("status"))
	if err != nil {
		if httperr.IsBusiness(err, "invalid_status") {
			httperr.BadRequest(c, "invalid_status", "Unknown status filter.")
			return
		}
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_compute_stats", "Could not compute stats.")
		return
	}

	httpresp.OK(c, stats)
}

func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	reference := c.Param("reference")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	b, err := h.updateUC.Execute(c.Request.Context(), reference, req.Status)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "invalid_status":
			httperr.BadRequest(c, "invalid_status", "Unknown status.")
		case "booking_not_found":
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case "invalid_status_change":
			httperr.BadRequest(c, "invalid_status_change", "That status change is not allowed.")
		default:
			httperr.Internal(c, "failed_to_update_status", "Could not update status.")
		}
		return
	}

	httpresp.OK(c, b)
}

func (h *AdminHandler) ClearBookings(c *gin.Context) {
	if err := h.clearUC.Execute(c.Request.Context()); err != nil {
		httperr.Internal(c, "failed_to_clear_bookings", "Could not clear bookings.")
		return
	}

	httpresp.OK(c, gin.H{"cleared": true})
}

// ======================================================
// LEADS
// ======================================================

func (h *AdminHandler) ListContactMessages(c *gin.Context) {
	msgs, err := h.leadsUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_messages", "Could not list contact messages.")
		return
	}

	httpresp.List(c, msgs)
}
