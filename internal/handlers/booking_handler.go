package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/JDigital-dev/phcleanpro/internal/domain/booking"
	"github.com/JDigital-dev/phcleanpro/internal/httperr"
	"github.com/JDigital-dev/phcleanpro/internal/httpresp"
	ucBooking "github.com/JDigital-dev/phcleanpro/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	submitUC *ucBooking.SubmitBooking
	quoteUC  *ucBooking.GetQuote
}

func NewBookingHandler(
	submitUC *ucBooking.SubmitBooking,
	quoteUC *ucBooking.GetQuote,
) *BookingHandler {
	return &BookingHandler{
		submitUC: submitUC,
		quoteUC:  quoteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// No binding:"required" tags here: field-level problems go through the
// domain validator so the first offending field is always reported the
// same way. Note the absence of any price field.
type BookingSubmissionRequest struct {
	ServiceID string   `json:"service_id"`
	AddonIDs  []string `json:"addon_ids"`

	Location struct {
		Address      string `json:"address"`
		Neighborhood string `json:"neighborhood"`
	} `json:"location"`

	Schedule struct {
		Date     string `json:"date"`
		TimeSlot string `json:"time_slot"`
	} `json:"schedule"`

	Contact struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	} `json:"contact"`
}

type QuoteRequest struct {
	ServiceID    string   `json:"service_id"`
	AddonIDs     []string `json:"addon_ids"`
	Neighborhood string   `json:"neighborhood"`
}

type ValidateStepRequest struct {
	Step string `json:"step" binding:"required"`

	Draft BookingSubmissionRequest `json:"draft"`
}

// ======================================================
// SUBMIT
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req BookingSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	rec, err := h.submitUC.Execute(c.Request.Context(), ucBooking.SubmitInput{
		ServiceID:    req.ServiceID,
		AddonIDs:     req.AddonIDs,
		Address:      req.Location.Address,
		Neighborhood: req.Location.Neighborhood,
		Date:         req.Schedule.Date,
		TimeSlot:     req.Schedule.TimeSlot,
		Name:         req.Contact.Name,
		Email:        req.Contact.Email,
		Phone:        req.Contact.Phone,
	})
	if err != nil {
		mapSubmitError(c, err)
		return
	}

	httpresp.Success(c, http.StatusCreated, gin.H{
		"message": "Booking confirmed successfully!",
		"booking": rec,
	})
}

// ======================================================
// QUOTE (PREVIEW == RECOMPUTE)
// ======================================================

func (h *BookingHandler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	quote, err := h.quoteUC.Execute(c.Request.Context(), ucBooking.QuoteInput{
		ServiceID:    req.ServiceID,
		AddonIDs:     req.AddonIDs,
		Neighborhood: req.Neighborhood,
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_service") {
			httperr.BadRequest(c, "invalid_service", "Unknown service.")
			return
		}
		httperr.Internal(c, "quote_failed", "Could not compute a quote.")
		return
	}

	httpresp.OK(c, quote)
}

// ======================================================
// WIZARD STEP VALIDATION
// ======================================================

func (h *BookingHandler) ValidateStep(c *gin.Context) {
	var req ValidateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	step, err := domain.ParseStep(req.Step)
	if err != nil {
		httperr.BadRequest(c, "unknown_step", "Unknown wizard step.")
		return
	}

	d := domain.Draft{
		ServiceID:    req.Draft.ServiceID,
		AddonIDs:     req.Draft.AddonIDs,
		Address:      req.Draft.Location.Address,
		Neighborhood: req.Draft.Location.Neighborhood,
		Date:         req.Draft.Schedule.Date,
		TimeSlot:     req.Draft.Schedule.TimeSlot,
		Name:         req.Draft.Contact.Name,
		Email:        req.Draft.Contact.Email,
		Phone:        req.Draft.Contact.Phone,
	}

	if verr := domain.StepComplete(step, d); verr != nil {
		httpresp.OK(c, gin.H{
			"valid":  false,
			"field":  verr.Field,
			"reason": verr.Reason,
		})
		return
	}

	out := gin.H{"valid": true}
	if next, err := domain.NextStep(step, d); err == nil {
		out["next"] = next
	}
	httpresp.OK(c, out)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func mapSubmitError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		httperr.Validation(c, verr.Field, verr.Reason)
		return
	}

	if httperr.IsBusiness(err, "invalid_service") {
		httperr.BadRequest(c, "invalid_service", "Invalid service ID detected.")
		return
	}

	httperr.Internal(c, "submit_failed", "An unexpected error occurred. Please try again.")
}
