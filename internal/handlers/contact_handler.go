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

type ContactHandler struct {
	submitUC *ucBooking.SubmitContactMessage
}

func NewContactHandler(submitUC *ucBooking.SubmitContactMessage) *ContactHandler {
	return &ContactHandler{submitUC: submitUC}
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	_, err := h.submitUC.Execute(c.Request.Context(), ucBooking.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			httperr.Validation(c, verr.Field, verr.Reason)
			return
		}
		httperr.Internal(c, "contact_failed", "Could not send your message.")
		return
	}

	httpresp.Success(c, http.StatusCreated, gin.H{
		"message": "Message sent successfully.",
	})
}
