package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/JDigital-dev/phcleanpro/internal/assistant"
	"github.com/JDigital-dev/phcleanpro/internal/httperr"
	"github.com/JDigital-dev/phcleanpro/internal/httpresp"
)

type AssistantHandler struct {
	svc *assistant.Service
}

func NewAssistantHandler(svc *assistant.Service) *AssistantHandler {
	return &AssistantHandler{svc: svc}
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat always answers 200 with some reply; assistant failures surface
// as the fixed apology, never as an error status.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A message is required.")
		return
	}

	reply := h.svc.Respond(c.Request.Context(), req.Message)

	httpresp.OK(c, gin.H{"reply": reply})
}
