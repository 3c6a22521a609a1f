package handlers

import (
	"errors"
	"net/http"

	"serveease/services/assistant"
	"serveease/utils"

	"github.com/gin-gonic/gin"
)

// AssistantHandler exposes the support conversation.
type AssistantHandler struct {
	Resolver *assistant.Resolver
}

func NewAssistantHandler(resolver *assistant.Resolver) *AssistantHandler {
	return &AssistantHandler{Resolver: resolver}
}

// SendMessage handles POST /api/assistant/message.
func (h *AssistantHandler) SendMessage(c *gin.Context) {
	var input struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid message payload.", err.Error())
		return
	}

	if err := h.Resolver.SubmitUserMessage(c.Request.Context(), input.Message); err != nil {
		if errors.Is(err, assistant.ErrNoResponder) {
			utils.JSONError(c, http.StatusBadGateway, "Unable to respond.", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Unable to respond.", err.Error())
		return
	}
	c.JSON(http.StatusOK, h.Resolver.State())
}

// GetConversation handles GET /api/assistant.
func (h *AssistantHandler) GetConversation(c *gin.Context) {
	c.JSON(http.StatusOK, h.Resolver.State())
}
