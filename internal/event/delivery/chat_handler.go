package delivery

import (
	"errors"
	"net/http"

	"planner-backend/internal/event/usecase"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles free text event creation
type ChatHandler struct {
	chatUsecase usecase.ChatUsecase
}

func NewChatHandler(chatUsecase usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{chatUsecase: chatUsecase}
}

type addEventRequest struct {
	Query string `json:"query"`
}

// AddEvent creates an event from a natural language description
// POST /api/chat/add_event
func (h *ChatHandler) AddEvent(c *gin.Context) {
	var req addEventRequest
	// An unreadable body is treated like a missing query.
	_ = c.ShouldBindJSON(&req)

	event, err := h.chatUsecase.CreateEventFromQuery(c.Request.Context(), c.GetString("userID"), req.Query)
	if err != nil {
		c.JSON(chatStatus(err), gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "event": event})
}

func chatStatus(err error) int {
	var chatErr *usecase.ChatError
	if errors.As(err, &chatErr) && chatErr.Kind == usecase.KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
