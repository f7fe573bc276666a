package bot

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BotService is what the webhook handler needs from the dialogue engine.
type BotService interface {
	HandleMessage(ctx context.Context, req WebhookRequest) (*Result, error)
}

type Handler struct {
	service BotService
}

func NewHandler(service BotService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/webhook/whatsapp", h.HandleWebhook)
}

// HandleWebhook processes one inbound WhatsApp message. It always
// answers 200 once the message was handled, even when the outbound
// reply could not be delivered: the session state is already persisted
// and the provider must not redeliver.
func (h *Handler) HandleWebhook(c *gin.Context) {
	var req WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "instanceId, msgContent and sender are required",
		})
		return
	}

	result, err := h.service.HandleMessage(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrShopNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "no shop registered for this instance",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to process message",
		})
		return
	}

	if result.Cancelled {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"action":  "cancelled",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"step":    result.Step,
		"message": result.Reply,
	})
}
