package bot

import "barberbook/internal/domain"

// WebhookRequest is the inbound message payload posted by the WhatsApp
// provider. Sender is the customer's phone with country code.
type WebhookRequest struct {
	InstanceID string `json:"instanceId" binding:"required"`
	Message    string `json:"msgContent" binding:"required"`
	Sender     string `json:"sender" binding:"required"`
	SenderName string `json:"senderName"`
}

// Result is what one handled message produced: the step the session
// ended on and the reply that was sent back to the customer.
type Result struct {
	Cancelled bool
	Step      domain.Step
	Reply     string
}
