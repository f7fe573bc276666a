package domain

import "time"

// Step is a dialogue state of the WhatsApp booking conversation.
type Step string

const (
	StepWelcome       Step = "welcome"
	StepMenu          Step = "menu"
	StepSelectService Step = "select_service"
	StepSelectBarber  Step = "select_barber"
	StepSelectDate    Step = "select_date"
	StepSelectTime    Step = "select_time"
	StepConfirmed     Step = "confirmed"
	StepHumanSupport  Step = "human_support"
)

// ConversationSession is the per-(shop, phone) dialogue state persisted
// between webhook calls. TempData accumulates the in-progress booking
// selections; after a JSON round-trip its numbers come back as float64,
// so reads must go through the bot package's typed accessors.
type ConversationSession struct {
	ShopID    int64          `json:"shop_id"`
	Phone     string         `json:"phone"`
	Step      Step           `json:"step"`
	TempData  map[string]any `json:"temp_data"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// Expired reports whether the session has lapsed. An expired session is
// treated as absent and replaced on next contact.
func (s *ConversationSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
