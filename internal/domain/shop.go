package domain

import "time"

// Shop is a tenant: one barbershop with its own catalog, staff and
// WhatsApp instance credentials.
type Shop struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name" validate:"required"`
	InstanceID string    `json:"instance_id" gorm:"uniqueIndex"`
	APIToken   string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
