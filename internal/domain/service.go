package domain

import "time"

// Service is a treatment offered by a shop (haircut, beard trim, ...).
type Service struct {
	ID              int64     `json:"id"`
	ShopID          int64     `json:"shop_id" validate:"required"`
	Name            string    `json:"name" validate:"required"`
	Price           float64   `json:"price" validate:"gte=0"`
	DurationMinutes int       `json:"duration_minutes" validate:"gt=0"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
