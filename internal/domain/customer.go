package domain

import "time"

// Customer is the loyalty record for a phone number within one shop.
type Customer struct {
	ID        int64     `json:"id"`
	ShopID    int64     `json:"shop_id" gorm:"index:idx_shop_phone,unique"`
	Phone     string    `json:"phone" gorm:"index:idx_shop_phone,unique"`
	Name      string    `json:"name"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
