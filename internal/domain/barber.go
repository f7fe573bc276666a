package domain

import "time"

type Barber struct {
	ID        int64     `json:"id"`
	ShopID    int64     `json:"shop_id" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WorkingHours is one weekly recurring working interval for a barber.
// DayOfWeek follows time.Weekday numbering: 0=Sunday .. 6=Saturday.
// Start and end are local times of day in "HH:MM".
type WorkingHours struct {
	ID        int64  `json:"id"`
	ShopID    int64  `json:"shop_id"`
	BarberID  int64  `json:"barber_id" gorm:"index:idx_barber_weekday,unique"`
	DayOfWeek int    `json:"day_of_week" gorm:"index:idx_barber_weekday,unique"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    bool   `json:"active"`
}

// BlockedTime is a one-off unavailable interval (vacation, break).
type BlockedTime struct {
	ID        int64     `json:"id"`
	ShopID    int64     `json:"shop_id"`
	BarberID  int64     `json:"barber_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Reason    string    `json:"reason,omitempty" gorm:"type:text"`
}
