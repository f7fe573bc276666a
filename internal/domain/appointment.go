package domain

import "time"

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no_show"
)

// Blocks reports whether an appointment in this status still occupies
// its time slot. Cancelled and no-show appointments free the slot.
func (s AppointmentStatus) Blocks() bool {
	return s != AppointmentCancelled && s != AppointmentNoShow
}

type Appointment struct {
	ID            int64             `json:"id"`
	Code          string            `json:"code" gorm:"uniqueIndex"`
	ShopID        int64             `json:"shop_id" validate:"required"`
	BarberID      int64             `json:"barber_id" validate:"required"`
	ServiceID     int64             `json:"service_id" validate:"required"`
	CustomerPhone string            `json:"customer_phone" validate:"required"`
	CustomerName  *string           `json:"customer_name,omitempty"`
	StartTime     time.Time         `json:"start_time" validate:"required"`
	EndTime       time.Time         `json:"end_time" validate:"required"`
	Status        AppointmentStatus `json:"status"`
	OriginalPrice float64           `json:"original_price"`
	FinalPrice    float64           `json:"final_price"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`

	Barber  *Barber  `json:"barber,omitempty" gorm:"foreignKey:BarberID"`
	Service *Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
}
