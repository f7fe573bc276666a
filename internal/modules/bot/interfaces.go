package bot

import (
	"context"
	"time"

	"barberbook/internal/domain"
	"barberbook/internal/modules/booking"
)

type ShopRepository interface {
	GetByInstanceID(ctx context.Context, instanceID string) (*domain.Shop, error)
}

type ServiceRepository interface {
	ListActive(ctx context.Context, shopID int64) ([]domain.Service, error)
}

type BarberRepository interface {
	ListActive(ctx context.Context, shopID int64) ([]domain.Barber, error)
}

type CustomerRepository interface {
	GetByPhone(ctx context.Context, shopID int64, phone string) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
	UpdateName(ctx context.Context, id int64, name string) error
}

type SessionStore interface {
	LoadOrCreate(ctx context.Context, shopID int64, phone string) (*domain.ConversationSession, error)
	Update(ctx context.Context, shopID int64, phone string, step domain.Step, tempData map[string]any) error
	Reset(ctx context.Context, shopID int64, phone string) error
}

// SlotFinder computes bookable "HH:MM" start times for a barber/day.
type SlotFinder interface {
	Slots(ctx context.Context, shopID, barberID int64, day time.Time, durationMinutes int) ([]string, error)
}

// AppointmentBooker persists a finished selection as an appointment.
type AppointmentBooker interface {
	Create(ctx context.Context, req booking.CreateRequest) (*domain.Appointment, error)
}

// Messenger delivers the reply through the shop's provider instance.
type Messenger interface {
	SendText(ctx context.Context, instanceID, token, phone, text string) error
}
