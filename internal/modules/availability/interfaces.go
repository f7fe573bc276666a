package availability

import (
	"context"
	"time"

	"barberbook/internal/domain"
)

// WorkingHoursRepository resolves a barber's weekly schedule.
type WorkingHoursRepository interface {
	GetForDay(ctx context.Context, shopID, barberID int64, dayOfWeek int) (*domain.WorkingHours, error)
}

// BlockedTimeRepository lists one-off unavailable intervals.
type BlockedTimeRepository interface {
	ListForDay(ctx context.Context, shopID, barberID int64, day time.Time) ([]domain.BlockedTime, error)
}

// AppointmentRepository lists appointments that still occupy their slot.
type AppointmentRepository interface {
	ListBlockingForDay(ctx context.Context, shopID, barberID int64, day time.Time) ([]domain.Appointment, error)
}
