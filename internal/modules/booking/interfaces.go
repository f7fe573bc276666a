package booking

import (
	"context"

	"barberbook/internal/domain"
)

type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) error
}

type ServiceRepository interface {
	GetByID(ctx context.Context, shopID, id int64) (*domain.Service, error)
}

type CustomerRepository interface {
	GetByPhone(ctx context.Context, shopID int64, phone string) (*domain.Customer, error)
}
