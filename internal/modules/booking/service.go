package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"barberbook/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	appointments AppointmentRepository
	services     ServiceRepository
	customers    CustomerRepository
}

func NewService(appointments AppointmentRepository, services ServiceRepository, customers CustomerRepository) *Service {
	return &Service{
		appointments: appointments,
		services:     services,
		customers:    customers,
	}
}

// CreateRequest is a fully-selected booking coming out of the bot flow.
// Date is the calendar day, Time the chosen "HH:MM" grid slot.
type CreateRequest struct {
	ShopID    int64
	BarberID  int64
	ServiceID int64
	Date      time.Time
	Time      string
	Phone     string
}

// Create books a confirmed appointment for the selection. The price is
// re-read from the service record at booking time; the loyalty record's
// display name, when known, is copied onto the appointment.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Appointment, error) {
	if req.ShopID == 0 || req.BarberID == 0 || req.ServiceID == 0 || req.Phone == "" {
		return nil, ErrValidation
	}

	svc, err := s.services.GetByID(ctx, req.ShopID, req.ServiceID)
	if err != nil {
		return nil, err
	}

	start, err := atTime(req.Date, req.Time)
	if err != nil {
		return nil, ErrValidation
	}
	end := start.Add(time.Duration(svc.DurationMinutes) * time.Minute)

	phone := digitsOnly(req.Phone)

	var name *string
	if c, err := s.customers.GetByPhone(ctx, req.ShopID, phone); err == nil && c != nil && c.Name != "" {
		n := c.Name
		name = &n
	}

	appt := &domain.Appointment{
		Code:          uuid.NewString(),
		ShopID:        req.ShopID,
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
		CustomerPhone: phone,
		CustomerName:  name,
		StartTime:     start,
		EndTime:       end,
		Status:        domain.AppointmentConfirmed,
		OriginalPrice: svc.Price,
		FinalPrice:    svc.Price,
	}

	if err := s.appointments.Create(ctx, appt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "idx_no_double_booking" {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	return appt, nil
}

func atTime(day time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
