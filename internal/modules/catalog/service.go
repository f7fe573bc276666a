package catalog

import (
	"context"
	"errors"
	"time"

	"barberbook/internal/domain"
	"barberbook/internal/repository"
)

var ErrValidation = errors.New("validation error")

// Service backs the owner dashboard: managing the shop's catalog,
// staff schedules and looking at the agenda. The WhatsApp bot reads
// the same repositories.
type Service struct {
	services     *repository.ServiceRepository
	barbers      *repository.BarberRepository
	hours        *repository.WorkingHoursRepository
	blocks       *repository.BlockedTimeRepository
	appointments *repository.AppointmentRepository
}

func NewService(
	services *repository.ServiceRepository,
	barbers *repository.BarberRepository,
	hours *repository.WorkingHoursRepository,
	blocks *repository.BlockedTimeRepository,
	appointments *repository.AppointmentRepository,
) *Service {
	return &Service{services, barbers, hours, blocks, appointments}
}

func (s *Service) ListServices(ctx context.Context, shopID int64) ([]domain.Service, error) {
	return s.services.List(ctx, shopID)
}

func (s *Service) CreateService(ctx context.Context, shopID int64, req CreateServiceRequest) (*domain.Service, error) {
	svc := &domain.Service{
		ShopID:          shopID,
		Name:            req.Name,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Active:          true,
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) ListBarbers(ctx context.Context, shopID int64) ([]domain.Barber, error) {
	return s.barbers.List(ctx, shopID)
}

func (s *Service) CreateBarber(ctx context.Context, shopID int64, req CreateBarberRequest) (*domain.Barber, error) {
	b := &domain.Barber{
		ShopID: shopID,
		Name:   req.Name,
		Active: true,
	}
	if req.Active != nil {
		b.Active = *req.Active
	}
	if err := s.barbers.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// SetWorkingHours replaces the barber's weekly schedule entries
// one weekday at a time (upsert keyed on barber+weekday).
func (s *Service) SetWorkingHours(ctx context.Context, shopID, barberID int64, req SetWorkingHoursRequest) ([]domain.WorkingHours, error) {
	if _, err := s.barbers.GetByID(ctx, shopID, barberID); err != nil {
		return nil, err
	}

	for _, e := range req.Hours {
		if !validHHMM(e.StartTime) || !validHHMM(e.EndTime) {
			return nil, ErrValidation
		}
		wh := &domain.WorkingHours{
			ShopID:    shopID,
			BarberID:  barberID,
			DayOfWeek: e.DayOfWeek,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
			Active:    e.Active,
		}
		if err := s.hours.Upsert(ctx, wh); err != nil {
			return nil, err
		}
	}

	return s.hours.ListForBarber(ctx, shopID, barberID)
}

func (s *Service) CreateBlockedTime(ctx context.Context, shopID, barberID int64, req CreateBlockedTimeRequest) (*domain.BlockedTime, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrValidation
	}
	if _, err := s.barbers.GetByID(ctx, shopID, barberID); err != nil {
		return nil, err
	}

	bt := &domain.BlockedTime{
		ShopID:    shopID,
		BarberID:  barberID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	}
	if err := s.blocks.Create(ctx, bt); err != nil {
		return nil, err
	}
	return bt, nil
}

// DayAppointments lists the day's agenda; barberID 0 means all barbers.
func (s *Service) DayAppointments(ctx context.Context, shopID, barberID int64, day time.Time) ([]domain.Appointment, error) {
	return s.appointments.ListForDay(ctx, shopID, barberID, day)
}

func validHHMM(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
