package availability

import (
	"context"
	"fmt"
	"time"

	"barberbook/internal/domain"
)

// slotStep is the booking grid: start times are always aligned to it,
// whatever the service duration.
const slotStep = 30 * time.Minute

type Service struct {
	hours        WorkingHoursRepository
	blocks       BlockedTimeRepository
	appointments AppointmentRepository

	// now is swapped out in tests.
	now func() time.Time
}

func NewService(hours WorkingHoursRepository, blocks BlockedTimeRepository, appointments AppointmentRepository) *Service {
	return &Service{
		hours:        hours,
		blocks:       blocks,
		appointments: appointments,
		now:          time.Now,
	}
}

// Slots returns the bookable "HH:MM" start times for a barber on a
// calendar day, ascending. A slot must fit the whole service before
// closing time, must not have started yet, and must not overlap any
// blocked interval or live appointment.
func (s *Service) Slots(ctx context.Context, shopID, barberID int64, day time.Time, durationMinutes int) ([]string, error) {
	wh, err := s.hours.GetForDay(ctx, shopID, barberID, int(day.Weekday()))
	if err != nil {
		return nil, err
	}
	if wh == nil {
		// barber does not work that day
		return []string{}, nil
	}

	open, err := atTimeOfDay(day, wh.StartTime)
	if err != nil {
		return nil, fmt.Errorf("availability: bad working hours start %q: %w", wh.StartTime, err)
	}
	close, err := atTimeOfDay(day, wh.EndTime)
	if err != nil {
		return nil, fmt.Errorf("availability: bad working hours end %q: %w", wh.EndTime, err)
	}

	blocks, err := s.blocks.ListForDay(ctx, shopID, barberID, day)
	if err != nil {
		return nil, err
	}
	appts, err := s.appointments.ListBlockingForDay(ctx, shopID, barberID, day)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(durationMinutes) * time.Minute
	now := s.now()

	slots := []string{}
	for cur := open; ; cur = cur.Add(slotStep) {
		slotEnd := cur.Add(duration)
		if slotEnd.After(close) {
			break
		}
		if !cur.After(now) {
			continue
		}
		if overlapsBlock(cur, slotEnd, blocks) || overlapsAppointment(cur, slotEnd, appts) {
			continue
		}
		slots = append(slots, cur.Format("15:04"))
	}
	return slots, nil
}

// atTimeOfDay puts an "HH:MM" time of day onto the given calendar day.
func atTimeOfDay(day time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

// Intervals are half-open: [start, end) overlaps [bStart, bEnd) iff
// start < bEnd && end > bStart. Back-to-back slots do not collide.
func overlapsBlock(start, end time.Time, blocks []domain.BlockedTime) bool {
	for _, b := range blocks {
		if start.Before(b.EndTime) && end.After(b.StartTime) {
			return true
		}
	}
	return false
}

func overlapsAppointment(start, end time.Time, appts []domain.Appointment) bool {
	for _, a := range appts {
		if start.Before(a.EndTime) && end.After(a.StartTime) {
			return true
		}
	}
	return false
}
