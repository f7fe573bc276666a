package repository

import (
	"context"
	"errors"

	"barberbook/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WorkingHoursRepository struct {
	db *gorm.DB
}

func NewWorkingHoursRepository(db *gorm.DB) *WorkingHoursRepository {
	return &WorkingHoursRepository{db: db}
}

// GetForDay returns the barber's active working interval for a weekday
// (0=Sunday..6=Saturday), or nil when the barber does not work that day.
func (r *WorkingHoursRepository) GetForDay(ctx context.Context, shopID, barberID int64, dayOfWeek int) (*domain.WorkingHours, error) {
	var wh domain.WorkingHours
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND barber_id = ? AND day_of_week = ? AND active = ?",
			shopID, barberID, dayOfWeek, true).
		First(&wh).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &wh, nil
}

func (r *WorkingHoursRepository) ListForBarber(ctx context.Context, shopID, barberID int64) ([]domain.WorkingHours, error) {
	var out []domain.WorkingHours
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND barber_id = ?", shopID, barberID).
		Order("day_of_week ASC").
		Find(&out).Error
	return out, err
}

// Upsert keeps one row per (barber, weekday).
func (r *WorkingHoursRepository) Upsert(ctx context.Context, wh *domain.WorkingHours) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "barber_id"}, {Name: "day_of_week"}},
			DoUpdates: clause.AssignmentColumns([]string{"start_time", "end_time", "active"}),
		}).
		Create(wh).Error
}
