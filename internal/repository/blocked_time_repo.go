package repository

import (
	"context"
	"time"

	"barberbook/internal/domain"

	"gorm.io/gorm"
)

type BlockedTimeRepository struct {
	db *gorm.DB
}

func NewBlockedTimeRepository(db *gorm.DB) *BlockedTimeRepository {
	return &BlockedTimeRepository{db: db}
}

// ListForDay returns the barber's blocked intervals intersecting the
// calendar day that contains `day`.
func (r *BlockedTimeRepository) ListForDay(ctx context.Context, shopID, barberID int64, day time.Time) ([]domain.BlockedTime, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var out []domain.BlockedTime
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND barber_id = ? AND start_time < ? AND end_time > ?",
			shopID, barberID, dayEnd, dayStart).
		Order("start_time ASC").
		Find(&out).Error
	return out, err
}

func (r *BlockedTimeRepository) Create(ctx context.Context, bt *domain.BlockedTime) error {
	return r.db.WithContext(ctx).Create(bt).Error
}
