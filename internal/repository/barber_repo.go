package repository

import (
	"context"
	"errors"

	"barberbook/internal/domain"

	"gorm.io/gorm"
)

type BarberRepository struct {
	db *gorm.DB
}

func NewBarberRepository(db *gorm.DB) *BarberRepository {
	return &BarberRepository{db: db}
}

func (r *BarberRepository) ListActive(ctx context.Context, shopID int64) ([]domain.Barber, error) {
	var out []domain.Barber
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND active = ?", shopID, true).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *BarberRepository) List(ctx context.Context, shopID int64) ([]domain.Barber, error) {
	var out []domain.Barber
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *BarberRepository) GetByID(ctx context.Context, shopID, id int64) (*domain.Barber, error) {
	var b domain.Barber
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		First(&b, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BarberRepository) Create(ctx context.Context, b *domain.Barber) error {
	return r.db.WithContext(ctx).Create(b).Error
}
