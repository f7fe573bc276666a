package repository

import (
	"context"
	"errors"

	"barberbook/internal/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// ListActive returns the shop's bookable services in a stable order.
// The bot presents them as a 1-based numbered menu, so ordering here
// must match between the listing and the selection parse.
func (r *ServiceRepository) ListActive(ctx context.Context, shopID int64) ([]domain.Service, error) {
	var out []domain.Service
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND active = ?", shopID, true).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *ServiceRepository) List(ctx context.Context, shopID int64) ([]domain.Service, error) {
	var out []domain.Service
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *ServiceRepository) GetByID(ctx context.Context, shopID, id int64) (*domain.Service, error) {
	var s domain.Service
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		First(&s, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}
