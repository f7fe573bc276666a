package repository

import (
	"context"
	"errors"

	"barberbook/internal/domain"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type ShopRepository struct {
	db *gorm.DB
}

func NewShopRepository(db *gorm.DB) *ShopRepository {
	return &ShopRepository{db: db}
}

// GetByInstanceID resolves a WhatsApp provider instance id to its shop.
func (r *ShopRepository) GetByInstanceID(ctx context.Context, instanceID string) (*domain.Shop, error) {
	var s domain.Shop
	err := r.db.WithContext(ctx).Where("instance_id = ?", instanceID).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *ShopRepository) GetByID(ctx context.Context, id int64) (*domain.Shop, error) {
	var s domain.Shop
	err := r.db.WithContext(ctx).First(&s, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *ShopRepository) Create(ctx context.Context, s *domain.Shop) error {
	return r.db.WithContext(ctx).Create(s).Error
}
