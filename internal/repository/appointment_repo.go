package repository

import (
	"context"
	"errors"
	"time"

	"barberbook/internal/domain"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

type appointmentModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	Code          string    `gorm:"column:code"`
	ShopID        int64     `gorm:"column:shop_id"`
	BarberID      int64     `gorm:"column:barber_id"`
	ServiceID     int64     `gorm:"column:service_id"`
	CustomerPhone string    `gorm:"column:customer_phone"`
	CustomerName  *string   `gorm:"column:customer_name"`
	StartTime     time.Time `gorm:"column:start_time"`
	EndTime       time.Time `gorm:"column:end_time"`
	Status        string    `gorm:"column:status"`
	OriginalPrice float64   `gorm:"column:original_price"`
	FinalPrice    float64   `gorm:"column:final_price"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (appointmentModel) TableName() string { return "appointments" }

func toDomainAppointment(m appointmentModel) *domain.Appointment {
	return &domain.Appointment{
		ID:            m.ID,
		Code:          m.Code,
		ShopID:        m.ShopID,
		BarberID:      m.BarberID,
		ServiceID:     m.ServiceID,
		CustomerPhone: m.CustomerPhone,
		CustomerName:  m.CustomerName,
		StartTime:     m.StartTime,
		EndTime:       m.EndTime,
		Status:        domain.AppointmentStatus(m.Status),
		OriginalPrice: m.OriginalPrice,
		FinalPrice:    m.FinalPrice,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toAppointmentModel(a *domain.Appointment) appointmentModel {
	return appointmentModel{
		ID:            a.ID,
		Code:          a.Code,
		ShopID:        a.ShopID,
		BarberID:      a.BarberID,
		ServiceID:     a.ServiceID,
		CustomerPhone: a.CustomerPhone,
		CustomerName:  a.CustomerName,
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
		Status:        string(a.Status),
		OriginalPrice: a.OriginalPrice,
		FinalPrice:    a.FinalPrice,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	m := toAppointmentModel(a)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainAppointment(m)
	return nil
}

// ListBlockingForDay returns the barber's appointments intersecting the
// calendar day, excluding statuses that free the slot (cancelled,
// no_show).
func (r *AppointmentRepository) ListBlockingForDay(ctx context.Context, shopID, barberID int64, day time.Time) ([]domain.Appointment, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var rows []appointmentModel
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND barber_id = ? AND start_time < ? AND end_time > ?",
			shopID, barberID, dayEnd, dayStart).
		Where("status NOT IN ?", []string{
			string(domain.AppointmentCancelled),
			string(domain.AppointmentNoShow),
		}).
		Order("start_time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Appointment, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainAppointment(m))
	}
	return out, nil
}

// ListForDay returns every appointment of the day regardless of status,
// for the owner dashboard.
func (r *AppointmentRepository) ListForDay(ctx context.Context, shopID, barberID int64, day time.Time) ([]domain.Appointment, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	q := r.db.WithContext(ctx).
		Where("shop_id = ? AND start_time < ? AND end_time > ?", shopID, dayEnd, dayStart)
	if barberID > 0 {
		q = q.Where("barber_id = ?", barberID)
	}

	var rows []appointmentModel
	if err := q.Order("start_time ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Appointment, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainAppointment(m))
	}
	return out, nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, shopID, id int64) (*domain.Appointment, error) {
	var m appointmentModel
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toDomainAppointment(m), nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, shopID, id int64, status domain.AppointmentStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&appointmentModel{}).
		Where("shop_id = ? AND id = ?", shopID, id).
		Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
