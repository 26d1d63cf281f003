package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/JDigital-dev/phcleanpro/internal/domain/booking"
	"github.com/JDigital-dev/phcleanpro/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

var _ domain.Repository = (*BookingGormRepository)(nil)

// ======================================================
// BOOKINGS
// ======================================================

func (r *BookingGormRepository) Append(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetByReference(
	ctx context.Context,
	reference string,
) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("reference = ?", reference).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) Update(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) ListAll(
	ctx context.Context,
) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListByStatus(
	ctx context.Context,
	status domain.Status,
) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ClearAll(
	ctx context.Context,
) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Booking{}).Error
}

// ======================================================
// CONTACT LEADS
// ======================================================

func (r *BookingGormRepository) SaveContactMessage(
	ctx context.Context,
	m *models.ContactMessage,
) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *BookingGormRepository) ListContactMessages(
	ctx context.Context,
) ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}
