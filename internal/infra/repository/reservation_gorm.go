package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/jhc-clinics/hms-api/internal/domain/reservation"
	"github.com/jhc-clinics/hms-api/internal/httperr"
	"github.com/jhc-clinics/hms-api/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

func (r *ReservationGormRepository) GetDoctorByID(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var d models.Doctor
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *ReservationGormRepository) SlotTaken(
	ctx context.Context,
	doctorID uint,
	date string,
	timeOfDay string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where(
			"doctor_id = ? AND date = ? AND time = ?",
			doctorID, date, timeOfDay,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {

	err := r.db.WithContext(ctx).Create(res).Error
	if err == nil {
		return nil
	}

	// The (doctor_id, date, time) unique index is the backstop for two
	// bookings racing past the SlotTaken check.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusiness(
			"slot_conflict",
			"Doctor already has an appointment at this time",
		)
	}

	return err
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
