package reservation

import (
	"context"
	"errors"

	"github.com/jhc-clinics/hms-api/internal/models"
)

// ErrNotFound reports an absent record, as opposed to a failing store.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	// GetDoctorByID returns ErrNotFound for an unknown id.
	GetDoctorByID(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	// SlotTaken reports whether the doctor already holds a reservation at
	// exactly the same date and time.
	SlotTaken(
		ctx context.Context,
		doctorID uint,
		date string,
		timeOfDay string,
	) (bool, error)

	// CreateReservation returns a slot_conflict business error when the
	// composite unique index rejects a concurrent duplicate.
	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error
}
