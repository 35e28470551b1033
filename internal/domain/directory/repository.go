package directory

import (
	"context"
	"errors"

	"github.com/jhc-clinics/hms-api/internal/models"
)

// ErrNotFound reports an absent record. Implementations translate their
// store's missing-row error to it so callers can tell absence from an
// outage; any other lookup error is a store failure and passes through.
var ErrNotFound = errors.New("record not found")

// Repository is the identity directory: uniqueness checks and lookups for
// hospitals, doctors and patients. Existence checks run before every create
// so the caller can name the conflicting field; the storage layer's unique
// indexes remain the authoritative backstop for concurrent registrations.
type Repository interface {
	// -------- Hospital --------
	HospitalEmailExists(ctx context.Context, email string) (bool, error)
	HospitalPhoneExists(ctx context.Context, phone string) (bool, error)
	HospitalUsernameExists(ctx context.Context, username string) (bool, error)
	CreateHospital(ctx context.Context, h *models.Hospital) error
	HospitalByEmail(ctx context.Context, email string) (*models.Hospital, error)
	HospitalByID(ctx context.Context, id uint) (*models.Hospital, error)

	// -------- Doctor --------
	DoctorEmailExists(ctx context.Context, email string) (bool, error)
	DoctorPhoneExists(ctx context.Context, phone string) (bool, error)
	CreateDoctor(ctx context.Context, d *models.Doctor) error
	DoctorByEmail(ctx context.Context, email string) (*models.Doctor, error)
	DoctorByID(ctx context.Context, id uint) (*models.Doctor, error)
	UpdateDoctor(ctx context.Context, d *models.Doctor) error

	// -------- Patient --------
	PatientEmailExists(ctx context.Context, email string) (bool, error)
	PatientPhoneExists(ctx context.Context, phone string) (bool, error)
	CreatePatient(ctx context.Context, p *models.Patient) error
	PatientByEmail(ctx context.Context, email string) (*models.Patient, error)
	UpdatePatient(ctx context.Context, p *models.Patient) error
}
