package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jhc-clinics/hms-api/internal/domain/directory"
	"github.com/jhc-clinics/hms-api/internal/models"
)

type DirectoryGormRepository struct {
	db *gorm.DB
}

func NewDirectoryGormRepository(db *gorm.DB) *DirectoryGormRepository {
	return &DirectoryGormRepository{db: db}
}

// --------------------------------------------------
// Hospital
// --------------------------------------------------

func (r *DirectoryGormRepository) HospitalEmailExists(
	ctx context.Context,
	email string,
) (bool, error) {
	return r.exists(ctx, &models.Hospital{}, "email = ?", email)
}

func (r *DirectoryGormRepository) HospitalPhoneExists(
	ctx context.Context,
	phone string,
) (bool, error) {
	return r.exists(ctx, &models.Hospital{}, "phone = ?", phone)
}

func (r *DirectoryGormRepository) HospitalUsernameExists(
	ctx context.Context,
	username string,
) (bool, error) {
	return r.exists(ctx, &models.Hospital{}, "username = ?", username)
}

func (r *DirectoryGormRepository) CreateHospital(
	ctx context.Context,
	h *models.Hospital,
) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *DirectoryGormRepository) HospitalByEmail(
	ctx context.Context,
	email string,
) (*models.Hospital, error) {

	var h models.Hospital
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&h).Error; err != nil {
		return nil, asDomainErr(err)
	}
	return &h, nil
}

func (r *DirectoryGormRepository) HospitalByID(
	ctx context.Context,
	id uint,
) (*models.Hospital, error) {

	var h models.Hospital
	if err := r.db.WithContext(ctx).First(&h, id).Error; err != nil {
		return nil, asDomainErr(err)
	}
	return &h, nil
}

// --------------------------------------------------
// Doctor
// --------------------------------------------------

func (r *DirectoryGormRepository) DoctorEmailExists(
	ctx context.Context,
	email string,
) (bool, error) {
	return r.exists(ctx, &models.Doctor{}, "email = ?", email)
}

func (r *DirectoryGormRepository) DoctorPhoneExists(
	ctx context.Context,
	phone string,
) (bool, error) {
	return r.exists(ctx, &models.Doctor{}, "phone = ?", phone)
}

func (r *DirectoryGormRepository) CreateDoctor(
	ctx context.Context,
	d *models.Doctor,
) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DirectoryGormRepository) DoctorByEmail(
	ctx context.Context,
	email string,
) (*models.Doctor, error) {

	var d models.Doctor
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&d).Error; err != nil {
		return nil, asDomainErr(err)
	}
	return &d, nil
}

func (r *DirectoryGormRepository) DoctorByID(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var d models.Doctor
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, asDomainErr(err)
	}
	return &d, nil
}

func (r *DirectoryGormRepository) UpdateDoctor(
	ctx context.Context,
	d *models.Doctor,
) error {
	return r.db.WithContext(ctx).Save(d).Error
}

// --------------------------------------------------
// Patient
// --------------------------------------------------

func (r *DirectoryGormRepository) PatientEmailExists(
	ctx context.Context,
	email string,
) (bool, error) {
	return r.exists(ctx, &models.Patient{}, "email = ?", email)
}

func (r *DirectoryGormRepository) PatientPhoneExists(
	ctx context.Context,
	phone string,
) (bool, error) {
	return r.exists(ctx, &models.Patient{}, "phone = ?", phone)
}

func (r *DirectoryGormRepository) CreatePatient(
	ctx context.Context,
	p *models.Patient,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *DirectoryGormRepository) PatientByEmail(
	ctx context.Context,
	email string,
) (*models.Patient, error) {

	var p models.Patient
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&p).Error; err != nil {
		return nil, asDomainErr(err)
	}
	return &p, nil
}

func (r *DirectoryGormRepository) UpdatePatient(
	ctx context.Context,
	p *models.Patient,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

// asDomainErr maps gorm's missing-row error to the directory sentinel so the
// use cases can separate absence from store failures.
func asDomainErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return directory.ErrNotFound
	}
	return err
}

func (r *DirectoryGormRepository) exists(
	ctx context.Context,
	model any,
	query string,
	args ...any,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(model).
		Where(query, args...).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Compile-time check
var _ directory.Repository = (*DirectoryGormRepository)(nil)
