package account

import (
	"context"
	"errors"

	"github.com/jhc-clinics/hms-api/internal/credentials"
	"github.com/jhc-clinics/hms-api/internal/domain/directory"
	"github.com/jhc-clinics/hms-api/internal/httperr"
	"github.com/jhc-clinics/hms-api/internal/models"
	"github.com/jhc-clinics/hms-api/internal/token"
)

func errInvalidCredentials() error {
	return httperr.ErrBusiness("invalid_credentials", "Invalid credentials...")
}

// ======================================================
// HOSPITAL LOGIN
// ======================================================

type LoginHospital struct {
	repo   directory.Repository
	tokens *token.Issuer
}

func NewLoginHospital(repo directory.Repository, tokens *token.Issuer) *LoginHospital {
	return &LoginHospital{repo: repo, tokens: tokens}
}

func (uc *LoginHospital) Execute(
	ctx context.Context,
	email, password string,
) (*models.Hospital, string, error) {

	hospital, err := uc.repo.HospitalByEmail(ctx, email)
	if errors.Is(err, directory.ErrNotFound) {
		return nil, "", errInvalidCredentials()
	}
	if err != nil {
		return nil, "", err
	}

	if !credentials.CheckSecret(hospital.PasswordHash, password) {
		return nil, "", errInvalidCredentials()
	}

	signed, err := uc.tokens.Issue(hospital.ID)
	if err != nil {
		return nil, "", err
	}

	return hospital, signed, nil
}

// ======================================================
// DOCTOR LOGIN
// ======================================================

type LoginDoctor struct {
	repo   directory.Repository
	tokens *token.Issuer
}

func NewLoginDoctor(repo directory.Repository, tokens *token.Issuer) *LoginDoctor {
	return &LoginDoctor{repo: repo, tokens: tokens}
}

func (uc *LoginDoctor) Execute(
	ctx context.Context,
	email, password string,
) (*models.Doctor, string, error) {

	doctor, err := uc.repo.DoctorByEmail(ctx, email)
	if errors.Is(err, directory.ErrNotFound) {
		return nil, "", errInvalidCredentials()
	}
	if err != nil {
		return nil, "", err
	}

	// Normal login stays closed until the system credential is rotated,
	// even when the supplied password is correct.
	if !doctor.HasChangedSystemGeneratedPassword {
		return nil, "", httperr.ErrBusiness(
			"password_not_rotated",
			"please change your system generated password...",
		)
	}

	if !credentials.CheckSecret(doctor.PasswordHash, password) {
		return nil, "", errInvalidCredentials()
	}

	signed, err := uc.tokens.Issue(doctor.ID)
	if err != nil {
		return nil, "", err
	}

	return doctor, signed, nil
}

// ======================================================
// PATIENT LOGIN
// ======================================================

type LoginPatient struct {
	repo   directory.Repository
	tokens *token.Issuer
}

func NewLoginPatient(repo directory.Repository, tokens *token.Issuer) *LoginPatient {
	return &LoginPatient{repo: repo, tokens: tokens}
}

func (uc *LoginPatient) Execute(
	ctx context.Context,
	email, password string,
) (*models.Patient, string, error) {

	patient, err := uc.repo.PatientByEmail(ctx, email)
	if errors.Is(err, directory.ErrNotFound) {
		return nil, "", errInvalidCredentials()
	}
	if err != nil {
		return nil, "", err
	}

	if !credentials.CheckSecret(patient.PasswordHash, password) {
		return nil, "", errInvalidCredentials()
	}

	signed, err := uc.tokens.Issue(patient.ID)
	if err != nil {
		return nil, "", err
	}

	return patient, signed, nil
}
