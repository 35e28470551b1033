package account

import (
	"context"
	"fmt"
	"time"

	"github.com/jhc-clinics/hms-api/internal/audit"
	"github.com/jhc-clinics/hms-api/internal/credentials"
	"github.com/jhc-clinics/hms-api/internal/domain/directory"
	"github.com/jhc-clinics/hms-api/internal/httperr"
	"github.com/jhc-clinics/hms-api/internal/mail"
	"github.com/jhc-clinics/hms-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RegisterPatientInput struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	DOB        time.Time
	BloodGroup string
	Genotype   string
	Password   string
	ImgURL     string
}

// ======================================================
// USE CASE
// ======================================================

type RegisterPatient struct {
	repo  directory.Repository
	mail  *mail.Dispatcher
	audit *audit.Dispatcher
}

func NewRegisterPatient(
	repo directory.Repository,
	mailer *mail.Dispatcher,
	audit *audit.Dispatcher,
) *RegisterPatient {
	return &RegisterPatient{
		repo:  repo,
		mail:  mailer,
		audit: audit,
	}
}

func (uc *RegisterPatient) Execute(
	ctx context.Context,
	in RegisterPatientInput,
) (*models.Patient, error) {

	if exists, err := uc.repo.PatientEmailExists(ctx, in.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, httperr.ErrBusiness(
			"duplicate_email",
			fmt.Sprintf("patient with email: %s already exist", in.Email),
		)
	}

	if exists, err := uc.repo.PatientPhoneExists(ctx, in.Phone); err != nil {
		return nil, err
	} else if exists {
		return nil, httperr.ErrBusiness(
			"duplicate_phone",
			fmt.Sprintf("patient with phone: %s already exist", in.Phone),
		)
	}

	plainToken, tokenHash, expiresAt, err := credentials.IssueTimedToken(credentials.TokenTTL)
	if err != nil {
		return nil, err
	}

	passwordHash, err := credentials.HashSecret(in.Password)
	if err != nil {
		return nil, err
	}

	patient := &models.Patient{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Phone:          in.Phone,
		DOB:            in.DOB,
		BloodGroup:     in.BloodGroup,
		Genotype:       in.Genotype,
		ImgURL:         in.ImgURL,
		PasswordHash:   passwordHash,
		VerifyToken:    &tokenHash,
		TokenExpiresAt: &expiresAt,
	}

	if err := uc.repo.CreatePatient(ctx, patient); err != nil {
		return nil, err
	}

	uc.mail.Dispatch(mail.Event{
		Kind:      mail.KindPatientWelcome,
		Email:     patient.Email,
		FirstName: patient.FirstName,
		LastName:  patient.LastName,
		Secret:    plainToken,
	})

	uc.audit.Dispatch(audit.Event{
		Actor:    "patient",
		ActorID:  &patient.ID,
		Action:   "patient_created",
		Entity:   "patient",
		EntityID: &patient.ID,
	})

	return patient, nil
}
