package account

import (
	"context"
	"fmt"
	"time"

	"github.com/jhc-clinics/hms-api/internal/audit"
	"github.com/jhc-clinics/hms-api/internal/config"
	"github.com/jhc-clinics/hms-api/internal/credentials"
	"github.com/jhc-clinics/hms-api/internal/domain/directory"
	"github.com/jhc-clinics/hms-api/internal/httperr"
	"github.com/jhc-clinics/hms-api/internal/mail"
	"github.com/jhc-clinics/hms-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RegisterDoctorInput struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	DOB          time.Time
	IsConsultant bool
	Unit         string
	ImgURL       string

	AdminID uint
}

// ======================================================
// USE CASE
// ======================================================

type RegisterDoctor struct {
	repo           directory.Repository
	passwordLength int
	mail           *mail.Dispatcher
	audit          *audit.Dispatcher
}

func NewRegisterDoctor(
	repo directory.Repository,
	cfg *config.Config,
	mailer *mail.Dispatcher,
	audit *audit.Dispatcher,
) *RegisterDoctor {
	return &RegisterDoctor{
		repo:           repo,
		passwordLength: cfg.SysPasswordLength,
		mail:           mailer,
		audit:          audit,
	}
}

func (uc *RegisterDoctor) Execute(
	ctx context.Context,
	in RegisterDoctorInput,
) (*models.Doctor, error) {

	if exists, err := uc.repo.DoctorEmailExists(ctx, in.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, httperr.ErrBusiness(
			"duplicate_email",
			fmt.Sprintf("doctor with email: %s already exist", in.Email),
		)
	}

	if exists, err := uc.repo.DoctorPhoneExists(ctx, in.Phone); err != nil {
		return nil, err
	} else if exists {
		return nil, httperr.ErrBusiness(
			"duplicate_phone",
			fmt.Sprintf("doctor with phone: %s already exist", in.Phone),
		)
	}

	// System-issued one-time credential. The plaintext is only ever mailed;
	// the doctor stays inactive until they rotate it.
	plain, err := credentials.GenerateSystemPassword(uc.passwordLength)
	if err != nil {
		return nil, err
	}

	hash, err := credentials.HashSecret(plain)
	if err != nil {
		return nil, err
	}

	doctor := &models.Doctor{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		DOB:          in.DOB,
		IsConsultant: in.IsConsultant,
		Unit:         in.Unit,
		ImgURL:       in.ImgURL,
		PasswordHash: hash,
	}

	if err := uc.repo.CreateDoctor(ctx, doctor); err != nil {
		return nil, err
	}

	uc.mail.Dispatch(mail.Event{
		Kind:      mail.KindDoctorWelcome,
		Email:     doctor.Email,
		FirstName: doctor.FirstName,
		LastName:  doctor.LastName,
		Secret:    plain,
	})

	uc.audit.Dispatch(audit.Event{
		Actor:    "hospital",
		ActorID:  &in.AdminID,
		Action:   "doctor_created",
		Entity:   "doctor",
		EntityID: &doctor.ID,
	})

	return doctor, nil
}
