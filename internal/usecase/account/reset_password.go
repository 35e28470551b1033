package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhc-clinics/hms-api/internal/credentials"
	"github.com/jhc-clinics/hms-api/internal/domain/directory"
	"github.com/jhc-clinics/hms-api/internal/httperr"
	"github.com/jhc-clinics/hms-api/internal/mail"
)

type ResetPasswordInput struct {
	Email    string
	Token    string
	Password string
}

type ResetPassword struct {
	repo directory.Repository
	mail *mail.Dispatcher
}

func NewResetPassword(
	repo directory.Repository,
	mailer *mail.Dispatcher,
) *ResetPassword {
	return &ResetPassword{
		repo: repo,
		mail: mailer,
	}
}

func (uc *ResetPassword) Execute(
	ctx context.Context,
	in ResetPasswordInput,
) error {

	patient, err := uc.repo.PatientByEmail(ctx, in.Email)
	if errors.Is(err, directory.ErrNotFound) {
		return httperr.ErrBusiness(
			"patient_not_found",
			fmt.Sprintf("patient with email: %s does not exists in our records", in.Email),
		)
	}
	if err != nil {
		return err
	}

	if err := credentials.ConsumeTimedToken(
		patient.VerifyToken,
		patient.TokenExpiresAt,
		in.Token,
	); err != nil {
		return err
	}

	hash, err := credentials.HashSecret(in.Password)
	if err != nil {
		return err
	}

	// New hash stored and token cleared in one update.
	patient.PasswordHash = hash
	patient.VerifyToken = nil
	patient.TokenExpiresAt = nil

	if err := uc.repo.UpdatePatient(ctx, patient); err != nil {
		return err
	}

	uc.mail.Dispatch(mail.Event{
		Kind:      mail.KindPasswordResetSuccess,
		Email:     patient.Email,
		FirstName: patient.FirstName,
		LastName:  patient.LastName,
	})

	return nil
}
