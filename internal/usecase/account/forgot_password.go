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

type ForgotPassword struct {
	repo directory.Repository
	mail *mail.Dispatcher
}

func NewForgotPassword(
	repo directory.Repository,
	mailer *mail.Dispatcher,
) *ForgotPassword {
	return &ForgotPassword{
		repo: repo,
		mail: mailer,
	}
}

func (uc *ForgotPassword) Execute(ctx context.Context, email string) error {

	patient, err := uc.repo.PatientByEmail(ctx, email)
	if errors.Is(err, directory.ErrNotFound) {
		return httperr.ErrBusiness(
			"patient_not_found",
			fmt.Sprintf("email: %s does not exist on our records", email),
		)
	}
	if err != nil {
		return err
	}

	plainToken, tokenHash, expiresAt, err := credentials.IssueTimedToken(credentials.TokenTTL)
	if err != nil {
		return err
	}

	patient.VerifyToken = &tokenHash
	patient.TokenExpiresAt = &expiresAt

	if err := uc.repo.UpdatePatient(ctx, patient); err != nil {
		return err
	}

	uc.mail.Dispatch(mail.Event{
		Kind:      mail.KindPasswordReset,
		Email:     patient.Email,
		FirstName: patient.FirstName,
		LastName:  patient.LastName,
		Secret:    plainToken,
	})

	return nil
}
