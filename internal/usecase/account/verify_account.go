package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhc-clinics/hms-api/internal/credentials"
	"github.com/jhc-clinics/hms-api/internal/domain/directory"
	"github.com/jhc-clinics/hms-api/internal/httperr"
)

type VerifyAccountInput struct {
	Email string
	Token string
}

type VerifyAccount struct {
	repo directory.Repository
}

func NewVerifyAccount(repo directory.Repository) *VerifyAccount {
	return &VerifyAccount{repo: repo}
}

func (uc *VerifyAccount) Execute(
	ctx context.Context,
	in VerifyAccountInput,
) error {

	patient, err := uc.repo.PatientByEmail(ctx, in.Email)
	if errors.Is(err, directory.ErrNotFound) {
		return httperr.ErrBusiness(
			"patient_not_found",
			fmt.Sprintf("patient with email:%s not found", in.Email),
		)
	}
	if err != nil {
		return err
	}

	if patient.IsVerified {
		return httperr.ErrBusiness(
			"already_verified",
			fmt.Sprintf("patient with email:%s already verified", in.Email),
		)
	}

	if err := credentials.ConsumeTimedToken(
		patient.VerifyToken,
		patient.TokenExpiresAt,
		in.Token,
	); err != nil {
		return err
	}

	// Token hash and expiry go together: both cleared in the same update.
	patient.IsVerified = true
	patient.VerifyToken = nil
	patient.TokenExpiresAt = nil

	return uc.repo.UpdatePatient(ctx, patient)
}
