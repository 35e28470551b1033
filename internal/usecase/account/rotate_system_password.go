package account

import (
	"context"
	"errors"

	"github.com/jhc-clinics/hms-api/internal/audit"
	"github.com/jhc-clinics/hms-api/internal/credentials"
	"github.com/jhc-clinics/hms-api/internal/domain/directory"
	"github.com/jhc-clinics/hms-api/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type RotateSystemPasswordInput struct {
	DoctorID    uint
	OldPassword string
	NewPassword string
}

// ======================================================
// USE CASE
// ======================================================

type RotateSystemPassword struct {
	repo  directory.Repository
	audit *audit.Dispatcher
}

func NewRotateSystemPassword(
	repo directory.Repository,
	audit *audit.Dispatcher,
) *RotateSystemPassword {
	return &RotateSystemPassword{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RotateSystemPassword) Execute(
	ctx context.Context,
	in RotateSystemPasswordInput,
) error {

	doctor, err := uc.repo.DoctorByID(ctx, in.DoctorID)
	if errors.Is(err, directory.ErrNotFound) {
		return httperr.ErrBusiness("doctor_not_found", "doctor not found")
	}
	if err != nil {
		return err
	}

	// One-way transition: once rotated, the system credential is gone.
	if doctor.HasChangedSystemGeneratedPassword {
		return httperr.ErrBusiness(
			"already_rotated",
			"System generated password has been changed already",
		)
	}

	if !credentials.CheckSecret(doctor.PasswordHash, in.OldPassword) {
		return httperr.ErrBusiness(
			"invalid_old_password",
			"old password is invalid...",
		)
	}

	hash, err := credentials.HashSecret(in.NewPassword)
	if err != nil {
		return err
	}

	doctor.PasswordHash = hash
	doctor.IsVerified = true
	doctor.IsActive = true
	doctor.HasChangedSystemGeneratedPassword = true

	if err := uc.repo.UpdateDoctor(ctx, doctor); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    "doctor",
		ActorID:  &doctor.ID,
		Action:   "system_password_rotated",
		Entity:   "doctor",
		EntityID: &doctor.ID,
	})

	return nil
}
