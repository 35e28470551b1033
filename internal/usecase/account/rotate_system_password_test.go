package account

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhc-clinics/hms-api/internal/credentials"
	"github.com/jhc-clinics/hms-api/internal/httperr"
	"github.com/jhc-clinics/hms-api/internal/models"
)

func systemIssuedDoctor(t *testing.T, plainPassword string) *models.Doctor {
	t.Helper()
	hash, err := credentials.HashSecret(plainPassword)
	require.NoError(t, err)

	return &models.Doctor{
		FirstName:    "Grace",
		LastName:     "Bello",
		Email:        "grace@jhc.org",
		PasswordHash: hash,
	}
}

func TestRotateSystemPassword_Success(t *testing.T) {
	doctor := systemIssuedDoctor(t, "sys-pass-01")
	doctor.ID = 3

	var updated *models.Doctor
	repo := &mockDirectoryRepository{
		DoctorByIDFunc: func(ctx context.Context, id uint) (*models.Doctor, error) {
			return doctor, nil
		},
		UpdateDoctorFunc: func(ctx context.Context, d *models.Doctor) error {
			updated = d
			return nil
		},
	}

	uc := NewRotateSystemPassword(repo, newTestAudit())
	err := uc.Execute(context.Background(), RotateSystemPasswordInput{
		DoctorID:    3,
		OldPassword: "sys-pass-01",
		NewPassword: "my-own-password",
	})
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.True(t, updated.IsVerified)
	assert.True(t, updated.IsActive)
	assert.True(t, updated.HasChangedSystemGeneratedPassword)
	assert.True(t, credentials.CheckSecret(updated.PasswordHash, "my-own-password"))
	assert.False(t, credentials.CheckSecret(updated.PasswordHash, "sys-pass-01"))
}

func TestRotateSystemPassword_SecondAttemptFails(t *testing.T) {
	doctor := systemIssuedDoctor(t, "sys-pass-01")
	doctor.ID = 3

	repo := &mockDirectoryRepository{
		DoctorByIDFunc: func(ctx context.Context, id uint) (*models.Doctor, error) {
			return doctor, nil
		},
	}

	uc := NewRotateSystemPassword(repo, newTestAudit())

	in := RotateSystemPasswordInput{
		DoctorID:    3,
		OldPassword: "sys-pass-01",
		NewPassword: "my-own-password",
	}
	require.NoError(t, uc.Execute(context.Background(), in))

	// The repo hands back the already-rotated record the second time.
	in.OldPassword = "my-own-password"
	err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "already_rotated"))
}

func TestRotateSystemPassword_WrongOldPassword(t *testing.T) {
	doctor := systemIssuedDoctor(t, "sys-pass-01")

	repo := &mockDirectoryRepository{
		DoctorByIDFunc: func(ctx context.Context, id uint) (*models.Doctor, error) {
			return doctor, nil
		},
	}

	uc := NewRotateSystemPassword(repo, newTestAudit())
	err := uc.Execute(context.Background(), RotateSystemPasswordInput{
		DoctorID:    3,
		OldPassword: "guess",
		NewPassword: "my-own-password",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_old_password"))
	assert.False(t, doctor.HasChangedSystemGeneratedPassword)
}

func TestRotateSystemPassword_DoctorMissing(t *testing.T) {
	uc := NewRotateSystemPassword(&mockDirectoryRepository{}, newTestAudit())
	err := uc.Execute(context.Background(), RotateSystemPasswordInput{
		DoctorID:    99,
		OldPassword: "sys-pass-01",
		NewPassword: "my-own-password",
	})
	assert.True(t, httperr.IsBusiness(err, "doctor_not_found"))
}

func TestRotateSystemPassword_StoreFailureSurfaces(t *testing.T) {
	storeErr := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	repo := &mockDirectoryRepository{
		DoctorByIDFunc: func(ctx context.Context, id uint) (*models.Doctor, error) {
			return nil, storeErr
		},
	}

	uc := NewRotateSystemPassword(repo, newTestAudit())
	err := uc.Execute(context.Background(), RotateSystemPasswordInput{
		DoctorID:    3,
		OldPassword: "sys-pass-01",
		NewPassword: "my-own-password",
	})
	assert.ErrorIs(t, err, storeErr)
	assert.False(t, httperr.IsBusiness(err, "doctor_not_found"))
}
