package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhc-clinics/hms-api/internal/credentials"
	"github.com/jhc-clinics/hms-api/internal/httperr"
	"github.com/jhc-clinics/hms-api/internal/mail"
	"github.com/jhc-clinics/hms-api/internal/models"
)

func patientWithToken(t *testing.T, plainToken string, expiresAt time.Time) *models.Patient {
	t.Helper()
	hash, err := credentials.HashSecret(plainToken)
	require.NoError(t, err)

	return &models.Patient{
		ID:             9,
		FirstName:      "Sam",
		LastName:       "Okoro",
		Email:          "sam@example.com",
		VerifyToken:    &hash,
		TokenExpiresAt: &expiresAt,
	}
}

func TestVerifyAccount_Success(t *testing.T) {
	patient := patientWithToken(t, "123456", time.Now().Add(time.Hour))

	var updated *models.Patient
	repo := &mockDirectoryRepository{
		PatientByEmailFunc: func(ctx context.Context, email string) (*models.Patient, error) {
			return patient, nil
		},
		UpdatePatientFunc: func(ctx context.Context, p *models.Patient) error {
			updated = p
			return nil
		},
	}

	uc := NewVerifyAccount(repo)
	err := uc.Execute(context.Background(), VerifyAccountInput{
		Email: "sam@example.com",
		Token: "123456",
	})
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.True(t, updated.IsVerified)
	assert.Nil(t, updated.VerifyToken)
	assert.Nil(t, updated.TokenExpiresAt)
}

func TestVerifyAccount_Failures(t *testing.T) {
	t.Run("patient missing", func(t *testing.T) {
		uc := NewVerifyAccount(&mockDirectoryRepository{})
		err := uc.Execute(context.Background(), VerifyAccountInput{
			Email: "ghost@example.com",
			Token: "123456",
		})
		assert.True(t, httperr.IsBusiness(err, "patient_not_found"))
	})

	t.Run("already verified", func(t *testing.T) {
		patient := patientWithToken(t, "123456", time.Now().Add(time.Hour))
		patient.IsVerified = true

		uc := NewVerifyAccount(&mockDirectoryRepository{
			PatientByEmailFunc: func(ctx context.Context, email string) (*models.Patient, error) {
				return patient, nil
			},
		})
		err := uc.Execute(context.Background(), VerifyAccountInput{
			Email: "sam@example.com",
			Token: "123456",
		})
		assert.True(t, httperr.IsBusiness(err, "already_verified"))
	})

	t.Run("expired token", func(t *testing.T) {
		patient := patientWithToken(t, "123456", time.Now().Add(-time.Minute))

		uc := NewVerifyAccount(&mockDirectoryRepository{
			PatientByEmailFunc: func(ctx context.Context, email string) (*models.Patient, error) {
				return patient, nil
			},
		})
		err := uc.Execute(context.Background(), VerifyAccountInput{
			Email: "sam@example.com",
			Token: "123456",
		})
		assert.True(t, httperr.IsBusiness(err, "token_expired"))
		assert.False(t, patient.IsVerified)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		storeErr := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
		uc := NewVerifyAccount(&mockDirectoryRepository{
			PatientByEmailFunc: func(ctx context.Context, email string) (*models.Patient, error) {
				return nil, storeErr
			},
		})
		err := uc.Execute(context.Background(), VerifyAccountInput{
			Email: "sam@example.com",
			Token: "123456",
		})
		assert.ErrorIs(t, err, storeErr)
		assert.False(t, httperr.IsBusiness(err, "patient_not_found"))
	})

	t.Run("wrong token", func(t *testing.T) {
		patient := patientWithToken(t, "123456", time.Now().Add(time.Hour))

		uc := NewVerifyAccount(&mockDirectoryRepository{
			PatientByEmailFunc: func(ctx context.Context, email string) (*models.Patient, error) {
				return patient, nil
			},
		})
		err := uc.Execute(context.Background(), VerifyAccountInput{
			Email: "sam@example.com",
			Token: "654321",
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_token"))
	})
}

func TestForgotPassword_IssuesToken(t *testing.T) {
	patient := &models.Patient{
		ID:        9,
		FirstName: "Sam",
		LastName:  "Okoro",
		Email:     "sam@example.com",
	}

	var updated *models.Patient
	repo := &mockDirectoryRepository{
		PatientByEmailFunc: func(ctx context.Context, email string) (*models.Patient, error) {
			return patient, nil
		},
		UpdatePatientFunc: func(ctx context.Context, p *models.Patient) error {
			updated = p
			return nil
		},
	}

	notifier := newRecordingNotifier()
	uc := NewForgotPassword(repo, mail.NewDispatcher(notifier))

	require.NoError(t, uc.Execute(context.Background(), "sam@example.com"))

	require.NotNil(t, updated)
	require.NotNil(t, updated.VerifyToken)
	require.NotNil(t, updated.TokenExpiresAt)

	sent := waitForMail(t, notifier)
	assert.Equal(t, mail.KindPasswordReset, sent.kind)
	assert.True(t, credentials.CheckSecret(*updated.VerifyToken, sent.secret))
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	uc := NewForgotPassword(&mockDirectoryRepository{}, mail.NewDispatcher(newRecordingNotifier()))
	err := uc.Execute(context.Background(), "ghost@example.com")
	assert.True(t, httperr.IsBusiness(err, "patient_not_found"))
}

func TestResetPassword_RoundTrip(t *testing.T) {
	oldHash, err := credentials.HashSecret("old-password")
	require.NoError(t, err)

	patient := patientWithToken(t, "123456", time.Now().Add(time.Hour))
	patient.PasswordHash = oldHash

	var updated *models.Patient
	repo := &mockDirectoryRepository{
		PatientByEmailFunc: func(ctx context.Context, email string) (*models.Patient, error) {
			return patient, nil
		},
		UpdatePatientFunc: func(ctx context.Context, p *models.Patient) error {
			updated = p
			return nil
		},
	}

	notifier := newRecordingNotifier()
	uc := NewResetPassword(repo, mail.NewDispatcher(notifier))

	err = uc.Execute(context.Background(), ResetPasswordInput{
		Email:    "sam@example.com",
		Token:    "123456",
		Password: "new-password",
	})
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.Nil(t, updated.VerifyToken)
	assert.Nil(t, updated.TokenExpiresAt)
	assert.True(t, credentials.CheckSecret(updated.PasswordHash, "new-password"))
	assert.False(t, credentials.CheckSecret(updated.PasswordHash, "old-password"))

	sent := waitForMail(t, notifier)
	assert.Equal(t, mail.KindPasswordResetSuccess, sent.kind)
}

func TestResetPassword_InvalidToken(t *testing.T) {
	patient := patientWithToken(t, "123456", time.Now().Add(time.Hour))

	repo := &mockDirectoryRepository{
		PatientByEmailFunc: func(ctx context.Context, email string) (*models.Patient, error) {
			return patient, nil
		},
	}

	uc := NewResetPassword(repo, mail.NewDispatcher(newRecordingNotifier()))
	err := uc.Execute(context.Background(), ResetPasswordInput{
		Email:    "sam@example.com",
		Token:    "999999",
		Password: "new-password",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_token"))
	assert.NotNil(t, patient.VerifyToken, "a failed reset must not consume the token")
}
