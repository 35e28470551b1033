package account

import (
	"context"
	"fmt"

	"github.com/jhc-clinics/hms-api/internal/audit"
	"github.com/jhc-clinics/hms-api/internal/credentials"
	"github.com/jhc-clinics/hms-api/internal/domain/directory"
	"github.com/jhc-clinics/hms-api/internal/httperr"
	"github.com/jhc-clinics/hms-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RegisterHospitalInput struct {
	Name     string
	Owner    string
	Address  string
	Email    string
	Phone    string
	Username string
	Password string
}

// ======================================================
// USE CASE
// ======================================================

type RegisterHospital struct {
	repo  directory.Repository
	audit *audit.Dispatcher
}

func NewRegisterHospital(
	repo directory.Repository,
	audit *audit.Dispatcher,
) *RegisterHospital {
	return &RegisterHospital{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RegisterHospital) Execute(
	ctx context.Context,
	in RegisterHospitalInput,
) (*models.Hospital, error) {

	if exists, err := uc.repo.HospitalEmailExists(ctx, in.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, httperr.ErrBusiness(
			"duplicate_email",
			fmt.Sprintf("email: %s already exists", in.Email),
		)
	}

	if exists, err := uc.repo.HospitalPhoneExists(ctx, in.Phone); err != nil {
		return nil, err
	} else if exists {
		return nil, httperr.ErrBusiness(
			"duplicate_phone",
			fmt.Sprintf("phone: %s already exists", in.Phone),
		)
	}

	if exists, err := uc.repo.HospitalUsernameExists(ctx, in.Username); err != nil {
		return nil, err
	} else if exists {
		return nil, httperr.ErrBusiness(
			"duplicate_username",
			fmt.Sprintf("username: %s already exists", in.Username),
		)
	}

	hash, err := credentials.HashSecret(in.Password)
	if err != nil {
		return nil, err
	}

	hospital := &models.Hospital{
		Name:         in.Name,
		Owner:        in.Owner,
		Address:      in.Address,
		Email:        in.Email,
		Phone:        in.Phone,
		Username:     in.Username,
		PasswordHash: hash,
		IsAdmin:      true,
	}

	if err := uc.repo.CreateHospital(ctx, hospital); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    "hospital",
		ActorID:  &hospital.ID,
		Action:   "hospital_created",
		Entity:   "hospital",
		EntityID: &hospital.ID,
	})

	return hospital, nil
}
