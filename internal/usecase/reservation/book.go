package reservation

import (
	"context"
	"errors"
	"time"

	"github.com/jhc-clinics/hms-api/internal/audit"
	"github.com/jhc-clinics/hms-api/internal/config"
	domain "github.com/jhc-clinics/hms-api/internal/domain/reservation"
	"github.com/jhc-clinics/hms-api/internal/httperr"
	"github.com/jhc-clinics/hms-api/internal/models"
)

// MinLeadTime is the minimum gap between booking and appointment instant.
const MinLeadTime = 30 * time.Minute

// ======================================================
// INPUT
// ======================================================

type BookReservationInput struct {
	DoctorID  uint
	PatientID uint

	Date string // YYYY-MM-DD
	Time string // HH:mm or HH:mm:ss
}

// ======================================================
// USE CASE
// ======================================================

type BookReservation struct {
	repo           domain.Repository
	baseFee        int
	consultantRate int
	audit          *audit.Dispatcher
}

func NewBookReservation(
	repo domain.Repository,
	cfg *config.Config,
	audit *audit.Dispatcher,
) *BookReservation {
	return &BookReservation{
		repo:           repo,
		baseFee:        cfg.BaseFee,
		consultantRate: cfg.ConsultantRate,
		audit:          audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookReservation) Execute(
	ctx context.Context,
	in BookReservationInput,
) (*models.Reservation, error) {

	// The reservation instant is the date portion, a literal "T" and the
	// time portion; fee and lead-time logic depend on this exact rule.
	start, err := parseReservationInstant(in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness(
			"invalid_date_or_time",
			"date and time must form a valid ISO instant",
		)
	}

	if start.Before(time.Now().Add(MinLeadTime)) {
		return nil, httperr.ErrBusiness(
			"lead_time_violation",
			"Reservation time must be at least 30 minutes ahead of the current time",
		)
	}

	doctor, err := uc.repo.GetDoctorByID(ctx, in.DoctorID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrBusiness("doctor_not_found", "Doctor not found")
	}
	if err != nil {
		return nil, err
	}

	if !doctor.IsActive {
		return nil, httperr.ErrBusiness("doctor_inactive", "Doctor not active")
	}

	taken, err := uc.repo.SlotTaken(ctx, in.DoctorID, in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness(
			"slot_conflict",
			"Doctor already has an appointment at this time",
		)
	}

	fee := domain.ComputeFee(uc.baseFee, uc.consultantRate, doctor.IsConsultant)

	res := &models.Reservation{
		Date:              in.Date,
		Time:              in.Time,
		DoctorID:          in.DoctorID,
		PatientID:         in.PatientID,
		Fee:               fee,
		ReservationStatus: string(domain.InitialStatus()),
		FeeStatus:         string(domain.InitialFeeStatus()),
	}

	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    "patient",
		ActorID:  &in.PatientID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}

func parseReservationInstant(date, timeOfDay string) (time.Time, error) {
	raw := date + "T" + timeOfDay

	t, err := time.ParseInLocation("2006-01-02T15:04:05", raw, time.Local)
	if err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04", raw, time.Local)
}
