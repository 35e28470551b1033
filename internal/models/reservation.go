package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Date (YYYY-MM-DD) and Time (HH:mm) identify the slot together with the
	// doctor; the composite index is the backstop for concurrent bookings.
	Date string `gorm:"size:10;not null;uniqueIndex:idx_doctor_slot" json:"date"`
	Time string `gorm:"size:8;not null;uniqueIndex:idx_doctor_slot" json:"time"`

	DoctorID uint   `gorm:"not null;uniqueIndex:idx_doctor_slot" json:"doctor"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE" json:"-"`

	PatientID uint    `gorm:"not null" json:"patient"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE" json:"-"`

	Fee int `gorm:"not null;check:fee >= 0" json:"fee"`

	ReservationStatus string `gorm:"size:20;default:'pending'" json:"reservation_status"`
	FeeStatus         string `gorm:"size:20;default:'unpaid'" json:"fee_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
