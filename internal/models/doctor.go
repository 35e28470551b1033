package models

import "time"

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string    `gorm:"size:100;not null" json:"first_name"`
	LastName  string    `gorm:"size:100;not null" json:"last_name"`
	DOB       time.Time `gorm:"not null" json:"DOB"`

	IsConsultant bool   `json:"is_consultant"`
	Unit         string `gorm:"size:50;not null" json:"unit"`

	Email  string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone  string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	ImgURL string `gorm:"size:255" json:"img_url"`

	PasswordHash string `gorm:"size:255;not null" json:"-"`

	IsVerified bool `gorm:"default:false" json:"is_verified"`
	IsActive   bool `gorm:"default:false" json:"is_active"`

	// One-way flag: set the first time the system-issued password is rotated.
	HasChangedSystemGeneratedPassword bool `gorm:"default:false" json:"has_changed_system_generated_password"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
