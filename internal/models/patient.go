package models

import "time"

type Patient struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string    `gorm:"size:100;not null" json:"first_name"`
	LastName  string    `gorm:"size:100;not null" json:"last_name"`
	DOB       time.Time `gorm:"not null" json:"DOB"`

	BloodGroup string `gorm:"size:3;not null" json:"blood_group"`
	Genotype   string `gorm:"size:2;not null" json:"genotype"`

	Email  string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone  string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	ImgURL string `gorm:"size:255" json:"img_url"`

	PasswordHash string `gorm:"size:255;not null" json:"-"`
	IsVerified   bool   `gorm:"default:false" json:"is_verified"`

	// Both set together on issue and cleared together on consumption.
	VerifyToken    *string    `gorm:"size:255" json:"-"`
	TokenExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
