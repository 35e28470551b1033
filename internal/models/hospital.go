package models

import "time"

type Hospital struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Owner   string `gorm:"size:100;not null" json:"owner"`
	Address string `gorm:"size:255;not null" json:"address"`

	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone    string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Username string `gorm:"size:100;uniqueIndex;not null" json:"username"`

	PasswordHash string `gorm:"size:255;not null" json:"-"`
	IsAdmin      bool   `gorm:"default:true" json:"is_admin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
