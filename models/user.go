package models

import "time"

type User struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	FullName      string    `json:"full_name" gorm:"not null"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash  string    `json:"-" gorm:"not null"`
	Phone         string    `json:"phone"`
	AvatarURL     string    `json:"avatar_url"`
	EmailVerified bool      `json:"email_verified" gorm:"default:false"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PublicProfile is the subset of user fields the admin dashboard shows
// next to each reservation
type PublicProfile struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Phone:    u.Phone,
	}
}
