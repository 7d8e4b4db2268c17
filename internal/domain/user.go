package domain

import "time"

// User описывает пользователя, привязанного к бизнесу
type User struct {
	ID           string // uuid
	BusinessID   string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

func NewUser(businessID string, name string, email string, passwordHash string) *User {
	return &User{
		BusinessID:   businessID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
}
