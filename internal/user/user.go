// Package user implements registration and lookup of accounts stored in the "user" table.
package user

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("a user with this email already exists")
	ErrInvalidUser       = errors.New("a valid email and a password of 6 to 72 characters are required")
	ErrMalformedBody     = errors.New("invalid request body")
	ErrUnavailable       = errors.New("database unavailable")
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is a row of the "user" table.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserCreateDto is the registration request body.
type UserCreateDto struct {
	Email    string `json:"email" validate:"required,email,max=155"`
	Password string `json:"password" validate:"required,min=6"`
	Role     Role   `json:"role" validate:"omitempty,oneof=user admin"`
}

// UserDto is the public view of a user. It never carries the password hash.
type UserDto struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toDto(u *User) *UserDto {
	return &UserDto{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
