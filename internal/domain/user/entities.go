package user

import (
	"errors"
	"time"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) Valid() bool { return r == RoleUser || r == RoleAdmin }

var (
	ErrNotFound       = errors.New("user not found")
	ErrEmailExists    = errors.New("email already exists")
	ErrInactive       = errors.New("user is inactive")
	ErrBadCredentials = errors.New("invalid email or password")
)

// User is a principal record. Accounts are deactivated via Active,
// never hard-deleted.
type User struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserID       string    `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	Email        string    `gorm:"size:255;uniqueIndex:ux_users_email" json:"email"`
	PasswordHash string    `gorm:"size:60" json:"-"`
	Role         Role      `gorm:"size:8" json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }
