// internal/domain/user/entity.go
package user

import (
	"errors"
	"strings"
	"time"
)

// Errors (single source)
var (
	ErrInvalidID    = errors.New("user: invalid id")
	ErrInvalidName  = errors.New("user: invalid name")
	ErrInvalidEmail = errors.New("user: invalid email")
	ErrInvalidRole  = errors.New("user: invalid role")
	ErrNotFound     = errors.New("user: not found")
)

// Role gates access to the admin console. Every user holds exactly one role.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// ParseRole normalizes a raw role string.
func ParseRole(s string) (Role, error) {
	r := Role(strings.TrimSpace(strings.ToLower(s)))
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

// User represents "a user document".
//   - docId = Firebase Auth uid (the auth identity IS the document key)
//   - created as a side effect of registration with role "user"
type User struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Role      Role      `json:"role" firestore:"role"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// New builds the profile document written at registration time.
// The role always starts as "user"; promotion happens in the console.
func New(uid, name, email string, now time.Time) (*User, error) {
	u := &User{
		ID:        strings.TrimSpace(uid),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Role:      RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// IsAdmin reports whether the user may enter the console.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Apply overwrites the console-editable fields and bumps UpdatedAt.
// Email is owned by the auth provider and never edited here.
func (u *User) Apply(name string, role Role, now time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	if !role.IsValid() {
		return ErrInvalidRole
	}
	u.Name = name
	u.Role = role
	u.UpdatedAt = now
	return nil
}

func (u *User) Validate() error {
	if u.ID == "" {
		return ErrInvalidID
	}
	if u.Name == "" {
		return ErrInvalidName
	}
	if u.Email == "" {
		return ErrInvalidEmail
	}
	if !u.Role.IsValid() {
		return ErrInvalidRole
	}
	return nil
}
