// Package user contains the admin/customer account entity.
package user

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Role separates store administrators from regular customers.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Validate checks the role against the fixed enum.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleCustomer:
		return nil
	default:
		return errs.NewValueIsInvalidError("role")
	}
}

// User is an account. Email is unique store-wide; the password hash is a
// bcrypt digest and never leaves the persistence boundary in responses.
type User struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	role         Role
	active       bool
	createdAt    time.Time
}

// NewUser creates an active account with the given role.
func NewUser(id kernel.UUID, name, email, passwordHash string, role Role) (*User, error) {
	u := &User{active: true, createdAt: time.Now().UTC()}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		role.Validate(),
	); err != nil {
		return nil, err
	}

	u.role = role
	return u, nil
}

// RestoreUser reconstructs an account from persistence.
func RestoreUser(id kernel.UUID, name, email, passwordHash string, role Role, active bool, createdAt time.Time) (*User, error) {
	u, err := NewUser(id, name, email, passwordHash, role)
	if err != nil {
		return nil, err
	}
	u.active = active
	u.createdAt = createdAt
	return u, nil
}

func (u *User) ID() kernel.UUID      { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.active }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// Rename updates the display name.
func (u *User) Rename(name string) error {
	return u.setName(name)
}

// ChangePasswordHash swaps in a new bcrypt digest.
func (u *User) ChangePasswordHash(hash string) error {
	return u.setPasswordHash(hash)
}

// SetActive toggles whether the account can authenticate.
func (u *User) SetActive(active bool) {
	u.active = active
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = hash
	return nil
}
