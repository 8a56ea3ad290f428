// internal/application/usecase/auth_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	userdom "github.com/Fizxxc/digital-store/internal/domain/user"
)

// Registration validation errors (checked before the provider is called).
var (
	ErrAuthInvalidArgument  = errors.New("auth_usecase: invalid argument")
	ErrAuthPasswordMismatch = errors.New("auth_usecase: passwords do not match")
	ErrAuthPasswordTooShort = errors.New("auth_usecase: password too short")
)

// Provider errors mapped by the auth adapter from the hosted provider's
// structured error codes. The handler layer localizes them.
var (
	ErrAuthEmailAlreadyInUse = errors.New("auth_usecase: email already in use")
	ErrAuthInvalidEmail      = errors.New("auth_usecase: invalid email")
	ErrAuthWeakPassword      = errors.New("auth_usecase: weak password")
	ErrAuthUserNotFound      = errors.New("auth_usecase: user not found")
	ErrAuthUserDisabled      = errors.New("auth_usecase: user disabled")
	ErrAuthWrongPassword     = errors.New("auth_usecase: wrong password")
)

const minPasswordLength = 6

// AccountCreator is the outbound port to the hosted auth provider.
type AccountCreator interface {
	// CreateAccount provisions an email+password identity and returns its uid.
	CreateAccount(ctx context.Context, email, password, displayName string) (string, error)
}

// Capabilities is the authorization predicate's result: evaluated once per
// request and carried on the context instead of mutating shared flags.
type Capabilities struct {
	ManageCatalog bool
	ManageOrders  bool
	ManageUsers   bool
	ViewDashboard bool
}

// Admin reports whether the full console surface is available.
func (c Capabilities) Admin() bool {
	return c.ManageCatalog && c.ManageOrders && c.ManageUsers && c.ViewDashboard
}

// CapabilitiesFor derives the capability set from a role. The admin role
// grants everything; anything else grants nothing.
func CapabilitiesFor(role userdom.Role) Capabilities {
	if role != userdom.RoleAdmin {
		return Capabilities{}
	}
	return Capabilities{
		ManageCatalog: true,
		ManageOrders:  true,
		ManageUsers:   true,
		ViewDashboard: true,
	}
}

// Session describes the signed-in identity as seen by the web client.
type Session struct {
	UID   string       `json:"uid"`
	Name  string       `json:"name"`
	Email string       `json:"email"`
	Role  userdom.Role `json:"role"`
	Admin bool         `json:"admin"`
}

// RegisterInput carries the raw registration form fields.
type RegisterInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AuthUsecase resolves sessions and runs the registration flow.
type AuthUsecase struct {
	accounts AccountCreator
	users    userdom.Repository
	clock    Clock
}

func NewAuthUsecase(accounts AccountCreator, users userdom.Repository) *AuthUsecase {
	return &AuthUsecase{accounts: accounts, users: users, clock: systemClock{}}
}

// NewAuthUsecaseWithClock is useful for tests.
func NewAuthUsecaseWithClock(accounts AccountCreator, users userdom.Repository, clock Clock) *AuthUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &AuthUsecase{accounts: accounts, users: users, clock: clock}
}

// SessionFor resolves the role for a verified identity.
// A failed or missing profile lookup degrades to a plain user session:
// "cannot prove admin" means "not admin", never an error.
func (uc *AuthUsecase) SessionFor(ctx context.Context, id Identity) Session {
	s := Session{UID: id.UID, Email: id.Email, Role: userdom.RoleUser}

	u, err := uc.users.GetByID(ctx, id.UID)
	if err != nil {
		if !errors.Is(err, userdom.ErrNotFound) {
			log.Printf("[AuthUsecase] role lookup failed uid=%s: %v (treating as non-admin)", id.UID, err)
		}
		return s
	}

	s.Name = u.Name
	s.Role = u.Role
	s.Admin = u.IsAdmin()
	if s.Email == "" {
		s.Email = u.Email
	}
	return s
}

// Register provisions the auth identity and writes the profile document
// keyed by the new uid with role "user".
func (uc *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*userdom.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return nil, ErrAuthInvalidArgument
	}
	if in.Password != in.ConfirmPassword {
		return nil, ErrAuthPasswordMismatch
	}
	if len(in.Password) < minPasswordLength {
		return nil, ErrAuthPasswordTooShort
	}
	if uc.accounts == nil {
		return nil, errors.New("auth_usecase: account provider not configured")
	}

	uid, err := uc.accounts.CreateAccount(ctx, email, in.Password, name)
	if err != nil {
		return nil, err
	}

	u, err := userdom.New(uid, name, email, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.users.Create(ctx, u); err != nil {
		// The auth identity exists but the profile write failed; the profile
		// can be backfilled on next sign-in, so surface the error as-is.
		return nil, err
	}
	return u, nil
}
