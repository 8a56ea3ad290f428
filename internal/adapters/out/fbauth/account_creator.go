// internal/adapters/out/fbauth/account_creator.go
package fbauth

import (
	"context"
	"errors"
	"strings"

	adminauth "firebase.google.com/go/v4/auth"

	usecase "github.com/Fizxxc/digital-store/internal/application/usecase"
)

// AccountCreatorFB implements usecase.AccountCreator on Firebase Auth.
// Sign-in stays on the client SDK; the backend only provisions accounts
// during registration so the profile document can be written atomically
// after the identity exists.
type AccountCreatorFB struct {
	Client *adminauth.Client
}

func NewAccountCreatorFB(client *adminauth.Client) *AccountCreatorFB {
	return &AccountCreatorFB{Client: client}
}

func (a *AccountCreatorFB) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	if a == nil || a.Client == nil {
		return "", errors.New("fbauth: auth client is nil")
	}

	params := (&adminauth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	rec, err := a.Client.CreateUser(ctx, params)
	if err != nil {
		return "", mapProviderError(err)
	}
	return rec.UID, nil
}

// mapProviderError translates the provider's structured error codes into the
// usecase sentinels the handlers localize. Unknown errors pass through.
func mapProviderError(err error) error {
	switch {
	case adminauth.IsEmailAlreadyExists(err):
		return usecase.ErrAuthEmailAlreadyInUse
	case adminauth.IsUserNotFound(err):
		return usecase.ErrAuthUserNotFound
	}

	// The SDK validates email/password shape locally with plain errors.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "email"):
		return usecase.ErrAuthInvalidEmail
	case strings.Contains(msg, "password"):
		return usecase.ErrAuthWeakPassword
	}
	return err
}
