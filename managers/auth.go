package managers

import (
	"context"
	"log/slog"

	"shopcore/errs"
	"shopcore/models"
	"shopcore/store"
	"shopcore/utils"
)

// AuthManager is a thin composition over the ProfileManager that tracks who
// is currently signed in. The session pointer is a store entry of its own,
// separate from the per-email user records: it holds a signed token carrying
// the email, and its absence means signed out.
type AuthManager struct {
	profile *ProfileManager
	store   store.KeyValueStore
	logger  *slog.Logger
}

// NewAuthManager creates a new AuthManager.
func NewAuthManager(profile *ProfileManager, kv store.KeyValueStore, logger *slog.Logger) *AuthManager {
	return &AuthManager{profile: profile, store: kv, logger: logger}
}

// SignUp registers a new account and signs it in. If the account is created
// but the session pointer cannot be written, the user is returned along with
// the store error; signing in again recovers.
func (am *AuthManager) SignUp(ctx context.Context, fullName, email, password string) (models.User, error) {
	user, err := am.profile.CreateUser(ctx, fullName, email, password)
	if err != nil {
		return models.User{}, err
	}
	if err := am.openSession(ctx, email); err != nil {
		return user, err
	}
	return user, nil
}

// SignIn authenticates the credentials and records the session pointer.
func (am *AuthManager) SignIn(ctx context.Context, email, password string) (models.User, error) {
	user, err := am.profile.Authenticate(ctx, email, password)
	if err != nil {
		return models.User{}, err
	}
	if err := am.openSession(ctx, email); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// CurrentUser resolves the session pointer to a user record. An absent,
// expired, or tampered session token reports signed out, never an error.
func (am *AuthManager) CurrentUser(ctx context.Context) (models.User, bool, error) {
	token, ok, err := am.store.Get(ctx, store.SessionKey())
	if err != nil {
		return models.User{}, false, err
	}
	if !ok {
		return models.User{}, false, nil
	}
	claims, err := utils.ParseSessionToken(token)
	if err != nil {
		am.logger.Debug("discarding invalid session token", "error", err)
		return models.User{}, false, nil
	}
	return am.profile.GetUser(ctx, claims.Email)
}

// SignOut clears the session pointer. The per-email user records are left
// untouched.
func (am *AuthManager) SignOut(ctx context.Context) error {
	return am.store.Remove(ctx, store.SessionKey())
}

func (am *AuthManager) openSession(ctx context.Context, email string) error {
	token, err := utils.GenerateSessionToken(email)
	if err != nil {
		return errs.Wrap(errs.CodeStoreIO, "cannot record session", err)
	}
	return am.store.Set(ctx, store.SessionKey(), token)
}
