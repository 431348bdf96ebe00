package managers

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"shopcore/codec"
	"shopcore/errs"
	"shopcore/models"
	"shopcore/store"
)

// ProfileManager owns the per-email user records: creation, credential
// checks, partial profile edits, and the append-only payment method list.
type ProfileManager struct {
	store  store.KeyValueStore
	locks  *store.KeyLock
	logger *slog.Logger
}

// NewProfileManager creates a new ProfileManager.
func NewProfileManager(kv store.KeyValueStore, locks *store.KeyLock, logger *slog.Logger) *ProfileManager {
	return &ProfileManager{store: kv, locks: locks, logger: logger}
}

// ProfileUpdate carries the fields of a partial profile edit. Nil fields are
// left untouched on the stored record.
type ProfileUpdate struct {
	FullName     *string
	Address      *string
	ProfilePhoto *string
}

// GetUser looks up the user record for an email. An undecodable record is
// reported as absent.
func (pm *ProfileManager) GetUser(ctx context.Context, email string) (models.User, bool, error) {
	raw, ok, err := pm.store.Get(ctx, store.UserKey(email))
	if err != nil {
		return models.User{}, false, err
	}
	if !ok {
		return models.User{}, false, nil
	}
	user, err := codec.DecodeUser(raw)
	if err != nil {
		pm.logger.Warn("discarding undecodable user record", "email", email, "error", err)
		return models.User{}, false, nil
	}
	return user, true, nil
}

// CreateUser registers a new account. The password is stored as a bcrypt
// hash, never in the clear. Registering an email that already has a record
// fails with DUPLICATE_EMAIL.
func (pm *ProfileManager) CreateUser(ctx context.Context, fullName, email, password string) (models.User, error) {
	if strings.TrimSpace(fullName) == "" || strings.TrimSpace(email) == "" || password == "" {
		return models.User{}, errs.New(errs.CodeValidation, "full name, email and password are required")
	}

	unlock := pm.locks.Lock(store.UserKey(email))
	defer unlock()

	// Any existing record claims the email, decodable or not.
	_, exists, err := pm.store.Get(ctx, store.UserKey(email))
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, errs.New(errs.CodeDuplicateEmail, "this email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, errs.Wrap(errs.CodeValidation, "cannot hash password", err)
	}

	user := models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := pm.persist(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate checks credentials against the stored record. A missing
// account yields NOT_FOUND, a wrong password INVALID_CREDENTIALS.
func (pm *ProfileManager) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	user, ok, err := pm.GetUser(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, errs.New(errs.CodeNotFound, "no account found with this email")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, errs.New(errs.CodeInvalidCredentials, "incorrect password")
	}
	return user, nil
}

// UpdateProfile merges the set fields of update into the stored record,
// preserving everything else, and persists the result.
func (pm *ProfileManager) UpdateProfile(ctx context.Context, email string, update ProfileUpdate) (models.User, error) {
	unlock := pm.locks.Lock(store.UserKey(email))
	defer unlock()

	user, ok, err := pm.GetUser(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, errs.New(errs.CodeNotFound, "no account found with this email")
	}

	if update.FullName != nil {
		user.FullName = *update.FullName
	}
	if update.Address != nil {
		user.Address = *update.Address
	}
	if update.ProfilePhoto != nil {
		user.ProfilePhoto = *update.ProfilePhoto
	}

	if err := pm.persist(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// AddPaymentMethod appends a payment method to the user's list. The list is
// append-only; nothing is replaced or removed. A card method missing any of
// its details fails with VALIDATION_ERROR, as does an unknown method type.
func (pm *ProfileManager) AddPaymentMethod(ctx context.Context, email string, method models.PaymentMethod) (models.User, error) {
	if err := validatePaymentMethod(method); err != nil {
		return models.User{}, err
	}

	unlock := pm.locks.Lock(store.UserKey(email))
	defer unlock()

	user, ok, err := pm.GetUser(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, errs.New(errs.CodeNotFound, "no account found with this email")
	}

	user.PaymentMethods = append(user.PaymentMethods, method)
	if err := pm.persist(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func validatePaymentMethod(method models.PaymentMethod) error {
	switch method.Type {
	case models.PaymentTypeCard:
		d := method.Details
		if d == nil || d.CardNumber == "" || d.CardHolder == "" || d.ExpiryDate == "" || d.CVV == "" {
			return errs.New(errs.CodeValidation, "please fill in all card details")
		}
		return nil
	case models.PaymentTypeCash:
		return nil
	default:
		return errs.Newf(errs.CodeValidation, "unsupported payment method type %q", method.Type)
	}
}

func (pm *ProfileManager) persist(ctx context.Context, user models.User) error {
	encoded, err := codec.EncodeUser(user)
	if err != nil {
		return err
	}
	return pm.store.Set(ctx, store.UserKey(user.Email), encoded)
}
