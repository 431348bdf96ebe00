package managers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopcore/errs"
	"shopcore/models"
)

func TestCreateUserHashesPassword(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	user, err := env.profile.CreateUser(ctx, "Alice Smith", alice, "pw")
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", user.FullName)
	assert.Equal(t, alice, user.Email)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "pw", user.PasswordHash)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.profile.CreateUser(ctx, "Alice Smith", alice, "pw")
	require.NoError(t, err)

	_, err = env.profile.CreateUser(ctx, "Bob Jones", alice, "pw2")
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.CodeDuplicateEmail))

	// The original record is untouched.
	user, ok, err := env.profile.GetUser(ctx, alice)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Alice Smith", user.FullName)
}

func TestCreateUserRejectsBlankFields(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.profile.CreateUser(ctx, " ", alice, "pw")
	assert.True(t, errs.HasCode(err, errs.CodeValidation))

	_, err = env.profile.CreateUser(ctx, "Alice Smith", alice, "")
	assert.True(t, errs.HasCode(err, errs.CodeValidation))
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.profile.CreateUser(ctx, "Alice Smith", alice, "pw")
	require.NoError(t, err)

	_, err = env.profile.Authenticate(ctx, alice, "wrong")
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.CodeInvalidCredentials))

	_, err = env.profile.Authenticate(ctx, "nobody@example.com", "pw")
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.CodeNotFound))

	user, err := env.profile.Authenticate(ctx, alice, "pw")
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", user.FullName)
}

func TestUpdateProfilePreservesUnsetFields(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.profile.CreateUser(ctx, "Alice Smith", alice, "pw")
	require.NoError(t, err)
	_, err = env.profile.AddPaymentMethod(ctx, alice, models.PaymentMethod{Type: models.PaymentTypeCash})
	require.NoError(t, err)

	address := "1 Main St"
	user, err := env.profile.UpdateProfile(ctx, alice, ProfileUpdate{Address: &address})
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", user.FullName)
	assert.Equal(t, "1 Main St", user.Address)
	assert.Len(t, user.PaymentMethods, 1)

	photo := "https://example.com/alice.png"
	user, err = env.profile.UpdateProfile(ctx, alice, ProfileUpdate{ProfilePhoto: &photo})
	require.NoError(t, err)
	assert.Equal(t, "1 Main St", user.Address, "earlier edit survives")
	assert.Equal(t, photo, user.ProfilePhoto)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	name := "Ghost"
	_, err := env.profile.UpdateProfile(ctx, "nobody@example.com", ProfileUpdate{FullName: &name})
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.CodeNotFound))
}

func TestAddPaymentMethodAppends(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.profile.CreateUser(ctx, "Alice Smith", alice, "pw")
	require.NoError(t, err)

	_, err = env.profile.AddPaymentMethod(ctx, alice, models.PaymentMethod{Type: models.PaymentTypeCash})
	require.NoError(t, err)

	card := models.PaymentMethod{Type: models.PaymentTypeCard, Details: &models.CardDetails{
		CardNumber: "4111111111111111",
		CardHolder: "Alice Smith",
		ExpiryDate: "12/30",
		CVV:        "123",
	}}
	user, err := env.profile.AddPaymentMethod(ctx, alice, card)
	require.NoError(t, err)

	require.Len(t, user.PaymentMethods, 2)
	assert.Equal(t, models.PaymentTypeCash, user.PaymentMethods[0].Type)
	assert.Equal(t, models.PaymentTypeCard, user.PaymentMethods[1].Type)
}

func TestAddPaymentMethodValidation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.profile.CreateUser(ctx, "Alice Smith", alice, "pw")
	require.NoError(t, err)

	incomplete := models.PaymentMethod{Type: models.PaymentTypeCard, Details: &models.CardDetails{
		CardNumber: "4111111111111111",
	}}
	_, err = env.profile.AddPaymentMethod(ctx, alice, incomplete)
	assert.True(t, errs.HasCode(err, errs.CodeValidation))

	_, err = env.profile.AddPaymentMethod(ctx, alice, models.PaymentMethod{Type: models.PaymentTypeCard})
	assert.True(t, errs.HasCode(err, errs.CodeValidation))

	_, err = env.profile.AddPaymentMethod(ctx, alice, models.PaymentMethod{Type: "Barter"})
	assert.True(t, errs.HasCode(err, errs.CodeValidation))

	user, ok, err := env.profile.GetUser(ctx, alice)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, user.PaymentMethods, "rejected methods are not stored")
}
