package users_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkpulse/internal/testsupport"
	"linkpulse/internal/users"
)

func TestCreateUser(t *testing.T) {
	db := testsupport.SetupTestDB(t)

	user, err := users.CreateUser(db, "ana@example.com", "Ana", "s3cret-pass")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "s3cret-pass", user.EncryptedPassword)

	_, err = users.CreateUser(db, "ana@example.com", "Ana", "other")
	assert.ErrorIs(t, err, users.ErrUserExists)

	_, err = users.CreateUser(db, "", "NoEmail", "pass")
	assert.Error(t, err)
	_, err = users.CreateUser(db, "b@example.com", "NoPass", "")
	assert.Error(t, err)
}

func TestAuthenticate(t *testing.T) {
	db := testsupport.SetupTestDB(t)
	_, err := users.CreateUser(db, "ana@example.com", "Ana", "s3cret-pass")
	require.NoError(t, err)

	user, err := users.Authenticate(db, "ana@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)

	_, err = users.Authenticate(db, "ana@example.com", "wrong")
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
	_, err = users.Authenticate(db, "missing@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	db := testsupport.SetupTestDB(t)
	_, err := users.CreateUser(db, "ana@example.com", "Ana", "s3cret-pass")
	require.NoError(t, err)

	require.NoError(t, users.ChangePassword(db, "ana@example.com", "new-pass"))
	_, err = users.Authenticate(db, "ana@example.com", "new-pass")
	assert.NoError(t, err)
	_, err = users.Authenticate(db, "ana@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)

	assert.Error(t, users.ChangePassword(db, "ana@example.com", ""))
	assert.Error(t, users.ChangePassword(db, "missing@example.com", "x"))
}

func TestFindByEmailAndID(t *testing.T) {
	db := testsupport.SetupTestDB(t)
	created, err := users.CreateUser(db, "ana@example.com", "Ana", "s3cret-pass")
	require.NoError(t, err)

	byEmail, err := users.FindByEmail(db, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := users.FindByID(db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", byID.Email)

	_, err = users.FindByEmail(db, "nobody@example.com")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}
