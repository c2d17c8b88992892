package store

import (
	"path/filepath"
	"testing"

	"hardtrack/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUsers(t *testing.T) (UserStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	s, err := OpenUserStore(path)
	require.NoError(t, err)
	return s, path
}

func TestUserCreateFindRoundTrip(t *testing.T) {
	s, path := newUsers(t)

	user := model.User{
		Username:         "cashier1",
		Role:             model.RoleCashier,
		SecurityQuestion: "What is your favorite movie?",
	}
	require.NoError(t, user.SetPassword("pass123"))
	require.NoError(t, user.SetSecurityAnswer("Heat"))
	require.NoError(t, s.Create(user))

	assert.ErrorIs(t, s.Create(user), ErrDuplicate)

	reopened, err := OpenUserStore(path)
	require.NoError(t, err)
	got, err := reopened.Find("cashier1")
	require.NoError(t, err)
	assert.Equal(t, "cashier1", got.Username)
	assert.Equal(t, model.RoleCashier, got.Role)
	assert.True(t, got.CheckPassword("pass123"))
	assert.True(t, got.CheckSecurityAnswer("heat"))
}

func TestFindUnknownUser(t *testing.T) {
	s, _ := newUsers(t)
	_, err := s.Find("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeedDefaultAdminCreatesOnce(t *testing.T) {
	s, _ := newUsers(t)

	created, err := s.SeedDefaultAdmin()
	require.NoError(t, err)
	assert.True(t, created)

	admin, err := s.Find(DefaultAdminUsername)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.True(t, admin.CheckPassword(DefaultAdminPassword))
	assert.True(t, admin.CheckSecurityAnswer(DefaultAdminAnswer))

	created, err = s.SeedDefaultAdmin()
	require.NoError(t, err)
	assert.False(t, created)
}

func TestSeedNeverClobbersCustomizedAdmin(t *testing.T) {
	s, path := newUsers(t)
	_, err := s.SeedDefaultAdmin()
	require.NoError(t, err)

	// The admin rotates their password and recovery answer.
	admin, err := s.Find(DefaultAdminUsername)
	require.NoError(t, err)
	admin.SecurityQuestion = "What city were you born in?"
	require.NoError(t, admin.SetPassword("rotated"))
	require.NoError(t, admin.SetSecurityAnswer("quezon"))
	require.NoError(t, s.Update(*admin))

	// A restart seeds again; the customized record must survive.
	reopened, err := OpenUserStore(path)
	require.NoError(t, err)
	created, err := reopened.SeedDefaultAdmin()
	require.NoError(t, err)
	assert.False(t, created)

	got, err := reopened.Find(DefaultAdminUsername)
	require.NoError(t, err)
	assert.Equal(t, "What city were you born in?", got.SecurityQuestion)
	assert.True(t, got.CheckPassword("rotated"))
	assert.False(t, got.CheckPassword(DefaultAdminPassword))
	assert.True(t, got.CheckSecurityAnswer("QUEZON"))
}

func TestUpdateUnknownUser(t *testing.T) {
	s, _ := newUsers(t)
	err := s.Update(model.User{Username: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}
