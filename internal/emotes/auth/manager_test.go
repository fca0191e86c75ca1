package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestManager(t *testing.T, ttl time.Duration) *Manager {
	t.Helper()
	m, err := NewManager(Config{
		Secret:    testSecret,
		Issuer:    "emotehub-test",
		AccessTTL: ttl,
	})
	assert.NoError(t, err)
	return m
}

func TestNewManagerRejectsBadConfig(t *testing.T) {
	_, err := NewManager(Config{Secret: []byte("short"), AccessTTL: time.Hour})
	assert.Error(t, err)

	_, err = NewManager(Config{Secret: testSecret, AccessTTL: 0})
	assert.Error(t, err)

	_, err = NewManager(Config{Secret: testSecret, AccessTTL: time.Hour, Leeway: 10 * time.Minute})
	assert.Error(t, err)
}

func TestCreateAndParseAccess(t *testing.T) {
	m := newTestManager(t, time.Hour)

	token, err := m.CreateAccess("64a000000000000000000001", 3)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.ParseAccess(token)
	assert.NoError(t, err)
	assert.Equal(t, "64a000000000000000000001", claims.UserID)
	assert.Equal(t, int64(3), claims.TokenVersion)
	assert.Equal(t, "emotehub-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestCreateAccessRejectsEmptyUser(t *testing.T) {
	m := newTestManager(t, time.Hour)
	_, err := m.CreateAccess("", 0)
	assert.Error(t, err)
}

func TestParseAccessExpired(t *testing.T) {
	m := newTestManager(t, time.Millisecond)

	token, err := m.CreateAccess("64a000000000000000000001", 0)
	assert.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = m.ParseAccess(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseAccessWrongSecret(t *testing.T) {
	m := newTestManager(t, time.Hour)
	token, err := m.CreateAccess("64a000000000000000000001", 0)
	assert.NoError(t, err)

	other, err := NewManager(Config{
		Secret:    []byte("ffffffffffffffffffffffffffffffff"),
		Issuer:    "emotehub-test",
		AccessTTL: time.Hour,
	})
	assert.NoError(t, err)

	_, err = other.ParseAccess(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseAccessWrongIssuer(t *testing.T) {
	minter, err := NewManager(Config{
		Secret:    testSecret,
		Issuer:    "someone-else",
		AccessTTL: time.Hour,
	})
	assert.NoError(t, err)

	token, err := minter.CreateAccess("64a000000000000000000001", 0)
	assert.NoError(t, err)

	m := newTestManager(t, time.Hour)
	_, err = m.ParseAccess(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseAccessGarbage(t *testing.T) {
	m := newTestManager(t, time.Hour)
	_, err := m.ParseAccess("not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
