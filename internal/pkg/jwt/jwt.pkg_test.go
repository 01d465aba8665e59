package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/nalgeon/be"
)

func TestGenerateAndValidate(t *testing.T) {
	auth := New(DefaultOptions("0123456789abcdef"))

	token, exp, err := auth.GenerateToken("session-1")
	be.Err(t, err, nil)
	be.True(t, exp.After(time.Now()))

	id, err := auth.ValidateToken(token)
	be.Err(t, err, nil)
	be.Equal(t, id, "session-1")
}

func TestValidateRejects(t *testing.T) {
	auth := New(DefaultOptions("0123456789abcdef"))
	other := New(DefaultOptions("fedcba9876543210"))

	token, _, err := other.GenerateToken("session-1")
	be.Err(t, err, nil)
	_, err = auth.ValidateToken(token)
	be.Err(t, err, ErrInvalidSession)

	_, err = auth.ValidateToken("not-a-token")
	be.Err(t, err, ErrInvalidSession)

	foreign := DefaultOptions("0123456789abcdef")
	foreign.Issuer = "someone-else"
	token, _, err = New(foreign).GenerateToken("session-1")
	be.Err(t, err, nil)
	_, err = auth.ValidateToken(token)
	be.True(t, errors.Is(err, ErrInvalidSession))
}

func TestValidateExpired(t *testing.T) {
	opt := DefaultOptions("0123456789abcdef")
	opt.TokenExpiredTime = time.Hour
	auth := New(opt).(*Auth)
	auth.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }

	token, _, err := auth.GenerateToken("session-1")
	be.Err(t, err, nil)
	_, err = auth.ValidateToken(token)
	be.Err(t, err, ErrInvalidSession)
}
