package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

const (
	SessionIDKey = "session_id"
)

var ErrInvalidSession = errors.New("invalid session token")

// Auth signs the cookie that binds a browser to its attachment session.
type Auth struct {
	TokenExpiredTime time.Duration
	TokenSecretKey   string
	SigningMethod    string
	Issuer           string
	now              func() time.Time
}

type IJWTAuth interface {
	GenerateToken(sessionID string) (string, *time.Time, error)
	ValidateToken(jwtToken string) (string, error)
}

// New Auth object
func New(opt *Options) IJWTAuth {
	return &Auth{
		TokenExpiredTime: opt.TokenExpiredTime,
		TokenSecretKey:   opt.TokenSecretKey,
		SigningMethod:    opt.SigningMethod,
		Issuer:           opt.Issuer,
		now:              time.Now,
	}
}

// GenerateToken signs a token carrying sessionID.
func (a *Auth) GenerateToken(sessionID string) (string, *time.Time, error) {
	if sessionID == "" {
		return "", nil, fmt.Errorf("%w: empty session id", ErrInvalidSession)
	}
	now := a.now()
	exp := now.Add(a.TokenExpiredTime)

	claims := jwt.MapClaims{
		SessionIDKey: sessionID,
		"iat":        now.Unix(),
		"iss":        a.Issuer,
	}
	if a.TokenExpiredTime > 0 {
		claims["exp"] = exp.Unix()
	}

	token, err := jwt.NewWithClaims(jwt.GetSigningMethod(a.SigningMethod), claims).
		SignedString([]byte(a.TokenSecretKey))
	if err != nil {
		return "", nil, err
	}
	return token, &exp, nil
}

// ValidateToken returns the session id of a valid token.
func (a *Auth) ValidateToken(jwtToken string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(jwtToken, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != a.SigningMethod {
			return nil, fmt.Errorf("unexpected signing method %s", token.Method.Alg())
		}
		return []byte(a.TokenSecretKey), nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if !token.Valid {
		return "", ErrInvalidSession
	}
	if iss, _ := claims["iss"].(string); iss != a.Issuer {
		return "", fmt.Errorf("%w: issuer %q", ErrInvalidSession, iss)
	}
	sessionID, _ := claims[SessionIDKey].(string)
	if sessionID == "" {
		return "", fmt.Errorf("%w: missing %s", ErrInvalidSession, SessionIDKey)
	}
	return sessionID, nil
}
