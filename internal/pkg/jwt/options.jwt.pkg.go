package jwt

import (
	"time"
)

const (
	DefaultTokenExpiredTime = 2 * time.Hour
	DefaultSigningMethod    = "HS256"
	DefaultIssuer           = "complaint-portal"
)

type Options struct {
	TokenExpiredTime time.Duration
	TokenSecretKey   string
	SigningMethod    string
	Issuer           string
}

func DefaultOptions(secretKey string) *Options {
	return &Options{
		TokenExpiredTime: DefaultTokenExpiredTime,
		TokenSecretKey:   secretKey,
		SigningMethod:    DefaultSigningMethod,
		Issuer:           DefaultIssuer,
	}
}
