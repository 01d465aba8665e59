package enum

import "github.com/gin-gonic/gin"

type EnvEnum string

const (
	DEVELOPMENT EnvEnum = "development"
	PRODUCTION  EnvEnum = "production"
	STAGING     EnvEnum = "staging"
	TEST        EnvEnum = "test"
)

func (e EnvEnum) ToString() string {
	return string(e)
}

func (e EnvEnum) IsValid() bool {
	switch e {
	case DEVELOPMENT, PRODUCTION, STAGING, TEST:
		return true
	}
	return false
}

// GinMode maps the application environment onto gin's run modes.
func (e EnvEnum) GinMode() string {
	switch e {
	case PRODUCTION, STAGING:
		return gin.ReleaseMode
	case TEST:
		return gin.TestMode
	}
	return gin.DebugMode
}
