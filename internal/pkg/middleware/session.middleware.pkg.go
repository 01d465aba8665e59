package middleware

import (
	"net/http"
	"time"

	_type "complaint-portal/internal/common/type"
	"complaint-portal/internal/pkg/helper"
	"complaint-portal/internal/pkg/jwt"
	"complaint-portal/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const SessionIDKey = "sessionId"

type SessionOpts struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// SessionMiddleware binds each browser to a form session through a signed
// cookie. A missing or invalid cookie starts a fresh session.
func SessionMiddleware(auth jwt.IJWTAuth, opts SessionOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(opts.CookieName); err == nil && cookie != "" {
			if sessionID, err := auth.ValidateToken(cookie); err == nil {
				c.Set(SessionIDKey, sessionID)
				c.Next()
				return
			}
			logger.Debug.Println("discarding invalid session cookie")
		}

		sessionID, err := helper.GenerateID()
		if err != nil {
			Send(c)(helper.ParseResponse(&_type.Response{Code: http.StatusInternalServerError, Error: err}))
			return
		}
		token, _, err := auth.GenerateToken(sessionID)
		if err != nil {
			Send(c)(helper.ParseResponse(&_type.Response{Code: http.StatusInternalServerError, Error: err}))
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(opts.CookieName, token, int(opts.TTL.Seconds()), "/", "", opts.Secure, true)
		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

// SessionID returns the id set by SessionMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
