package middleware

import (
	"net/http"
	"time"

	"complaint-portal/internal/common/enum"
	_type "complaint-portal/internal/common/type"
	"complaint-portal/internal/pkg/helper"
	"complaint-portal/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SendFunc = func(r *_type.Response)

// ResponseInit installs the "send" closure. JSON responses use the
// ResponseAPI envelope; HTML fragments are written raw.
func ResponseInit() gin.HandlerFunc {
	return func(c *gin.Context) {
		shouldDebug := gin.Mode() == gin.DebugMode
		c.Set("send", SendFunc(func(r *_type.Response) {
			if r.Code == 0 {
				r.Code = http.StatusOK
			}
			r = helper.ParseResponse(r)
			if r.Error != nil && r.Code >= http.StatusInternalServerError {
				logger.Error.Println(c.Request.Method, c.Request.URL.Path, c.GetString("requestId"), r.Error)
			}

			c.Abort()
			if r.HTML != "" {
				c.Data(r.Code, enum.TextHTML.ToString(), []byte(r.HTML))
				return
			}

			response := _type.ResponseAPI{
				Message: r.Message,
				Data:    r.Data,
			}

			if shouldDebug {
				startTime := time.Now()
				if t, ok := c.Value("start-time").(time.Time); ok {
					startTime = t
				}
				endTime := time.Now()

				response.Debug = &_type.ResponseAPIDebug{
					RequestID: c.GetString("requestId"),
					Version:   c.GetString("version"),
					StartTime: startTime,
					EndTime:   endTime,
					RuntimeMs: endTime.Sub(startTime).Milliseconds(),
					Error: func() *string {
						if r.Error != nil {
							return helper.StringPtr(r.Error.Error())
						}
						return nil
					}(),
				}
			}

			c.JSON(r.Code, response)
		}))

		c.Next()
	}
}

// Send fetches the closure installed by ResponseInit.
func Send(c *gin.Context) SendFunc {
	return c.MustGet("send").(SendFunc)
}
