package portal

import (
	"complaint-portal/internal/pkg/middleware"
	"complaint-portal/internal/service/complaint"
	"complaint-portal/internal/service/view"

	"github.com/gin-gonic/gin"
)

// FormBodyLimit caps every non-upload body. Attachments travel through
// /attachments, so a complaint form is text only.
const FormBodyLimit = 1 << 20

func (h *Handler) NewRoutes(e *gin.RouterGroup, session gin.HandlerFunc) {
	formLimit := middleware.BodyLimit(FormBodyLimit)
	uploadLimit := middleware.BodyLimit(int64(h.limits.MaxFiles)*h.limits.MaxFileSize + FormBodyLimit)

	e.StaticFS("/static", view.Assets())
	e.GET("/", session, h.Page)

	e.Group("/attachments", session).
		POST("", uploadLimit, middleware.MultipartFormMiddleware([]middleware.FieldOpts{{
			Name:    complaint.AttachmentsField,
			MaxSize: h.limits.MaxFileSize,
		}}), h.AddAttachments).
		DELETE("", h.ClearAttachments).
		DELETE("/:id", h.RemoveAttachment)

	e.GET("/youtube/preview", h.YouTubePreview)
	e.GET("/char-counter", h.CharCounter)
	e.GET("/visitor-count", h.VisitorCount)
	e.GET("/statistics", h.Statistics)
	e.GET("/categories", h.Categories)

	complaints := e.Group("/complaints", formLimit)
	complaints.
		GET("", h.List).
		POST("", session, h.Submit).
		POST("/export", h.Export).
		GET("/:id", h.Detail).
		PATCH("/:id", h.Update).
		POST("/:id/assign", h.Assign).
		POST("/:id/accept", h.Accept).
		POST("/:id/reject", h.Reject).
		POST("/:id/hold", h.Hold).
		POST("/:id/respond", h.Respond)
}
