package portal

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"complaint-portal/internal/common/enum"
	_type "complaint-portal/internal/common/type"
	"complaint-portal/internal/pkg/helper"
	"complaint-portal/internal/pkg/logger"
	"complaint-portal/internal/pkg/middleware"
	"complaint-portal/internal/pkg/validation"
	"complaint-portal/internal/service/attachment"
	attachmentModel "complaint-portal/internal/service/attachment/model"
	"complaint-portal/internal/service/complaint"
	"complaint-portal/internal/service/complaint/model"
	"complaint-portal/internal/service/view"
	"complaint-portal/internal/service/youtube"

	"github.com/gin-gonic/gin"
)

const csrfCookie = "csrftoken"

type Handler struct {
	complaints complaint.IService
	sessions   attachment.Store
	limits     attachmentModel.Limits
	visitors   *view.VisitorCounter
	locale     string
}

type IHandler interface {
	NewRoutes(e *gin.RouterGroup, session gin.HandlerFunc)
	Page(c *gin.Context)

	AddAttachments(c *gin.Context)
	RemoveAttachment(c *gin.Context)
	ClearAttachments(c *gin.Context)
	YouTubePreview(c *gin.Context)
	CharCounter(c *gin.Context)
	VisitorCount(c *gin.Context)

	Submit(c *gin.Context)
	Update(c *gin.Context)
	Assign(c *gin.Context)
	Accept(c *gin.Context)
	Reject(c *gin.Context)
	Hold(c *gin.Context)
	Respond(c *gin.Context)

	List(c *gin.Context)
	Detail(c *gin.Context)
	Statistics(c *gin.Context)
	Categories(c *gin.Context)
	Export(c *gin.Context)
}

func NewHandler(complaints complaint.IService, sessions attachment.Store, limits attachmentModel.Limits, visitors *view.VisitorCounter, locale string) IHandler {
	return &Handler{
		complaints: complaints,
		sessions:   sessions,
		limits:     limits,
		visitors:   visitors,
		locale:     locale,
	}
}

// forwarded carries the browser's token, cookies and request id to the
// complaint client.
func forwarded(c *gin.Context) context.Context {
	token := c.GetHeader(helper.CSRFHeader)
	if token == "" && c.Request.Method != http.MethodGet {
		token = c.PostForm(helper.CSRFFormField)
	}
	if token == "" {
		token, _ = c.Cookie(csrfCookie)
	}
	return complaint.WithForwarded(c.Request.Context(), complaint.Forwarded{
		CSRFToken: token,
		Cookie:    c.GetHeader("Cookie"),
		RequestID: c.GetString("requestId"),
	})
}

func wantsHTML(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true" || strings.Contains(c.GetHeader("Accept"), "text/html")
}

func html(c *gin.Context, code int, fragment template.HTML) {
	middleware.Send(c)(&_type.Response{Code: code, HTML: fragment})
}

// statusOf maps an error to the status relayed to the browser.
func statusOf(err error) int {
	var apiErr *complaint.APIError
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, validation.ErrValidation), errors.Is(err, complaint.ErrEmptyID):
		return http.StatusBadRequest
	case errors.Is(err, complaint.ErrSubmitInFlight):
		return http.StatusConflict
	case errors.As(err, &apiErr):
		return apiErr.StatusCode
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}

func (h *Handler) fail(c *gin.Context, err error) {
	code := statusOf(err)
	if wantsHTML(c) {
		html(c, code, view.Alert(err.Error(), enum.ERROR))
		return
	}
	middleware.Send(c)(&_type.Response{Code: code, Error: err, Message: err.Error()})
}

// failRead renders the error state with its reload action.
func (h *Handler) failRead(c *gin.Context, err error) {
	logger.Error.Println(c.Request.Method, c.Request.URL.Path, err)
	if wantsHTML(c) {
		html(c, statusOf(err), view.Error(err.Error()))
		return
	}
	h.fail(c, err)
}

func (h *Handler) succeed(c *gin.Context, code int, data any, message string) {
	if wantsHTML(c) {
		html(c, code, view.Alert(message, enum.SUCCESS))
		return
	}
	middleware.Send(c)(&_type.Response{Code: code, Data: data, Message: message})
}

func (h *Handler) session(c *gin.Context) (*attachment.Session, string, error) {
	id := middleware.SessionID(c)
	s, err := h.sessions.Load(c.Request.Context(), id)
	return s, id, err
}

func (h *Handler) Page(c *gin.Context) {
	ctx := forwarded(c)
	token, _ := complaint.ForwardedFrom(ctx)

	categories := complaint.Async(ctx, h.complaints.Categories)
	stats := complaint.Async(ctx, h.complaints.Statistics)

	data := view.DefaultPageData(h.locale, token.CSRFToken)
	data.VisitorSeconds = int(h.visitors.Interval().Seconds())
	page, err := view.NewPage(data, h.locale)
	if err != nil {
		h.fail(c, err)
		return
	}

	if list, err := categories.Wait(ctx); err != nil {
		logger.Warning.Println("load categories:", err)
	} else {
		page.SetCategories(list)
	}
	if s, err := stats.Wait(ctx); err != nil {
		logger.Warning.Println("load statistics:", err)
	} else {
		page.ApplyStatistics(s.Values())
	}
	page.SetVisitorCount(h.visitors.Count())

	if s, _, err := h.session(c); err != nil {
		logger.Warning.Println("load attachment session:", err)
	} else {
		for _, f := range s.Files() {
			page.AppendAttachment(f)
		}
		page.SetFileCounter(s.Counter())
	}

	out, err := page.HTML()
	if err != nil {
		h.fail(c, err)
		return
	}
	html(c, http.StatusOK, template.HTML(out))
}

func (h *Handler) AddAttachments(c *gin.Context) {
	s, id, err := h.session(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	result := s.Add(middleware.BufferedFilesFrom(c, complaint.AttachmentsField))
	if err := h.sessions.Save(c.Request.Context(), id, s); err != nil {
		h.fail(c, err)
		return
	}

	var out strings.Builder
	for _, f := range result.Accepted {
		out.WriteString(string(view.AttachmentTile(f)))
	}
	alerts := make([]template.HTML, 0, len(result.Rejected))
	for _, r := range result.Rejected {
		alerts = append(alerts, view.Alert(r.Message, r.Severity))
	}
	out.WriteString(string(view.AlertsOOB(alerts...)))
	out.WriteString(string(view.FileCounterOOB(result.Counter)))
	html(c, http.StatusOK, template.HTML(out.String()))
}

func (h *Handler) RemoveAttachment(c *gin.Context) {
	s, id, err := h.session(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !s.Remove(c.Param("id")) {
		html(c, http.StatusNotFound, view.FileCounterOOB(s.Counter()))
		return
	}
	if err := h.sessions.Save(c.Request.Context(), id, s); err != nil {
		h.fail(c, err)
		return
	}
	html(c, http.StatusOK, view.FileCounterOOB(s.Counter()))
}

func (h *Handler) ClearAttachments(c *gin.Context) {
	s, id, err := h.session(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	s.Clear()
	if err := h.sessions.Save(c.Request.Context(), id, s); err != nil {
		h.fail(c, err)
		return
	}
	html(c, http.StatusOK, view.FileCounterOOB(s.Counter()))
}

func (h *Handler) YouTubePreview(c *gin.Context) {
	embed, ok := youtube.Preview(c.Query("youtube_link"))
	if !ok {
		html(c, http.StatusOK, view.HiddenYouTubePreview())
		return
	}
	html(c, http.StatusOK, view.YouTubePreview(embed))
}

func (h *Handler) CharCounter(c *gin.Context) {
	length, err := strconv.Atoi(c.DefaultQuery("length", "0"))
	if err != nil || length < 0 {
		html(c, http.StatusBadRequest, view.Alert("invalid length", enum.ERROR))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("max", strconv.Itoa(model.MaxContentLength)))
	if err != nil || limit <= 0 {
		html(c, http.StatusBadRequest, view.Alert("invalid max", enum.ERROR))
		return
	}
	html(c, http.StatusOK, view.CharCounter(length, limit))
}

func (h *Handler) VisitorCount(c *gin.Context) {
	html(c, http.StatusOK, template.HTML(template.HTMLEscapeString(helper.FormatNumber(h.visitors.Count(), h.locale))))
}
