package portal

import (
	"errors"
	"fmt"
	"net/http"

	"complaint-portal/internal/pkg/logger"
	"complaint-portal/internal/pkg/validation"
	"complaint-portal/internal/service/complaint"
	"complaint-portal/internal/service/complaint/model"

	"github.com/gin-gonic/gin"
)

func bind[T any](c *gin.Context) (T, error) {
	var form T
	if err := c.ShouldBind(&form); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return form, err
		}
		return form, fmt.Errorf("%w: %s", validation.ErrValidation, err)
	}
	return form, nil
}

// Submit sends the form with the session's files. The session is cleared
// once the backend accepts the complaint.
func (h *Handler) Submit(c *gin.Context) {
	form, err := bind[model.ComplaintForm](c)
	if err != nil {
		h.fail(c, err)
		return
	}
	s, id, err := h.session(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	created, err := h.complaints.Submit(forwarded(c), id, form, s.BufferedFiles(complaint.AttachmentsField))
	if err != nil {
		h.fail(c, err)
		return
	}

	s.Clear()
	if err := h.sessions.Delete(c.Request.Context(), id); err != nil {
		logger.Warning.Println("drop attachment session:", err)
	}
	h.succeed(c, http.StatusCreated, created, "تم إرسال الشكوى بنجاح")
}

func (h *Handler) Update(c *gin.Context) {
	form, err := bind[model.UpdateForm](c)
	if err != nil {
		h.fail(c, err)
		return
	}
	updated, err := h.complaints.Update(forwarded(c), c.Param("id"), form)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.succeed(c, http.StatusOK, updated, "تم تحديث الشكوى بنجاح")
}

func (h *Handler) Assign(c *gin.Context) {
	form, err := bind[model.AssignForm](c)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.relay(c)(h.complaints.Assign(forwarded(c), c.Param("id"), form))
}

func (h *Handler) Accept(c *gin.Context) {
	h.relay(c)(h.complaints.Accept(forwarded(c), c.Param("id")))
}

func (h *Handler) Reject(c *gin.Context) {
	form, err := bind[model.ReasonForm](c)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.relay(c)(h.complaints.Reject(forwarded(c), c.Param("id"), form))
}

func (h *Handler) Hold(c *gin.Context) {
	form, err := bind[model.ReasonForm](c)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.relay(c)(h.complaints.Hold(forwarded(c), c.Param("id"), form))
}

func (h *Handler) Respond(c *gin.Context) {
	form, err := bind[model.ResponseForm](c)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.relay(c)(h.complaints.Respond(forwarded(c), c.Param("id"), form))
}

// relay answers with the backend's own message.
func (h *Handler) relay(c *gin.Context) func(*model.MessageResponse, error) {
	return func(msg *model.MessageResponse, err error) {
		if err != nil {
			h.fail(c, err)
			return
		}
		h.succeed(c, http.StatusOK, msg, msg.Message)
	}
}
