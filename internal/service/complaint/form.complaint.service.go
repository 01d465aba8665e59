package complaint

import (
	"context"

	"complaint-portal/internal/common/enum"
	_type "complaint-portal/internal/common/type"
	"complaint-portal/internal/pkg/validation"
	"complaint-portal/internal/service/complaint/model"
)

// Submit creates a complaint from the form and the session's files. A second
// submit for the same sessionID fails with ErrSubmitInFlight until the first
// settles.
func (c *Client) Submit(ctx context.Context, sessionID string, form model.ComplaintForm, files []_type.BufferedFile) (*model.ComplaintDetail, error) {
	if err := validation.Validate(form); err != nil {
		return nil, err
	}
	if sessionID != "" {
		release, err := c.guard.Acquire(sessionID)
		if err != nil {
			return nil, err
		}
		defer release()
	}

	body := map[string]interface{}{}
	for key, value := range form.Fields() {
		body[key] = value
	}
	if len(files) > 0 {
		body[AttachmentsField] = files
	}

	resp, err := c.do(ctx, call{
		method:      enum.POST,
		path:        "/complaints/",
		contentType: enum.MultipartForm,
		body:        body,
		csrfField:   true,
	})
	if err != nil {
		return nil, err
	}
	created, err := decode[model.ComplaintDetail](resp)
	if err != nil {
		return nil, err
	}
	c.publish(ctx, enum.SUBMITTED, created.ID)
	return created, nil
}

func (c *Client) Update(ctx context.Context, id string, form model.UpdateForm) (*model.ComplaintDetail, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if err := validation.Validate(form); err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, call{
		method:      enum.PATCH,
		path:        complaintPath(id),
		contentType: enum.ApplicationXform,
		body:        form.Values(),
	})
	if err != nil {
		return nil, err
	}
	updated, err := decode[model.ComplaintDetail](resp)
	if err != nil {
		return nil, err
	}
	c.publish(ctx, enum.UPDATED, id)
	return updated, nil
}

func (c *Client) Assign(ctx context.Context, id string, form model.AssignForm) (*model.MessageResponse, error) {
	if err := validation.Validate(form); err != nil {
		return nil, err
	}
	return c.action(ctx, id, "assign", enum.ASSIGN, form.Values())
}

func (c *Client) Accept(ctx context.Context, id string) (*model.MessageResponse, error) {
	return c.action(ctx, id, "accept", enum.ACCEPT, nil)
}

func (c *Client) Reject(ctx context.Context, id string, form model.ReasonForm) (*model.MessageResponse, error) {
	if err := validation.Validate(form); err != nil {
		return nil, err
	}
	return c.action(ctx, id, "reject", enum.REJECT, form.Values())
}

func (c *Client) Hold(ctx context.Context, id string, form model.ReasonForm) (*model.MessageResponse, error) {
	if err := validation.Validate(form); err != nil {
		return nil, err
	}
	return c.action(ctx, id, "hold", enum.HOLD, form.Values())
}

func (c *Client) Respond(ctx context.Context, id string, form model.ResponseForm) (*model.MessageResponse, error) {
	if err := validation.Validate(form); err != nil {
		return nil, err
	}
	return c.action(ctx, id, "respond", enum.RESPONDED, form.Values())
}

func (c *Client) action(ctx context.Context, id, name string, event enum.LifecycleEventEnum, body interface{}) (*model.MessageResponse, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	req := call{method: enum.POST, path: complaintPath(id, name)}
	if body != nil {
		req.contentType = enum.ApplicationXform
		req.body = body
	}
	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}
	msg, err := decode[model.MessageResponse](resp)
	if err != nil {
		return nil, err
	}
	c.publish(ctx, event, id)
	return msg, nil
}
