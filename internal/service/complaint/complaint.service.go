package complaint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"complaint-portal/internal/common/enum"
	_type "complaint-portal/internal/common/type"
	"complaint-portal/internal/pkg/helper"
	"complaint-portal/internal/pkg/logger"
	"complaint-portal/internal/service/complaint/model"
	"complaint-portal/internal/service/eventbus"
)

const AttachmentsField = "attachments"

type Options struct {
	BaseURL    string
	Timeout    time.Duration
	Tokens     TokenSource
	Events     eventbus.Bus
	HTTPClient *http.Client

	// PublishTimeout bounds each event publish. EventBuffer is the number
	// of events waiting to be published.
	PublishTimeout time.Duration
	EventBuffer    int
}

// Client talks to the complaint REST API. Every call is single-shot.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	events  *dispatcher
	guard   *Guard
}

type IService interface {
	Submit(ctx context.Context, sessionID string, form model.ComplaintForm, files []_type.BufferedFile) (*model.ComplaintDetail, error)
	Update(ctx context.Context, id string, form model.UpdateForm) (*model.ComplaintDetail, error)
	Assign(ctx context.Context, id string, form model.AssignForm) (*model.MessageResponse, error)
	Accept(ctx context.Context, id string) (*model.MessageResponse, error)
	Reject(ctx context.Context, id string, form model.ReasonForm) (*model.MessageResponse, error)
	Hold(ctx context.Context, id string, form model.ReasonForm) (*model.MessageResponse, error)
	Respond(ctx context.Context, id string, form model.ResponseForm) (*model.MessageResponse, error)

	List(ctx context.Context, filters model.FilterSet) (*model.ComplaintPage, error)
	Detail(ctx context.Context, id string) (*model.ComplaintDetail, error)
	Statistics(ctx context.Context) (*model.Statistics, error)
	Categories(ctx context.Context) ([]model.Category, error)
	Export(ctx context.Context, req model.ExportRequest) (*model.ExportResult, error)
}

func New(opts Options) *Client {
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	events := opts.Events
	if events == nil {
		events = eventbus.Noop()
	}
	tokens := opts.Tokens
	if tokens == nil {
		tokens = StaticToken("")
	}
	return &Client{
		baseURL: strings.TrimSuffix(opts.BaseURL, "/"),
		http:    client,
		tokens:  tokens,
		events:  newDispatcher(events, opts.EventBuffer, opts.PublishTimeout),
		guard:   NewGuard(),
	}
}

// Close waits for queued lifecycle events to be published. The event bus
// itself is left open.
func (c *Client) Close(ctx context.Context) error {
	return c.events.close(ctx)
}

var ErrEmptyID = errors.New("complaint id is required")

// APIError is returned for any non-2xx answer.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("complaint api: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
	}
	return fmt.Sprintf("complaint api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func newAPIError(resp *helper.HTTPAPIResponse) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, Body: resp.Raw}
	if body, ok := resp.Data.(map[string]interface{}); ok {
		for _, key := range []string{"error", "detail", "message"} {
			if msg, ok := body[key].(string); ok && msg != "" {
				apiErr.Message = msg
				return apiErr
			}
		}
		if msg, err := helper.JSONToString(body); err == nil {
			apiErr.Message = msg
		}
	}
	return apiErr
}

type call struct {
	method      enum.HTTPMethodEnum
	path        string
	contentType enum.HTTPContentTypeEnum
	body        interface{}
	params      map[string]string
	// csrfField also places the token in the multipart body.
	csrfField bool
}

func (c *Client) do(ctx context.Context, req call) (*helper.HTTPAPIResponse, error) {
	token, err := c.csrfToken(ctx)
	if err != nil {
		return nil, err
	}

	headers := http.Header{}
	headers.Set("Accept", enum.ApplicationJSON.ToString())
	headers.Set(helper.CSRFHeader, token)
	if req.contentType != "" {
		headers.Set("Content-Type", req.contentType.ToString())
	}
	if fwd, ok := ForwardedFrom(ctx); ok {
		if fwd.Cookie != "" {
			headers.Set("Cookie", fwd.Cookie)
		}
		if fwd.RequestID != "" {
			headers.Set("X-Request-ID", fwd.RequestID)
		}
	}
	if req.csrfField {
		if body, ok := req.body.(map[string]interface{}); ok {
			body[helper.CSRFFormField] = token
		}
	}

	resp, err := helper.HTTPRequest(&helper.HTTPRequestPayload{
		Method: req.method,
		URL:    c.baseURL + req.path,
		Body:   req.body,
		Params: req.params,
	}, &helper.HTTPRequestConfig{
		Ctx:     ctx,
		Headers: headers,
		Client:  c.http,
	})
	if err != nil {
		logger.Error.Println(req.method, req.path, err)
		return nil, fmt.Errorf("%s %s: %w", req.method, req.path, err)
	}
	if !resp.OK() {
		return nil, newAPIError(resp)
	}
	return resp, nil
}

func (c *Client) csrfToken(ctx context.Context) (string, error) {
	if fwd, ok := ForwardedFrom(ctx); ok && fwd.CSRFToken != "" {
		return fwd.CSRFToken, nil
	}
	return c.tokens.Token(ctx)
}

func decode[T any](resp *helper.HTTPAPIResponse) (*T, error) {
	out := new(T)
	if len(resp.Raw) == 0 {
		return out, nil
	}
	if err := helper.ByteToStruct(resp.Raw, out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

// publish queues the event and returns at once: the write already happened.
func (c *Client) publish(ctx context.Context, eventType enum.LifecycleEventEnum, complaintID string) {
	requestID := ""
	if fwd, ok := ForwardedFrom(ctx); ok {
		requestID = fwd.RequestID
	}
	c.events.enqueue(eventbus.NewEvent(eventType, complaintID, requestID))
}

func complaintPath(id string, action ...string) string {
	path := "/complaints/" + id + "/"
	for _, a := range action {
		path += a + "/"
	}
	return path
}
