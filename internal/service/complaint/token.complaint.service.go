package complaint

import (
	"context"
	"fmt"
	"net/http"

	"complaint-portal/internal/pkg/helper"

	"github.com/PuerkitoBio/goquery"
)

// TokenSource yields the anti-forgery token sent with every request.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type StaticToken string

func (s StaticToken) Token(context.Context) (string, error) {
	return string(s), nil
}

// PageTokenSource scrapes the token from a rendered backend page on every
// call.
type PageTokenSource struct {
	URL    string
	Client *http.Client
}

func (p PageTokenSource) Token(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return "", err
	}
	if fwd, ok := ForwardedFrom(ctx); ok && fwd.Cookie != "" {
		req.Header.Set("Cookie", fwd.Cookie)
	}
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token page %s: %s", p.URL, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}
	token := helper.CSRFTokenFromDocument(doc)
	if token == "" {
		return "", helper.ErrCSRFTokenNotFound
	}
	return token, nil
}

// Forwarded carries the browser's credentials through to the backend.
type Forwarded struct {
	CSRFToken string
	Cookie    string
	RequestID string
}

type forwardedKey struct{}

func WithForwarded(ctx context.Context, fwd Forwarded) context.Context {
	return context.WithValue(ctx, forwardedKey{}, fwd)
}

func ForwardedFrom(ctx context.Context) (Forwarded, bool) {
	fwd, ok := ctx.Value(forwardedKey{}).(Forwarded)
	return fwd, ok
}
