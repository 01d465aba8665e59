package helper

import (
	"errors"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	CSRFHeader    = "X-CSRFToken"
	CSRFFormField = "csrfmiddlewaretoken"
)

var ErrCSRFTokenNotFound = errors.New("csrf token not found")

// ExtractCSRFToken reads the anti-forgery token from a rendered page: the
// hidden form field first, then the csrf-token meta tag.
func ExtractCSRFToken(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", err
	}
	if token := CSRFTokenFromDocument(doc); token != "" {
		return token, nil
	}
	return "", ErrCSRFTokenNotFound
}

func CSRFTokenFromDocument(doc *goquery.Document) string {
	if v, ok := doc.Find(`[name="` + CSRFFormField + `"]`).First().Attr("value"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	if v, ok := doc.Find(`meta[name="csrf-token"]`).First().Attr("content"); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
