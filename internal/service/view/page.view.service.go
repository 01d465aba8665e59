package view

import (
	"io"
	"strings"

	"complaint-portal/internal/common/enum"
	"complaint-portal/internal/pkg/helper"
	attachment "complaint-portal/internal/service/attachment/model"
	complaint "complaint-portal/internal/service/complaint/model"
	"complaint-portal/internal/service/youtube"

	"github.com/PuerkitoBio/goquery"
)

const (
	attachmentPreview = "#attachment-preview"
	fileCounter       = "#file-counter"
	youtubePreview    = "#youtube-preview"
	visitorCount      = "#visitor-count"
	categorySelect    = "#category"
	alertContainer    = ".container"
)

const counterClasses = "text-success text-warning text-danger"

// Page binds fragments into a rendered document through the DOM hooks the
// markup exposes.
type Page struct {
	doc    *goquery.Document
	locale string
}

func ParsePage(r io.Reader, locale string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Page{doc: doc, locale: locale}, nil
}

// NewPage renders the page skeleton and wraps it.
func NewPage(data PageData, locale string) (*Page, error) {
	return ParsePage(strings.NewReader(string(PageSkeleton(data))), locale)
}

func (p *Page) Document() *goquery.Document {
	return p.doc
}

func (p *Page) HTML() (string, error) {
	return p.doc.Html()
}

func (p *Page) ShowLoading(selector string) {
	p.doc.Find(selector).SetHtml(string(Loading()))
}

func (p *Page) HideLoading(selector string) {
	p.doc.Find(selector).Find(".loading-container").Remove()
}

func (p *Page) ShowEmpty(selector, message, icon string) {
	p.doc.Find(selector).SetHtml(string(Empty(message, icon)))
}

func (p *Page) ShowError(selector, message string) {
	p.doc.Find(selector).SetHtml(string(Error(message)))
}

// ApplyStatistics writes each value into .stat-number[data-stat=key].
// Keys without a matching element are ignored.
func (p *Page) ApplyStatistics(values map[string]int) {
	p.doc.Find(".stat-number[data-stat]").Each(func(_ int, s *goquery.Selection) {
		key, _ := s.Attr("data-stat")
		if value, ok := values[key]; ok {
			s.SetText(helper.FormatNumber(int64(value), p.locale))
		}
	})
}

func (p *Page) SetVisitorCount(count int64) {
	p.doc.Find(visitorCount).SetText(helper.FormatNumber(count, p.locale))
}

func (p *Page) SetFileCounter(counter attachment.Counter) {
	s := p.doc.Find(fileCounter)
	s.SetText(CounterText(counter))
	s.RemoveClass(counterClasses)
	if class := counter.Severity.Class(); class != "" {
		s.AddClass(class)
	}
}

func (p *Page) AppendAttachment(file attachment.SelectedFile) {
	p.doc.Find(attachmentPreview).AppendHtml(string(AttachmentTile(file)))
}

// RemoveAttachment drops the tile with the given id and reports whether one
// was present.
func (p *Page) RemoveAttachment(id string) bool {
	tiles := p.doc.Find(attachmentPreview).Find(".attachment-item").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("data-file-id")
		return v == id
	})
	if tiles.Length() == 0 {
		return false
	}
	tiles.Remove()
	return true
}

func (p *Page) ClearAttachments() {
	p.doc.Find(attachmentPreview).Empty()
}

func (p *Page) SetYouTubePreview(embed youtube.Embed) {
	p.doc.Find(youtubePreview).ReplaceWithHtml(string(YouTubePreview(embed)))
}

func (p *Page) ClearYouTubePreview() {
	p.doc.Find(youtubePreview).ReplaceWithHtml(string(HiddenYouTubePreview()))
}

// PrependAlert inserts a banner at the top of the first container.
func (p *Page) PrependAlert(message string, severity enum.AlertSeverityEnum) {
	p.doc.Find(alertContainer).First().PrependHtml(string(Alert(message, severity)))
}

func (p *Page) SetCategories(categories []complaint.Category) {
	p.doc.Find(categorySelect).SetHtml(string(CategoryOptions(categories)))
}
