package view

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"complaint-portal/internal/common/enum"
	attachment "complaint-portal/internal/service/attachment/model"
	complaint "complaint-portal/internal/service/complaint/model"
	"complaint-portal/internal/service/youtube"

	"github.com/PuerkitoBio/goquery"
	"github.com/nalgeon/be"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	be.Err(t, err, nil)
	return doc
}

func TestAlert(t *testing.T) {
	tests := []struct {
		severity enum.AlertSeverityEnum
		want     string
	}{
		{enum.SUCCESS, "alert-success"},
		{enum.ERROR, "alert-danger"},
		{enum.WARNING, "alert-warning"},
		{enum.INFO, "alert-info"},
		{enum.AlertSeverityEnum("other"), "alert-info"},
	}
	for _, tt := range tests {
		t.Run(tt.severity.ToString(), func(t *testing.T) {
			doc := parse(t, string(Alert("Saved", tt.severity)))
			alert := doc.Find(".alert")
			be.True(t, alert.HasClass(tt.want))
			be.True(t, alert.HasClass("alert-dismissible"))
			v, _ := alert.Attr("data-dismiss-after")
			be.Equal(t, v, "5000")
			be.Equal(t, alert.Text(), "Saved")
		})
	}
}

func TestAlertEscapes(t *testing.T) {
	html := string(Alert(`<script>alert(1)</script>`, enum.ERROR))
	be.True(t, !strings.Contains(html, "<script>"))
	be.True(t, strings.Contains(html, "&lt;script&gt;"))
}

func TestStates(t *testing.T) {
	doc := parse(t, string(Loading()))
	be.Equal(t, doc.Find(".loading-container .loading-spinner").Length(), 1)

	doc = parse(t, string(Empty("Nothing here", "")))
	be.True(t, doc.Find("i").HasClass("fa-inbox"))
	be.Equal(t, doc.Find("p").Text(), "Nothing here")

	doc = parse(t, string(Empty("No files", "fas fa-file")))
	be.True(t, doc.Find("i").HasClass("fa-file"))

	doc = parse(t, string(Error("Failed to load")))
	be.Equal(t, doc.Find("p.text-danger").Text(), "Failed to load")
	v, ok := doc.Find("button").Attr("data-refresh")
	be.True(t, ok)
	be.Equal(t, v, "page")
}

func TestAttachmentTile(t *testing.T) {
	tests := []struct {
		mimeType string
		icon     string
	}{
		{enum.MimePNG, "fa-image"},
		{enum.MimePDF, "fa-file-pdf"},
		{enum.MimeDOCX, "fa-file-word"},
		{"text/plain", "fa-file"},
	}
	for _, tt := range tests {
		doc := parse(t, string(AttachmentTile(attachment.SelectedFile{
			ID:       "file-abc",
			Name:     `report "final".pdf`,
			MimeType: tt.mimeType,
			Size:     1536,
		})))
		item := doc.Find(".attachment-item")
		id, _ := item.Attr("data-file-id")
		name, _ := item.Attr("data-file-name")
		be.Equal(t, id, "file-abc")
		be.Equal(t, name, `report "final".pdf`)
		be.True(t, item.Find("i").HasClass(tt.icon))
		be.Equal(t, item.Find("small").Text(), "1.5 KB")
	}
}

func TestFileCounter(t *testing.T) {
	doc := parse(t, string(FileCounter(attachment.Counter{Count: 8, Max: 10, Severity: enum.CounterWarning})))
	counter := doc.Find("#file-counter")
	be.True(t, counter.HasClass("text-warning"))
	be.Equal(t, counter.Text(), "8 / 10 ملف")
}

func TestYouTubePreview(t *testing.T) {
	embed, ok := youtube.Preview("https://youtu.be/dQw4w9WgXcQ")
	be.True(t, ok)

	doc := parse(t, string(YouTubePreview(embed)))
	iframe := doc.Find("#youtube-preview iframe")
	src, _ := iframe.Attr("src")
	width, _ := iframe.Attr("width")
	height, _ := iframe.Attr("height")
	be.Equal(t, src, "https://www.youtube.com/embed/dQw4w9WgXcQ")
	be.Equal(t, width, "100%")
	be.Equal(t, height, "200")

	doc = parse(t, string(HiddenYouTubePreview()))
	be.Equal(t, doc.Find("#youtube-preview iframe").Length(), 0)
	style, _ := doc.Find("#youtube-preview").Attr("style")
	be.True(t, strings.Contains(style, "none"))
}

func TestCategoryOptions(t *testing.T) {
	doc := parse(t, "<select>"+string(CategoryOptions([]complaint.Category{
		{ID: 1, Name: "Roads"},
		{ID: 2, Name: "Water & Power"},
	}))+"</select>")
	options := doc.Find("option")
	be.Equal(t, options.Length(), 3)
	v, _ := options.Eq(0).Attr("value")
	be.Equal(t, v, "")
	v, _ = options.Eq(2).Attr("value")
	be.Equal(t, v, "2")
	be.Equal(t, options.Eq(2).Text(), "Water & Power")
}

func newTestPage(t *testing.T) *Page {
	t.Helper()
	page, err := NewPage(DefaultPageData("en", "tok"), "en")
	be.Err(t, err, nil)
	return page
}

func TestPageSkeleton(t *testing.T) {
	page := newTestPage(t)
	doc := page.Document()

	for _, hook := range []string{"#attachment-preview", "#file-counter", "#youtube-preview", "#visitor-count", "#category", "#complaint-form[hx-confirm]"} {
		be.Equal(t, doc.Find(hook).Length(), 1)
	}
	be.Equal(t, doc.Find(".stat-number[data-stat]").Length(), 6)
	v, _ := doc.Find(`input[name="csrfmiddlewaretoken"]`).Attr("value")
	be.Equal(t, v, "tok")

	arabic := DefaultPageData("ar-EG", "")
	be.Equal(t, arabic.Dir, "rtl")
}

func TestPageUploadWiring(t *testing.T) {
	doc := newTestPage(t).Document()

	form := doc.Find("#complaint-form")
	params, _ := form.Attr("hx-params")
	be.Equal(t, params, "not attachments")
	disinherit, _ := form.Attr("hx-disinherit")
	be.Equal(t, disinherit, "*")

	input := doc.Find(`.file-upload-area input[type="file"][name="attachments"]`)
	be.Equal(t, input.Length(), 1)
	post, _ := input.Attr("hx-post")
	be.Equal(t, post, "/attachments")
	trigger, _ := input.Attr("hx-trigger")
	be.Equal(t, trigger, "change")
	params, _ = input.Attr("hx-params")
	be.Equal(t, params, "attachments")
}

func readScript(t *testing.T) string {
	t.Helper()
	f, err := Assets().Open("portal.js")
	be.Err(t, err, nil)
	defer f.Close()
	raw, err := io.ReadAll(f)
	be.Err(t, err, nil)
	return string(raw)
}

func TestPageLoadsScript(t *testing.T) {
	doc := newTestPage(t).Document()
	scripts := doc.Find("head script")
	be.Equal(t, scripts.Length(), 2)
	src, _ := scripts.Eq(1).Attr("src")
	be.Equal(t, src, "/static/portal.js")
	_, deferred := scripts.Eq(1).Attr("defer")
	be.True(t, deferred)
}

func TestScriptHandlesRenderedHooks(t *testing.T) {
	script := readScript(t)

	alert := parse(t, string(Alert("Saved", enum.SUCCESS)))
	be.Equal(t, alert.Find("[data-dismiss-after]").Length(), 1)
	be.Equal(t, alert.Find(`[data-bs-dismiss="alert"]`).Length(), 1)
	state := parse(t, string(Error("Failed")))
	be.Equal(t, state.Find(`[data-refresh="page"]`).Length(), 1)
	page := newTestPage(t).Document()
	be.Equal(t, page.Find(".file-upload-area").Length(), 1)

	for _, hook := range []string{
		`htmx.onLoad(scheduleDismiss)`,
		`"[data-dismiss-after]"`,
		`'[data-bs-dismiss="alert"]'`,
		`"[data-refresh]"`,
		`location.reload()`,
		`addEventListener("drop"`,
		`addEventListener("dragover"`,
		`".file-upload-area"`,
		`dispatchEvent(new Event("change"`,
	} {
		be.True(t, strings.Contains(script, hook))
	}
}

func TestPageStates(t *testing.T) {
	page := newTestPage(t)

	page.ShowLoading("#complaints-list")
	be.Equal(t, page.Document().Find("#complaints-list .loading-container").Length(), 1)
	page.HideLoading("#complaints-list")
	be.Equal(t, page.Document().Find("#complaints-list .loading-container").Length(), 0)

	page.ShowEmpty("#complaints-list", "No complaints", "")
	be.Equal(t, page.Document().Find("#complaints-list .fa-inbox").Length(), 1)

	page.ShowError("#complaints-list", "Failed")
	be.Equal(t, page.Document().Find("#complaints-list [data-refresh]").Length(), 1)
	be.Equal(t, page.Document().Find("#complaints-list .fa-inbox").Length(), 0)
}

func TestPageStatistics(t *testing.T) {
	page := newTestPage(t)
	page.ApplyStatistics(complaint.Statistics{Total: 1234, Pending: 5}.Values())

	doc := page.Document()
	be.Equal(t, doc.Find(`.stat-number[data-stat="total_complaints"]`).Text(), "1,234")
	be.Equal(t, doc.Find(`.stat-number[data-stat="pending_complaints"]`).Text(), "5")
	be.Equal(t, doc.Find(`.stat-number[data-stat="overdue_complaints"]`).Text(), "0")

	page.SetVisitorCount(15000)
	be.Equal(t, doc.Find("#visitor-count").Text(), "15,000")
}

func TestPageAttachments(t *testing.T) {
	page := newTestPage(t)
	doc := page.Document()

	page.AppendAttachment(attachment.SelectedFile{ID: "file-1", Name: "a.pdf", MimeType: enum.MimePDF})
	page.AppendAttachment(attachment.SelectedFile{ID: "file-2", Name: "b.png", MimeType: enum.MimePNG})
	page.SetFileCounter(attachment.Counter{Count: 2, Max: 2, Severity: enum.CounterDanger})

	be.Equal(t, doc.Find("#attachment-preview .attachment-item").Length(), 2)
	be.True(t, doc.Find("#file-counter").HasClass("text-danger"))
	be.Equal(t, doc.Find("#file-counter").Text(), "2 / 2 ملف")

	be.True(t, page.RemoveAttachment("file-1"))
	be.True(t, !page.RemoveAttachment("file-1"))
	be.Equal(t, doc.Find("#attachment-preview .attachment-item").Length(), 1)

	page.SetFileCounter(attachment.Counter{Count: 1, Max: 2, Severity: enum.CounterSuccess})
	be.True(t, doc.Find("#file-counter").HasClass("text-success"))
	be.True(t, !doc.Find("#file-counter").HasClass("text-danger"))

	page.ClearAttachments()
	be.Equal(t, doc.Find("#attachment-preview .attachment-item").Length(), 0)
}

func TestPageYouTubeAndAlerts(t *testing.T) {
	page := newTestPage(t)
	doc := page.Document()

	embed, _ := youtube.Preview("https://www.youtube.com/embed/dQw4w9WgXcQ")
	page.SetYouTubePreview(embed)
	be.Equal(t, doc.Find("#youtube-preview iframe").Length(), 1)

	page.ClearYouTubePreview()
	be.Equal(t, doc.Find("#youtube-preview").Length(), 1)
	be.Equal(t, doc.Find("#youtube-preview iframe").Length(), 0)

	page.PrependAlert("Welcome", enum.SUCCESS)
	first := doc.Find(".container").Children().First()
	be.True(t, first.HasClass("alert-success"))

	page.SetCategories([]complaint.Category{{ID: 3, Name: "Health"}})
	be.Equal(t, doc.Find("#category option").Length(), 2)

	html, err := page.HTML()
	be.Err(t, err, nil)
	be.True(t, strings.Contains(html, "Health"))
}

func TestVisitorCounter(t *testing.T) {
	v := NewVisitorCounter(100, time.Millisecond)
	for i := 0; i < 50; i++ {
		before := v.Count()
		after := v.Tick()
		be.True(t, after-before >= 1 && after-before <= 10)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	start := v.Count()
	v.Run(ctx)
	be.True(t, v.Count() > start)
}

func TestFileCounterOOB(t *testing.T) {
	doc := parse(t, string(FileCounterOOB(attachment.Counter{Count: 1, Max: 10, Severity: enum.CounterSuccess})))
	v, ok := doc.Find("#file-counter").Attr("hx-swap-oob")
	be.True(t, ok)
	be.Equal(t, v, "true")

	_, ok = parse(t, string(FileCounter(attachment.Counter{Max: 10}))).Find("#file-counter").Attr("hx-swap-oob")
	be.True(t, !ok)
}

func TestAlertsOOB(t *testing.T) {
	be.Equal(t, string(AlertsOOB()), "")

	doc := parse(t, string(AlertsOOB(Alert("one", enum.ERROR), Alert("two", enum.WARNING))))
	be.Equal(t, doc.Find("[hx-swap-oob] .alert").Length(), 2)
}

func TestCharCounter(t *testing.T) {
	tests := []struct {
		length int
		class  string
	}{
		{length: 50, class: ""},
		{length: 81, class: "text-warning"},
		{length: 91, class: "text-danger"},
	}
	for _, tt := range tests {
		doc := parse(t, string(CharCounter(tt.length, 100)))
		class, _ := doc.Find("#char-counter").Attr("class")
		be.Equal(t, class, tt.class)
	}
}

func TestComplaintList(t *testing.T) {
	created := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	doc := parse(t, string(ComplaintList([]complaint.Complaint{
		{ID: "c-1", Title: "Broken <light>", Status: enum.PENDING, StatusDisplay: "Pending", CreatedAt: created, IsOverdue: true},
		{ID: "c-2", Title: "Water", Status: enum.RESOLVED, CreatedAt: created},
	}, "en")))

	items := doc.Find(".complaint-list li")
	be.Equal(t, items.Length(), 2)
	be.Equal(t, items.Eq(0).Find("strong").Text(), "Broken <light>")
	be.Equal(t, items.Eq(0).Find(".badge.status-pending").Text(), "Pending")
	be.Equal(t, items.Eq(1).Find(".badge.status-resolved").Text(), "resolved")
	be.True(t, strings.Contains(items.Eq(0).Find("small").Text(), "March 5, 2024 at 02:30 PM"))
	be.Equal(t, items.Eq(0).Find(".bg-danger").Length(), 1)
}
