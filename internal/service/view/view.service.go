package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"complaint-portal/internal/common/enum"
	"complaint-portal/internal/pkg/helper"
	"complaint-portal/internal/pkg/logger"
	attachment "complaint-portal/internal/service/attachment/model"
	complaint "complaint-portal/internal/service/complaint/model"
	"complaint-portal/internal/service/youtube"
)

const (
	DefaultEmptyIcon = "fas fa-inbox"
	loadingText      = "جاري التحميل..."
	retryText        = "إعادة المحاولة"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Assets serves the page script.
func Assets() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		logger.Error.Println("assets", err)
		return http.FS(staticFS)
	}
	return http.FS(sub)
}

var templates = template.Must(template.New("view").Funcs(template.FuncMap{
	"fileSize":    helper.FormatFileSize,
	"counterText": CounterText,
	"formatTime":  helper.FormatTime,
}).ParseFS(templateFS, "templates/*.html"))

func render(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		logger.Error.Println("render", name, err)
		return ""
	}
	return template.HTML(buf.String())
}

// Alert renders a dismissible banner removed by the page after five seconds.
func Alert(message string, severity enum.AlertSeverityEnum) template.HTML {
	return render("alert", struct {
		Class   string
		Message string
	}{severity.Class(), message})
}

func Loading() template.HTML {
	return render("loading", loadingText)
}

// Empty renders the empty state. An empty icon falls back to DefaultEmptyIcon.
func Empty(message, icon string) template.HTML {
	if icon == "" {
		icon = DefaultEmptyIcon
	}
	return render("empty", struct {
		Icon    string
		Message string
	}{icon, message})
}

// Error renders the error state with a reload action.
func Error(message string) template.HTML {
	return render("error", struct {
		Message string
		Action  string
	}{message, retryText})
}

func AttachmentTile(file attachment.SelectedFile) template.HTML {
	return render("attachment", file)
}

func CounterText(counter attachment.Counter) string {
	return fmt.Sprintf("%d / %d ملف", counter.Count, counter.Max)
}

func FileCounter(counter attachment.Counter) template.HTML {
	return render("counter", struct {
		Counter   attachment.Counter
		OutOfBand bool
	}{counter, false})
}

// FileCounterOOB renders the counter for an out-of-band swap next to a
// fragment aimed elsewhere.
func FileCounterOOB(counter attachment.Counter) template.HTML {
	return render("counter", struct {
		Counter   attachment.Counter
		OutOfBand bool
	}{counter, true})
}

// AlertsOOB wraps banners so they land at the top of the page container.
func AlertsOOB(alerts ...template.HTML) template.HTML {
	if len(alerts) == 0 {
		return ""
	}
	var joined strings.Builder
	for _, a := range alerts {
		joined.WriteString(string(a))
	}
	return render("alerts-oob", template.HTML(joined.String()))
}

func CharCounter(length, limit int) template.HTML {
	return render("char-counter", struct {
		Length   int
		Max      int
		Severity enum.CounterSeverityEnum
	}{length, limit, helper.CharCounterSeverity(length, limit)})
}

func ComplaintList(items []complaint.Complaint, locale string) template.HTML {
	return render("complaints", struct {
		Items  []complaint.Complaint
		Locale string
	}{items, locale})
}

func YouTubePreview(embed youtube.Embed) template.HTML {
	return render("youtube", embed)
}

func HiddenYouTubePreview() template.HTML {
	return render("youtube-hidden", nil)
}

func CategoryOptions(categories []complaint.Category) template.HTML {
	return render("categories", categories)
}

type PageData struct {
	Lang             string
	Dir              string
	Title            string
	CSRFToken        string
	MaxContentLength int
	VisitorSeconds   int
	ConfirmText      string
	SubmitText       string
	DropText         string
}

// DefaultPageData fills the page chrome for locale.
func DefaultPageData(locale, csrfToken string) PageData {
	data := PageData{
		Lang:             "en",
		Dir:              "ltr",
		Title:            "Complaints",
		CSRFToken:        csrfToken,
		MaxContentLength: complaint.MaxContentLength,
		VisitorSeconds:   30,
		ConfirmText:      "Submit this complaint?",
		SubmitText:       "Submit",
		DropText:         "Drop files here or click to choose",
	}
	if helper.IsArabicLocale(locale) {
		data.Lang, data.Dir = "ar", "rtl"
		data.Title = "الشكاوى"
		data.ConfirmText = "هل تريد إرسال الشكوى؟"
		data.SubmitText = "إرسال الشكوى"
		data.DropText = "اسحب الملفات هنا أو انقر للاختيار"
	}
	return data
}

func PageSkeleton(data PageData) template.HTML {
	return render("page", data)
}
