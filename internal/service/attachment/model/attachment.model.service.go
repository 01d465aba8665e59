package model

import (
	"slices"

	"complaint-portal/internal/common/enum"
)

type SelectedFile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
	Content  []byte `json:"content"`
}

// Kind classifies the file for its preview icon.
func (f SelectedFile) Kind() enum.FileKindEnum {
	return enum.FileKindOf(f.MimeType)
}

type Limits struct {
	MaxFiles     int      `json:"maxFiles" validate:"gt=0"`
	MaxFileSize  int64    `json:"maxFileSize" validate:"gt=0"`
	AllowedTypes []string `json:"allowedTypes" validate:"required,min=1"`
}

func (l Limits) IsValidFileType(mimeType string) bool {
	return slices.Contains(l.AllowedTypes, mimeType)
}

func (l Limits) IsValidFileSize(size int64) bool {
	return size <= l.MaxFileSize
}

type Rejection struct {
	Name     string                 `json:"name"`
	Err      error                  `json:"-"`
	Message  string                 `json:"message"`
	Severity enum.AlertSeverityEnum `json:"severity"`
}

type Counter struct {
	Count    int                      `json:"count"`
	Max      int                      `json:"max"`
	Severity enum.CounterSeverityEnum `json:"severity"`
}

type AddResult struct {
	Accepted []SelectedFile `json:"accepted"`
	Rejected []Rejection    `json:"rejected"`
	Counter  Counter        `json:"counter"`
}
