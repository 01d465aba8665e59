package enum

import "strings"

const (
	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
	MimeGIF  = "image/gif"
	MimePDF  = "application/pdf"
	MimeDOC  = "application/msword"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// AllowedAttachmentTypes is the default upload allow-list.
var AllowedAttachmentTypes = []string{MimeJPEG, MimePNG, MimeGIF, MimePDF, MimeDOC, MimeDOCX}

type FileKindEnum string

const (
	IMAGE FileKindEnum = "image"
	PDF   FileKindEnum = "pdf"
	WORD  FileKindEnum = "word"
	FILE  FileKindEnum = "file"
)

func (e FileKindEnum) ToString() string {
	return string(e)
}

func (e FileKindEnum) IsValid() bool {
	switch e {
	case IMAGE, PDF, WORD, FILE:
		return true
	}
	return false
}

// FileKindOf classifies a MIME type for preview purposes.
func FileKindOf(mimeType string) FileKindEnum {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return IMAGE
	case mimeType == MimePDF:
		return PDF
	case strings.Contains(mimeType, "word"):
		return WORD
	}
	return FILE
}

// Icon returns the Font Awesome classes used on preview tiles.
func (e FileKindEnum) Icon() string {
	switch e {
	case IMAGE:
		return "fas fa-image text-primary"
	case PDF:
		return "fas fa-file-pdf text-danger"
	case WORD:
		return "fas fa-file-word text-primary"
	}
	return "fas fa-file text-secondary"
}
