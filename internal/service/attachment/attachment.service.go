package attachment

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"complaint-portal/internal/common/enum"
	_type "complaint-portal/internal/common/type"
	"complaint-portal/internal/pkg/config"
	"complaint-portal/internal/pkg/helper"
	"complaint-portal/internal/service/attachment/model"
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file is too large")
	ErrDuplicateName   = errors.New("file already selected")
	ErrLimitReached    = errors.New("attachment limit reached")
)

var rejectionMessages = map[error]string{
	ErrUnsupportedType: "نوع الملف غير مدعوم: %s",
	ErrFileTooLarge:    "حجم الملف كبير جداً: %s",
	ErrDuplicateName:   "الملف موجود بالفعل: %s",
	ErrLimitReached:    "تم الوصول إلى الحد الأقصى للملفات: %s",
}

func DefaultLimits() model.Limits {
	return model.Limits{
		MaxFiles:     config.DefaultMaxAttachments,
		MaxFileSize:  config.DefaultMaxFileSize,
		AllowedTypes: slices.Clone(enum.AllowedAttachmentTypes),
	}
}

func LimitsFrom(settings *config.Settings) model.Limits {
	return model.Limits{
		MaxFiles:     settings.Attachments.MaxFiles,
		MaxFileSize:  settings.Attachments.MaxFileSize,
		AllowedTypes: settings.Attachments.AllowedTypes,
	}
}

// Session is the ordered attachment list of one complaint form.
type Session struct {
	mu     sync.Mutex
	limits model.Limits
	files  []model.SelectedFile
}

type ISession interface {
	Add(candidates []_type.BufferedFile) model.AddResult
	Validate(candidate _type.BufferedFile) error
	Remove(id string) bool
	Counter() model.Counter
	Clear()
	Files() []model.SelectedFile
	Limits() model.Limits
}

func NewSession(limits model.Limits, files ...model.SelectedFile) *Session {
	return &Session{limits: limits, files: cloneFiles(files)}
}

func cloneFiles(files []model.SelectedFile) []model.SelectedFile {
	if len(files) == 0 {
		return nil
	}
	return append([]model.SelectedFile(nil), files...)
}

// Add appends every valid candidate while capacity remains. Candidates past
// the cap are reported with ErrLimitReached.
func (s *Session) Add(candidates []_type.BufferedFile) model.AddResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result model.AddResult
	for _, candidate := range candidates {
		if len(s.files) >= s.limits.MaxFiles {
			result.Rejected = append(result.Rejected, rejection(candidate.OriginalName, ErrLimitReached))
			continue
		}
		if err := s.validate(candidate); err != nil {
			result.Rejected = append(result.Rejected, rejection(candidate.OriginalName, err))
			continue
		}

		id, err := helper.GenerateFileID()
		if err != nil {
			result.Rejected = append(result.Rejected, rejection(candidate.OriginalName, err))
			continue
		}
		file := model.SelectedFile{
			ID:       id,
			Name:     candidate.OriginalName,
			MimeType: candidate.MimeType,
			Size:     candidate.Size,
			Content:  candidate.Buffer,
		}
		s.files = append(s.files, file)
		result.Accepted = append(result.Accepted, file)
	}
	result.Counter = s.counter()
	return result
}

func rejection(name string, err error) model.Rejection {
	r := model.Rejection{Name: name, Err: err, Severity: enum.ERROR}
	if errors.Is(err, ErrDuplicateName) || errors.Is(err, ErrLimitReached) {
		r.Severity = enum.WARNING
	}
	r.Message = err.Error()
	for sentinel, format := range rejectionMessages {
		if errors.Is(err, sentinel) {
			r.Message = fmt.Sprintf(format, name)
			break
		}
	}
	return r
}

// Validate checks a candidate against the type allow-list, the size ceiling
// and the names already selected.
func (s *Session) Validate(candidate _type.BufferedFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validate(candidate)
}

func (s *Session) validate(candidate _type.BufferedFile) error {
	if !s.limits.IsValidFileType(candidate.MimeType) {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, candidate.MimeType)
	}
	if !s.limits.IsValidFileSize(candidate.Size) {
		return fmt.Errorf("%w: %s", ErrFileTooLarge, helper.FormatFileSize(candidate.Size))
	}
	for _, f := range s.files {
		if f.Name == candidate.OriginalName {
			return ErrDuplicateName
		}
	}
	return nil
}

// Remove looks the entry up by id and drops the entry carrying its name.
func (s *Session) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, found := "", false
	for _, f := range s.files {
		if f.ID == id {
			name, found = f.Name, true
			break
		}
	}
	if !found {
		return false
	}

	kept := s.files[:0]
	for _, f := range s.files {
		if f.Name != name {
			kept = append(kept, f)
		}
	}
	s.files = kept
	return true
}

func (s *Session) Counter() model.Counter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counter()
}

func (s *Session) counter() model.Counter {
	count, limit := len(s.files), s.limits.MaxFiles
	severity := enum.CounterSuccess
	switch {
	case count >= limit:
		severity = enum.CounterDanger
	case float64(count) >= float64(limit)*0.8:
		severity = enum.CounterWarning
	}
	return model.Counter{Count: count, Max: limit, Severity: severity}
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = nil
}

// Files returns a copy of the selection in insertion order.
func (s *Session) Files() []model.SelectedFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneFiles(s.files)
}

func (s *Session) Limits() model.Limits {
	return s.limits
}

// BufferedFiles converts the selection into multipart file parts.
func (s *Session) BufferedFiles(field string) []_type.BufferedFile {
	files := s.Files()
	parts := make([]_type.BufferedFile, 0, len(files))
	for _, f := range files {
		parts = append(parts, _type.BufferedFile{
			FieldName:    field,
			OriginalName: f.Name,
			MimeType:     f.MimeType,
			Size:         f.Size,
			Buffer:       f.Content,
		})
	}
	return parts
}
