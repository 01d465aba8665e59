package attachment

import (
	"strings"
	"testing"

	"complaint-portal/internal/common/enum"
	_type "complaint-portal/internal/common/type"
	"complaint-portal/internal/service/attachment/model"

	"github.com/nalgeon/be"
)

func candidate(name, mimeType string, size int64) _type.BufferedFile {
	return _type.BufferedFile{
		FieldName:    "attachments",
		OriginalName: name,
		MimeType:     mimeType,
		Size:         size,
		Buffer:       []byte(name),
	}
}

func smallLimits(maxFiles int) model.Limits {
	limits := DefaultLimits()
	limits.MaxFiles = maxFiles
	return limits
}

func TestLimits(t *testing.T) {
	limits := DefaultLimits()

	be.True(t, limits.IsValidFileType(enum.MimePDF))
	be.True(t, limits.IsValidFileType(enum.MimeDOCX))
	be.True(t, !limits.IsValidFileType("application/zip"))

	be.True(t, limits.IsValidFileSize(10*1024*1024))
	be.True(t, !limits.IsValidFileSize(10*1024*1024+1))
}

func TestSessionAdd(t *testing.T) {
	t.Run("accepts_valid_files", func(t *testing.T) {
		s := NewSession(DefaultLimits())
		res := s.Add([]_type.BufferedFile{
			candidate("a.pdf", enum.MimePDF, 100),
			candidate("b.png", enum.MimePNG, 200),
		})

		be.Equal(t, len(res.Accepted), 2)
		be.Equal(t, len(res.Rejected), 0)
		be.Equal(t, res.Counter.Count, 2)
		be.True(t, strings.HasPrefix(res.Accepted[0].ID, "file-"))
		be.True(t, res.Accepted[0].ID != res.Accepted[1].ID)

		files := s.Files()
		be.Equal(t, files[0].Name, "a.pdf")
		be.Equal(t, files[1].Name, "b.png")
	})

	t.Run("rejects_duplicate_name", func(t *testing.T) {
		s := NewSession(DefaultLimits())
		s.Add([]_type.BufferedFile{candidate("a.pdf", enum.MimePDF, 100)})

		res := s.Add([]_type.BufferedFile{candidate("a.pdf", enum.MimePDF, 999)})
		be.Equal(t, len(res.Accepted), 0)
		be.Equal(t, len(res.Rejected), 1)
		be.Err(t, res.Rejected[0].Err, ErrDuplicateName)
		be.Equal(t, res.Rejected[0].Severity, enum.WARNING)
		be.True(t, strings.Contains(res.Rejected[0].Message, "a.pdf"))
		be.Equal(t, len(s.Files()), 1)
	})

	t.Run("rejects_type_and_size", func(t *testing.T) {
		s := NewSession(DefaultLimits())
		res := s.Add([]_type.BufferedFile{
			candidate("a.zip", "application/zip", 100),
			candidate("b.pdf", enum.MimePDF, 11*1024*1024),
		})

		be.Equal(t, len(res.Rejected), 2)
		be.Err(t, res.Rejected[0].Err, ErrUnsupportedType)
		be.Equal(t, res.Rejected[0].Severity, enum.ERROR)
		be.Err(t, res.Rejected[1].Err, ErrFileTooLarge)
		be.Equal(t, res.Rejected[1].Severity, enum.ERROR)
		be.Equal(t, len(s.Files()), 0)
	})

	t.Run("never_exceeds_cap", func(t *testing.T) {
		s := NewSession(smallLimits(2))
		res := s.Add([]_type.BufferedFile{
			candidate("1.pdf", enum.MimePDF, 1),
			candidate("2.pdf", enum.MimePDF, 1),
			candidate("3.pdf", enum.MimePDF, 1),
		})

		be.Equal(t, len(res.Accepted), 2)
		be.Equal(t, len(res.Rejected), 1)
		be.Err(t, res.Rejected[0].Err, ErrLimitReached)
		be.Equal(t, len(s.Files()), 2)
	})
}

func TestSessionValidate(t *testing.T) {
	s := NewSession(DefaultLimits())
	be.Err(t, s.Validate(candidate("a.pdf", enum.MimePDF, 1)), nil)
	be.Err(t, s.Validate(candidate("a.exe", "application/x-msdownload", 1)), ErrUnsupportedType)
}

func TestSessionRemove(t *testing.T) {
	s := NewSession(DefaultLimits())
	res := s.Add([]_type.BufferedFile{
		candidate("a.pdf", enum.MimePDF, 1),
		candidate("b.pdf", enum.MimePDF, 1),
	})

	be.True(t, s.Remove(res.Accepted[0].ID))
	be.Equal(t, s.Counter().Count, 1)
	be.Equal(t, s.Files()[0].Name, "b.pdf")

	be.True(t, !s.Remove(res.Accepted[0].ID))
	be.True(t, !s.Remove("file-unknown"))
	be.Equal(t, s.Counter().Count, 1)
}

func TestSessionRemoveUnnamed(t *testing.T) {
	s := NewSession(DefaultLimits(),
		model.SelectedFile{ID: "file-x", Name: ""},
		model.SelectedFile{ID: "file-y", Name: "b.pdf"},
	)

	be.True(t, s.Remove("file-x"))
	be.Equal(t, len(s.Files()), 1)
	be.Equal(t, s.Files()[0].ID, "file-y")
	be.True(t, !s.Remove("file-x"))
}

func TestSessionCounter(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  enum.CounterSeverityEnum
	}{
		{name: "empty", count: 0, want: enum.CounterSuccess},
		{name: "below_80_percent", count: 7, want: enum.CounterSuccess},
		{name: "at_80_percent", count: 8, want: enum.CounterWarning},
		{name: "below_cap", count: 9, want: enum.CounterWarning},
		{name: "at_cap", count: 10, want: enum.CounterDanger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(smallLimits(10))
			for i := 0; i < tt.count; i++ {
				s.Add([]_type.BufferedFile{candidate(string(rune('a'+i))+".pdf", enum.MimePDF, 1)})
			}
			got := s.Counter()
			be.Equal(t, got.Count, tt.count)
			be.Equal(t, got.Max, 10)
			be.Equal(t, got.Severity, tt.want)
		})
	}
}

func TestSessionClear(t *testing.T) {
	s := NewSession(DefaultLimits())
	s.Add([]_type.BufferedFile{candidate("a.pdf", enum.MimePDF, 1)})
	s.Clear()

	be.Equal(t, len(s.Files()), 0)
	be.Equal(t, s.Counter().Severity, enum.CounterSuccess)
}

func TestSessionBufferedFiles(t *testing.T) {
	s := NewSession(DefaultLimits())
	s.Add([]_type.BufferedFile{candidate("a.pdf", enum.MimePDF, 5)})

	parts := s.BufferedFiles("attachments")
	be.Equal(t, len(parts), 1)
	be.Equal(t, parts[0].FieldName, "attachments")
	be.Equal(t, parts[0].OriginalName, "a.pdf")
	be.Equal(t, string(parts[0].Buffer), "a.pdf")
}
