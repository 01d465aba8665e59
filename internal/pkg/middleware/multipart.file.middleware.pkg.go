package middleware

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	_type "complaint-portal/internal/common/type"
	"complaint-portal/internal/pkg/helper"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

// FieldOpts bounds how many parts a field may carry. Max 0 means no limit.
// Parts larger than MaxSize are kept without content so the consumer can
// reject them by size.
type FieldOpts struct {
	Name    string
	Max     int
	Min     int
	MaxSize int64
}

const BufferedFilesKey = "bufferedFiles"

// MultipartFormMiddleware buffers the named file fields into
// _type.BufferedFiles under BufferedFilesKey. Content type checks are left
// to the consumer; a missing or generic declared type is sniffed.
func MultipartFormMiddleware(fields []FieldOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		send := Send(c)

		form, err := c.MultipartForm()
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			send(helper.ParseResponse(&_type.Response{
				Code:    http.StatusRequestEntityTooLarge,
				Message: "Request body exceeds " + helper.FormatFileSize(tooLarge.Limit),
				Error:   err,
			}))
			return
		}
		if err != nil {
			send(helper.ParseResponse(&_type.Response{
				Code:    http.StatusBadRequest,
				Message: "Failed retrieving files",
				Error:   err,
			}))
			return
		}

		bufferedFiles := make(_type.BufferedFiles)

		for _, field := range fields {
			for _, fileHeader := range form.File[field.Name] {
				bufferedFile, err := bufferFile(field.Name, fileHeader, field.MaxSize)
				if err != nil {
					send(helper.ParseResponse(&_type.Response{
						Code:    http.StatusInternalServerError,
						Message: "Failed reading file",
						Error:   err,
					}))
					return
				}
				bufferedFiles[field.Name] = append(bufferedFiles[field.Name], bufferedFile)
			}
		}

		for _, field := range fields {
			if len(bufferedFiles[field.Name]) < field.Min {
				send(helper.ParseResponse(&_type.Response{
					Code:    http.StatusBadRequest,
					Message: "Minimum " + field.Name + " is " + strconv.Itoa(field.Min),
				}))
				return
			}
			if field.Max > 0 && len(bufferedFiles[field.Name]) > field.Max {
				send(helper.ParseResponse(&_type.Response{
					Code:    http.StatusBadRequest,
					Message: "Maximum " + field.Name + " is " + strconv.Itoa(field.Max),
				}))
				return
			}
		}

		c.Set(BufferedFilesKey, bufferedFiles)
		c.Next()
	}
}

func bufferFile(fieldName string, fileHeader *multipart.FileHeader, maxSize int64) (_type.BufferedFile, error) {
	if maxSize > 0 && fileHeader.Size > maxSize {
		return _type.BufferedFile{
			FieldName:    fieldName,
			OriginalName: fileHeader.Filename,
			MimeType:     declaredOrSniffed(fileHeader.Header.Get("Content-Type"), nil),
			Size:         fileHeader.Size,
		}, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return _type.BufferedFile{}, err
	}
	defer file.Close()

	buffer, err := io.ReadAll(file)
	if err != nil {
		return _type.BufferedFile{}, err
	}

	return _type.BufferedFile{
		FieldName:    fieldName,
		OriginalName: fileHeader.Filename,
		MimeType:     declaredOrSniffed(fileHeader.Header.Get("Content-Type"), buffer),
		Size:         fileHeader.Size,
		Buffer:       buffer,
	}, nil
}

func declaredOrSniffed(declared string, content []byte) string {
	declared = strings.TrimSpace(strings.SplitN(declared, ";", 2)[0])
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return strings.SplitN(mimetype.Detect(content).String(), ";", 2)[0]
}

// BufferedFilesFrom returns the files buffered by MultipartFormMiddleware.
func BufferedFilesFrom(c *gin.Context, field string) []_type.BufferedFile {
	files, _ := c.Value(BufferedFilesKey).(_type.BufferedFiles)
	return files[field]
}
