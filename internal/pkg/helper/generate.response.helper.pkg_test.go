package helper

import (
	"errors"
	"net/http"
	"testing"

	_type "complaint-portal/internal/common/type"

	"github.com/nalgeon/be"
)

func TestParseResponse(t *testing.T) {
	r := ParseResponse(&_type.Response{Code: http.StatusConflict})
	be.Equal(t, r.Message, "Conflict")

	r = ParseResponse(&_type.Response{Code: 42})
	be.Equal(t, r.Code, http.StatusInternalServerError)
	be.Equal(t, r.Message, "Internal Server Error")

	r = ParseResponse(&_type.Response{Code: http.StatusOK, Message: "kept"})
	be.Equal(t, r.Message, "kept")
}

func TestHandleAppError(t *testing.T) {
	be.Err(t, HandleAppError(nil, "fn", "step", true), nil)

	cause := errors.New("boom")
	be.Err(t, HandleAppError(cause, "fn", "step", false), nil)

	err := HandleAppError(cause, "fn", "step", true)
	be.Err(t, err, cause)
	be.Equal(t, err.Error(), "fn: step: boom")
}

func TestJSONToStruct(t *testing.T) {
	var out struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	}
	be.Err(t, JSONToStruct(map[string]any{"id": 3, "title": "x"}, &out), nil)
	be.Equal(t, out.ID, 3)
	be.Equal(t, out.Title, "x")

	be.Err(t, JSONToStruct([]byte(`{"id": 4}`), &out), nil)
	be.Equal(t, out.ID, 4)
}
