package validation

import (
	"strings"
	"testing"

	"complaint-portal/internal/common/enum"
	types "complaint-portal/internal/common/type"

	"github.com/nalgeon/be"
)

type sample struct {
	Title    string             `json:"title" validate:"notblank,max=10"`
	Video    string             `json:"youtube_link" validate:"videolink"`
	Priority enum.PriorityEnum  `json:"priority" validate:"enum"`
	Award    types.StringToBool `form:"award_points" validate:"stringToBool"`
}

func TestValidate(t *testing.T) {
	be.Err(t, Validate(sample{Title: "ok", Video: "https://youtu.be/dQw4w9WgXcQ", Award: "on"}), nil)

	err := Validate(sample{Title: "   ", Video: "https://example.com", Priority: "urgent!", Award: "maybe"})
	be.Err(t, err, ErrValidation)
	msg := err.Error()
	be.True(t, strings.Contains(msg, "title must not be blank"))
	be.True(t, strings.Contains(msg, "youtube_link must be a YouTube video link"))
	be.True(t, strings.Contains(msg, "priority must be one of the allowed enum values"))
	be.True(t, strings.Contains(msg, "award_points must be a boolean value"))

	err = Validate(sample{Title: "far too long title"})
	be.True(t, strings.Contains(err.Error(), "title must be less than or equal to 10"))
}

func TestSetupRegistersGinEngine(t *testing.T) {
	be.Err(t, Setup(), nil)
	be.Err(t, Setup(), nil)
}
