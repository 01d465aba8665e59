package model

import (
	"net/url"
	"strconv"

	"complaint-portal/internal/common/enum"
	_type "complaint-portal/internal/common/type"
)

const MaxContentLength = 5000

type ComplaintForm struct {
	Title       string            `json:"title" form:"title" validate:"notblank,max=200"`
	Content     string            `json:"content" form:"content" validate:"notblank,max=5000"`
	YoutubeLink string            `json:"youtube_link" form:"youtube_link" validate:"videolink"`
	Priority    enum.PriorityEnum `json:"priority" form:"priority" validate:"enum"`
	Category    string            `json:"category" form:"category" validate:"omitempty,number"`
}

// Fields returns the non-empty fields in wire form.
func (f ComplaintForm) Fields() map[string]string {
	return nonEmpty(map[string]string{
		"title":        f.Title,
		"content":      f.Content,
		"youtube_link": f.YoutubeLink,
		"priority":     f.Priority.ToString(),
		"category":     f.Category,
	})
}

type UpdateForm struct {
	Status                     enum.ComplaintStatusEnum `json:"status" form:"status" validate:"enum"`
	Priority                   enum.PriorityEnum        `json:"priority" form:"priority" validate:"enum"`
	AssignedRepresentativeID   string                   `json:"assigned_representative_id" form:"assigned_representative_id" validate:"omitempty,number"`
	AssignedRepresentativeName string                   `json:"assigned_representative_name" form:"assigned_representative_name" validate:"max=255"`
	AdminResponse              string                   `json:"admin_response" form:"admin_response" validate:"max=2000"`
	RepresentativeResponse     string                   `json:"representative_response" form:"representative_response" validate:"max=2000"`
	Resolution                 string                   `json:"resolution" form:"resolution" validate:"max=2000"`
	ThankYouMessage            string                   `json:"thank_you_message" form:"thank_you_message" validate:"max=500"`
}

func (f UpdateForm) Values() url.Values {
	return toValues(map[string]string{
		"status":                       f.Status.ToString(),
		"priority":                     f.Priority.ToString(),
		"assigned_representative_id":   f.AssignedRepresentativeID,
		"assigned_representative_name": f.AssignedRepresentativeName,
		"admin_response":               f.AdminResponse,
		"representative_response":      f.RepresentativeResponse,
		"resolution":                   f.Resolution,
		"thank_you_message":            f.ThankYouMessage,
	})
}

type AssignForm struct {
	RepresentativeID   int    `json:"representative_id" form:"representative_id" validate:"gt=0"`
	RepresentativeName string `json:"representative_name" form:"representative_name" validate:"notblank,max=255"`
	Notes              string `json:"notes" form:"notes" validate:"max=500"`
}

func (f AssignForm) Values() url.Values {
	return toValues(map[string]string{
		"representative_id":   strconv.Itoa(f.RepresentativeID),
		"representative_name": f.RepresentativeName,
		"notes":               f.Notes,
	})
}

type ReasonForm struct {
	Reason string `json:"reason" form:"reason" validate:"max=2000"`
}

func (f ReasonForm) Values() url.Values {
	return url.Values{"reason": {f.Reason}}
}

type ResponseForm struct {
	ResponseType    enum.ResponseTypeEnum `json:"response_type" form:"response_type" validate:"required,enum"`
	ResponseText    string                `json:"response_text" form:"response_text" validate:"notblank,min=10,max=2000"`
	Resolution      string                `json:"resolution" form:"resolution" validate:"max=2000"`
	ThankYouMessage string                `json:"thank_you_message" form:"thank_you_message" validate:"max=500"`
	AwardPoints     _type.StringToBool    `json:"award_points" form:"award_points" validate:"stringToBool"`
}

func (f ResponseForm) Values() url.Values {
	values := toValues(map[string]string{
		"response_type":     f.ResponseType.ToString(),
		"response_text":     f.ResponseText,
		"resolution":        f.Resolution,
		"thank_you_message": f.ThankYouMessage,
	})
	values.Set("award_points", strconv.FormatBool(f.AwardPoints.ToBool()))
	return values
}

type ExportRequest struct {
	Format             enum.ExportFormatEnum      `json:"format" form:"format" validate:"enum"`
	DateFrom           string                     `json:"date_from" form:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo             string                     `json:"date_to" form:"date_to" validate:"omitempty,datetime=2006-01-02"`
	Status             []enum.ComplaintStatusEnum `json:"status" form:"status" validate:"dive,enum"`
	Category           string                     `json:"category" form:"category" validate:"omitempty,number"`
	IncludeAttachments _type.StringToBool         `json:"include_attachments" form:"include_attachments" validate:"stringToBool"`
}

// Values defaults the format to zip and attachments to included.
func (r ExportRequest) Values() url.Values {
	format := r.Format
	if format == "" {
		format = enum.ZIP
	}
	values := toValues(map[string]string{
		"format":    format.ToString(),
		"date_from": r.DateFrom,
		"date_to":   r.DateTo,
		"category":  r.Category,
	})
	for _, s := range r.Status {
		values.Add("status", s.ToString())
	}
	include := true
	if r.IncludeAttachments != "" {
		include = r.IncludeAttachments.ToBool()
	}
	values.Set("include_attachments", strconv.FormatBool(include))
	return values
}

// FilterSet maps list query parameters to values. Empty values are dropped
// when the request is built.
type FilterSet map[string]string

func nonEmpty(fields map[string]string) map[string]string {
	for key, value := range fields {
		if value == "" {
			delete(fields, key)
		}
	}
	return fields
}

func toValues(fields map[string]string) url.Values {
	values := url.Values{}
	for key, value := range nonEmpty(fields) {
		values.Set(key, value)
	}
	return values
}
