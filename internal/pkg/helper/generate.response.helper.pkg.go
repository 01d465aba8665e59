package helper

import (
	"net/http"

	_type "complaint-portal/internal/common/type"
)

func ParseResponse(r *_type.Response) *_type.Response {
	if r.Code < 200 || r.Code >= 599 {
		r.Code = http.StatusInternalServerError
	}
	if r.Message == "" {
		generateMessage(r)
	}
	return r
}

func generateMessage(r *_type.Response) {
	switch r.Code {
	case http.StatusOK:
		r.Message = "Success"
	case http.StatusCreated:
		r.Message = "Created"
	case http.StatusBadRequest:
		r.Message = "Bad Request"
	case http.StatusUnauthorized:
		r.Message = "Unauthorized"
	case http.StatusForbidden:
		r.Message = "Forbidden"
	case http.StatusNotFound:
		r.Message = "Not Found"
	case http.StatusMethodNotAllowed:
		r.Message = "Method Not Allowed"
	case http.StatusConflict:
		r.Message = "Conflict"
	case http.StatusRequestEntityTooLarge:
		r.Message = "Request Entity Too Large"
	case http.StatusUnsupportedMediaType:
		r.Message = "Unsupported Media Type"
	case http.StatusUnprocessableEntity:
		r.Message = "Unprocessable Entity"
	case http.StatusInternalServerError:
		r.Message = "Internal Server Error"
	case http.StatusBadGateway:
		r.Message = "Bad Gateway"
	case http.StatusServiceUnavailable:
		r.Message = "Service Unavailable"
	default:
		r.Message = http.StatusText(r.Code)
	}
}
