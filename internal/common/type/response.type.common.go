package types

import (
	"html/template"
	"time"
)

// Response is handed to the "send" closure installed by the response
// middleware. A non-empty HTML is written as a fragment instead of the JSON
// envelope.
type Response struct {
	Data    any
	HTML    template.HTML
	Message string
	Code    int
	Error   error
}

type ResponseAPIDebug struct {
	RequestID string    `json:"requestId"`
	Version   string    `json:"version"`
	Error     *string   `json:"error"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	RuntimeMs int64     `json:"runtimeMs"`
}

type ResponseAPI struct {
	Data    any               `json:"data"`
	Message string            `json:"message"`
	Debug   *ResponseAPIDebug `json:"debug,omitempty"`
}
