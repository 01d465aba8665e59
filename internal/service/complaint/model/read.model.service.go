package model

import (
	"encoding/json"
	"time"

	"complaint-portal/internal/common/enum"
)

type Complaint struct {
	ID                         string                   `json:"id"`
	Title                      string                   `json:"title"`
	Status                     enum.ComplaintStatusEnum `json:"status"`
	StatusDisplay              string                   `json:"status_display"`
	Priority                   enum.PriorityEnum        `json:"priority"`
	PriorityDisplay            string                   `json:"priority_display"`
	CitizenID                  int                      `json:"citizen_id"`
	CitizenName                string                   `json:"citizen_name"`
	AssignedRepresentativeID   *int                     `json:"assigned_representative_id"`
	AssignedRepresentativeName string                   `json:"assigned_representative_name"`
	ReferenceNumber            string                   `json:"reference_number"`
	CategoryName               string                   `json:"category_name"`
	AttachmentsCount           int                      `json:"attachments_count"`
	DaysSinceCreated           int                      `json:"days_since_created"`
	IsOverdue                  bool                     `json:"is_overdue"`
	CreatedAt                  time.Time                `json:"created_at"`
	UpdatedAt                  time.Time                `json:"updated_at"`
	ResolvedAt                 *time.Time               `json:"resolved_at"`
}

type Attachment struct {
	ID           int       `json:"id"`
	File         string    `json:"file"`
	FileType     string    `json:"file_type"`
	OriginalName string    `json:"original_name"`
	FileSize     int64     `json:"file_size"`
	UploadedAt   time.Time `json:"uploaded_at"`
	Description  string    `json:"description"`
}

type HistoryEntry struct {
	ID              int             `json:"id"`
	Action          string          `json:"action"`
	ActionDisplay   string          `json:"action_display"`
	Description     string          `json:"description"`
	PerformedByID   int             `json:"performed_by_id"`
	PerformedByName string          `json:"performed_by_name"`
	PerformedAt     time.Time       `json:"performed_at"`
	AdditionalData  json.RawMessage `json:"additional_data,omitempty"`
}

type ComplaintDetail struct {
	Complaint
	Content                string         `json:"content"`
	YoutubeLink            string         `json:"youtube_link"`
	CitizenEmail           string         `json:"citizen_email"`
	AssignedAt             *time.Time     `json:"assigned_at"`
	AssignedByAdminID      *int           `json:"assigned_by_admin_id"`
	AdminResponse          string         `json:"admin_response"`
	RepresentativeResponse string         `json:"representative_response"`
	Resolution             string         `json:"resolution"`
	HoldUntil              *time.Time     `json:"hold_until"`
	IsPublic               bool           `json:"is_public"`
	PointsAwarded          bool           `json:"points_awarded"`
	ThankYouMessage        string         `json:"thank_you_message"`
	Category               *int           `json:"category"`
	Attachments            []Attachment   `json:"attachments"`
	History                []HistoryEntry `json:"history"`
}

type ComplaintPage struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  []Complaint `json:"results"`
}

type Statistics struct {
	Total      int            `json:"total_complaints"`
	Pending    int            `json:"pending_complaints"`
	Assigned   int            `json:"assigned_complaints"`
	Resolved   int            `json:"resolved_complaints"`
	Rejected   int            `json:"rejected_complaints"`
	Overdue    int            `json:"overdue_complaints"`
	ByCategory map[string]int `json:"complaints_by_category"`
	ByPriority map[string]int `json:"complaints_by_priority"`
	Recent     []Complaint    `json:"recent_complaints"`
}

// Values keys the counters the way the page's data-stat attributes do.
func (s Statistics) Values() map[string]int {
	return map[string]int{
		"total_complaints":    s.Total,
		"pending_complaints":  s.Pending,
		"assigned_complaints": s.Assigned,
		"resolved_complaints": s.Resolved,
		"rejected_complaints": s.Rejected,
		"overdue_complaints":  s.Overdue,
	}
}

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	IsActive    bool   `json:"is_active"`
}

// ExportResult references the generated artefact.
type ExportResult struct {
	Message     string `json:"message"`
	FileURL     string `json:"file_url"`
	TaskID      string `json:"task_id"`
	Format      string `json:"format"`
	ContentType string `json:"-"`
	Content     []byte `json:"-"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
