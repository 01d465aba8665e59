package enum

type ComplaintStatusEnum string

const (
	PENDING  ComplaintStatusEnum = "pending"
	ASSIGNED ComplaintStatusEnum = "assigned"
	ACCEPTED ComplaintStatusEnum = "accepted"
	REJECTED ComplaintStatusEnum = "rejected"
	ON_HOLD  ComplaintStatusEnum = "on_hold"
	RESOLVED ComplaintStatusEnum = "resolved"
	CLOSED   ComplaintStatusEnum = "closed"
)

func (e ComplaintStatusEnum) ToString() string {
	return string(e)
}

func (e ComplaintStatusEnum) IsValid() bool {
	switch e {
	case PENDING, ASSIGNED, ACCEPTED, REJECTED, ON_HOLD, RESOLVED, CLOSED:
		return true
	}
	return false
}

type PriorityEnum string

const (
	LOW    PriorityEnum = "low"
	MEDIUM PriorityEnum = "medium"
	HIGH   PriorityEnum = "high"
	URGENT PriorityEnum = "urgent"
)

func (e PriorityEnum) ToString() string {
	return string(e)
}

func (e PriorityEnum) IsValid() bool {
	switch e {
	case LOW, MEDIUM, HIGH, URGENT:
		return true
	}
	return false
}

type ResponseTypeEnum string

const (
	ADMIN          ResponseTypeEnum = "admin"
	REPRESENTATIVE ResponseTypeEnum = "representative"
)

func (e ResponseTypeEnum) ToString() string {
	return string(e)
}

func (e ResponseTypeEnum) IsValid() bool {
	return e == ADMIN || e == REPRESENTATIVE
}

type ExportFormatEnum string

const (
	ZIP   ExportFormatEnum = "zip"
	EXCEL ExportFormatEnum = "excel"
	XPDF  ExportFormatEnum = "pdf"
)

func (e ExportFormatEnum) ToString() string {
	return string(e)
}

func (e ExportFormatEnum) IsValid() bool {
	switch e {
	case ZIP, EXCEL, XPDF:
		return true
	}
	return false
}

// LifecycleEventEnum names the events published after a successful write.
type LifecycleEventEnum string

const (
	SUBMITTED LifecycleEventEnum = "submitted"
	UPDATED   LifecycleEventEnum = "updated"
	ASSIGN    LifecycleEventEnum = "assigned"
	ACCEPT    LifecycleEventEnum = "accepted"
	REJECT    LifecycleEventEnum = "rejected"
	HOLD      LifecycleEventEnum = "on_hold"
	RESPONDED LifecycleEventEnum = "response_added"
	EXPORTED  LifecycleEventEnum = "exported"
)

func (e LifecycleEventEnum) ToString() string {
	return string(e)
}

func (e LifecycleEventEnum) IsValid() bool {
	switch e {
	case SUBMITTED, UPDATED, ASSIGN, ACCEPT, REJECT, HOLD, RESPONDED, EXPORTED:
		return true
	}
	return false
}
