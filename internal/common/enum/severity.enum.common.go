package enum

type AlertSeverityEnum string

const (
	SUCCESS AlertSeverityEnum = "success"
	ERROR   AlertSeverityEnum = "error"
	WARNING AlertSeverityEnum = "warning"
	INFO    AlertSeverityEnum = "info"
)

func (e AlertSeverityEnum) ToString() string {
	return string(e)
}

func (e AlertSeverityEnum) IsValid() bool {
	switch e {
	case SUCCESS, ERROR, WARNING, INFO:
		return true
	}
	return false
}

// Class returns the bootstrap alert class. Unknown values fall back to info.
func (e AlertSeverityEnum) Class() string {
	switch e {
	case SUCCESS:
		return "alert-success"
	case ERROR:
		return "alert-danger"
	case WARNING:
		return "alert-warning"
	}
	return "alert-info"
}

type CounterSeverityEnum string

const (
	CounterNone    CounterSeverityEnum = ""
	CounterSuccess CounterSeverityEnum = "success"
	CounterWarning CounterSeverityEnum = "warning"
	CounterDanger  CounterSeverityEnum = "danger"
)

func (e CounterSeverityEnum) ToString() string {
	return string(e)
}

func (e CounterSeverityEnum) IsValid() bool {
	switch e {
	case CounterNone, CounterSuccess, CounterWarning, CounterDanger:
		return true
	}
	return false
}

// Class returns the text colour class, empty for CounterNone.
func (e CounterSeverityEnum) Class() string {
	if e == CounterNone {
		return ""
	}
	return "text-" + string(e)
}
