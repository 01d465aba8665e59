package helper

import "complaint-portal/internal/common/enum"

// CharCounterSeverity grades a textarea length against its maxlength.
func CharCounterSeverity(length, limit int) enum.CounterSeverityEnum {
	if limit <= 0 {
		return enum.CounterNone
	}
	ratio := float64(length) / float64(limit)
	switch {
	case ratio > 0.9:
		return enum.CounterDanger
	case ratio > 0.8:
		return enum.CounterWarning
	}
	return enum.CounterNone
}
