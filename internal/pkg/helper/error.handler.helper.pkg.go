package helper

import (
	"fmt"

	"complaint-portal/internal/pkg/logger"
)

// HandleAppError logs err with its location. Fatal errors are returned
// wrapped so the caller can abort; non-fatal ones are swallowed.
func HandleAppError(err error, function, step string, fatal bool) error {
	if err == nil {
		return nil
	}
	if fatal {
		logger.Error.Println("Fatal error in function:", function, "Step:", step, "Details:", err)
		return fmt.Errorf("%s: %s: %w", function, step, err)
	}
	logger.Error.Println("Error in function:", function, "Step:", step, "Details:", err)
	return nil
}
