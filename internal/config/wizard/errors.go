package wizard

import (
	"fmt"
	"strings"
)

// MissingInputError reports required values that could not be collected
// because no terminal is attached to prompt on.
type MissingInputError struct {
	Keys []string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf(
		"required values missing and no terminal to prompt on: %s (set them as environment variables or in %s)",
		strings.Join(e.Keys, ", "), "provision.yaml")
}
