package apiutil

import (
	"fmt"
	"strings"
)

// ParseStepField accepts a single counter step: "1", "+1", "inc" or "-1", "dec".
func ParseStepField(raw string, field string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "+1", "inc", "increment":
		return 1, nil
	case "-1", "dec", "decrement":
		return -1, nil
	case "":
		return 0, fmt.Errorf("%s is required", field)
	default:
		return 0, fmt.Errorf("%s must be 1 or -1", field)
	}
}
