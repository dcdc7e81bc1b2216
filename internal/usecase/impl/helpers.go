package impl

import (
	"strings"
)

// trimOptional trims every non-nil string in place.
func trimOptional(values ...*string) {
	for _, v := range values {
		if v != nil {
			*v = strings.TrimSpace(*v)
		}
	}
}

// patchString assigns value to dst when value is set.
func patchString(dst *string, value *string) {
	if value != nil {
		*dst = *value
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
