package sync

import (
	"fmt"
	"strings"
	"time"
)

// ParseDueAt parses a Canvas due_at value into a UTC instant.
// A trailing "Z" is rewritten to "+00:00" first.
func ParseDueAt(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	if strings.HasSuffix(v, "Z") {
		v = strings.TrimSuffix(v, "Z") + "+00:00"
	}
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("sync: parse due_at %q: %w", s, err)
	}
	return t.UTC(), nil
}
