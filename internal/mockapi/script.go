package mockapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
)

// StatusScript hands out response status codes in a fixed cycle.
// An empty script always answers 200.
type StatusScript struct {
	mu       sync.Mutex
	statuses []int
	next     int
}

// NewStatusScript creates a script cycling through statuses.
func NewStatusScript(statuses []int) *StatusScript {
	return &StatusScript{statuses: append([]int(nil), statuses...)}
}

// Next returns the status for the next request.
func (s *StatusScript) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.statuses) == 0 {
		return http.StatusOK
	}
	code := s.statuses[s.next%len(s.statuses)]
	s.next++
	return code
}

// Reset restarts the cycle from the first status.
func (s *StatusScript) Reset() {
	s.mu.Lock()
	s.next = 0
	s.mu.Unlock()
}

// ParseStatuses parses a comma-separated list such as "200,500".
func ParseStatuses(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		code, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("mockapi: invalid status %q: %w", p, err)
		}
		if err := ValidateStatus(code); err != nil {
			return nil, err
		}
		out = append(out, code)
	}
	return out, nil
}

// ValidateStatus rejects codes outside 100-599.
func ValidateStatus(code int) error {
	if code < 100 || code > 599 {
		return fmt.Errorf("mockapi: status %d out of range", code)
	}
	return nil
}
