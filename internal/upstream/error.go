package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a non-2xx response from the upstream API. Details holds the
// parsed JSON body when the body is valid JSON, otherwise the raw text.
type Error struct {
	Status  int
	Details any
}

func (e *Error) Error() string {
	if e.Details == nil {
		return fmt.Sprintf("upstream returned status %d", e.Status)
	}
	return fmt.Sprintf("upstream returned status %d: %v", e.Status, e.Details)
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var ue *Error
	return errors.As(err, &ue) && ue.Status == http.StatusNotFound
}
