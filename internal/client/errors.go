package client

import (
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// ErrNotFound marks a 404 on endpoints where it means "no such record"
// rather than "past the last page".
var ErrNotFound = errors.New("not found")

// APIError is a permanent HTTP failure. The body is kept verbatim so the
// operator can see what the vendor rejected.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Body)
}

func apiErr(resp *resty.Response) error {
	return &APIError{StatusCode: resp.StatusCode(), Body: resp.String()}
}
