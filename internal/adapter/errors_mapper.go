package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody caps how much of an upstream error body ends up in the
// status text shown to the user.
const maxErrorBody = 256

// statusError turns a non-2xx health response into ErrUnexpectedStatus
// carrying the code and the first line of the body.
func statusError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	detail, _, _ := strings.Cut(strings.TrimSpace(resp.String()), "\n")
	if len(detail) > maxErrorBody {
		detail = detail[:maxErrorBody]
	}
	if detail == "" {
		detail = http.StatusText(code)
	}
	return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, code, detail)
}
