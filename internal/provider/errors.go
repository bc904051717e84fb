package provider

import "fmt"

// UpstreamError reports a failed provider call: a non-2xx response, a
// transport failure (StatusCode 0), or a response body that did not match
// the expected schema. It never escapes the fetcher boundary.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s error: %s", e.Provider, e.Body)
	}
	return fmt.Sprintf("%s error %d: %s", e.Provider, e.StatusCode, e.Body)
}

func upstreamErr(name string, status int, body string) *UpstreamError {
	return &UpstreamError{Provider: name, StatusCode: status, Body: body}
}
