package httpclient

import (
	"net/http"
)

// NewHTTPClient returns the client shared by every outbound call. It keeps
// net/http's defaults, so no request timeout is imposed beyond the inbound
// request's context.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
	}
}
