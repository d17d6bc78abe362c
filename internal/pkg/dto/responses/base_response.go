package responses

// ErrorResponse is the only error shape the gateway returns. Every failure
// is reported with status 500 and this body.
type ErrorResponse struct {
	Error string `json:"error"`
}
