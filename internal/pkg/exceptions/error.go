package exceptions

import (
	"bookings-gateway/internal/pkg/constvars"
	"fmt"
	"runtime"
)

const unknownLocation = "unknown"

// Kind tells the boundary layer which step of a request failed. The HTTP
// response is the same for every kind; the kind only shows up in logs and
// tests.
type Kind string

const (
	KindAuth      Kind = "auth"
	KindRemote    Kind = "remote"
	KindPayload   Kind = "payload"
	KindTransport Kind = "transport"
)

type Location struct {
	File         string
	Line         int
	FunctionName string
}

// GatewayError is implemented by every error this package builds.
type GatewayError interface {
	error
	Kind() Kind
	Where() Location
}

// AuthError means the client-credential exchange did not yield a token.
type AuthError struct {
	DevMessage string
	Err        error
	Location   Location
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return e.DevMessage
	}
	return fmt.Sprintf("%s: %s", e.DevMessage, e.Err.Error())
}

func (e *AuthError) Unwrap() error   { return e.Err }
func (e *AuthError) Kind() Kind      { return KindAuth }
func (e *AuthError) Where() Location { return e.Location }

// RemoteError carries a non-success answer from the remote API verbatim.
type RemoteError struct {
	DevMessage string
	StatusCode int
	Body       string
	Location   Location
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf(constvars.ErrDevRemoteStatusFormat, e.DevMessage, e.StatusCode, e.Body)
}

func (e *RemoteError) Kind() Kind      { return KindRemote }
func (e *RemoteError) Where() Location { return e.Location }

// PayloadError means the inbound request could not be turned into the
// outbound payload. Field is set when a required key was absent.
type PayloadError struct {
	DevMessage string
	Field      string
	Err        error
	Location   Location
}

func (e *PayloadError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s: %s", e.DevMessage, e.Field)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s", e.DevMessage, e.Err.Error())
	default:
		return e.DevMessage
	}
}

func (e *PayloadError) Unwrap() error   { return e.Err }
func (e *PayloadError) Kind() Kind      { return KindPayload }
func (e *PayloadError) Where() Location { return e.Location }

// TransportError wraps a failure to build, send or read an outbound request.
type TransportError struct {
	DevMessage string
	Err        error
	Location   Location
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return e.DevMessage
	}
	return fmt.Sprintf("%s: %s", e.DevMessage, e.Err.Error())
}

func (e *TransportError) Unwrap() error   { return e.Err }
func (e *TransportError) Kind() Kind      { return KindTransport }
func (e *TransportError) Where() Location { return e.Location }

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         unknownLocation,
			Line:         0,
			FunctionName: unknownLocation,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
