package exceptions

import (
	"bookings-gateway/internal/pkg/constvars"
	"fmt"
)

// Location skip for the constructors below: getLocation, the new* helper,
// the constructor closure, then the caller we want to record.
const constructorCallerSkip = 3

var (
	// Identity
	ErrBuildCredential = func(err error) *AuthError {
		return newAuthError(constvars.ErrDevBuildCredential, err)
	}
	ErrAcquireToken = func(err error) *AuthError {
		return newAuthError(constvars.ErrDevAcquireToken, err)
	}
	ErrEmptyAccessToken = func() *AuthError {
		return newAuthError(constvars.ErrDevEmptyAccessToken, nil)
	}

	// Graph
	ErrRemoteStatus = func(operation string, statusCode int, body []byte) *RemoteError {
		return newRemoteError(operation, statusCode, body)
	}
	ErrInvalidJSONResponse = func(operation string, statusCode int, body []byte) *RemoteError {
		return newRemoteError(fmt.Sprintf("%s: %s", operation, constvars.ErrDevInvalidJSONResponse), statusCode, body)
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *TransportError {
		return newTransportError(constvars.ErrDevCreateHTTPRequest, err)
	}
	ErrSendHTTPRequest = func(err error) *TransportError {
		return newTransportError(constvars.ErrDevSendHTTPRequest, err)
	}
	ErrReadResponseBody = func(err error) *TransportError {
		return newTransportError(constvars.ErrDevReadResponseBody, err)
	}

	// Payload
	ErrCannotParseJSON = func(err error) *PayloadError {
		return newPayloadError(constvars.ErrDevCannotParseJSON, "", err)
	}
	ErrMissingRequiredField = func(field string) *PayloadError {
		return newPayloadError(constvars.ErrDevMissingRequiredField, field, nil)
	}
	ErrInvalidPayload = func(err error) *PayloadError {
		return newPayloadError(constvars.ErrDevInvalidPayload, "", err)
	}
	ErrCannotMarshalPayload = func(err error) *PayloadError {
		return newPayloadError(constvars.ErrDevMarshalPayload, "", err)
	}
)

func newAuthError(devMessage string, err error) *AuthError {
	return &AuthError{
		DevMessage: devMessage,
		Err:        err,
		Location:   getLocation(constructorCallerSkip),
	}
}

func newRemoteError(devMessage string, statusCode int, body []byte) *RemoteError {
	return &RemoteError{
		DevMessage: devMessage,
		StatusCode: statusCode,
		Body:       string(body),
		Location:   getLocation(constructorCallerSkip),
	}
}

func newPayloadError(devMessage, field string, err error) *PayloadError {
	return &PayloadError{
		DevMessage: devMessage,
		Field:      field,
		Err:        err,
		Location:   getLocation(constructorCallerSkip),
	}
}

func newTransportError(devMessage string, err error) *TransportError {
	return &TransportError{
		DevMessage: devMessage,
		Err:        err,
		Location:   getLocation(constructorCallerSkip),
	}
}
