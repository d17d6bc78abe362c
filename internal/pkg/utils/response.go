package utils

import (
	"bookings-gateway/internal/pkg/constvars"
	"bookings-gateway/internal/pkg/dto/responses"
	"bookings-gateway/internal/pkg/exceptions"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// BuildRawJSONResponse writes a body that is already JSON, untouched.
func BuildRawJSONResponse(w http.ResponseWriter, code int, body json.RawMessage) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	w.Write(body)
}

func BuildTextResponse(w http.ResponseWriter, code int, body string) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextPlainCharsetUTF8)
	w.WriteHeader(code)
	w.Write([]byte(body))
}

// BuildErrorResponse collapses every failure into 500 {"error": msg}. The
// error kind and origin only go to the log.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	var gatewayErr exceptions.GatewayError
	if errors.As(err, &gatewayErr) {
		location := gatewayErr.Where()
		log.Error(err.Error(),
			zap.String(constvars.LoggingErrorKindKey, string(gatewayErr.Kind())),
			zap.Any(constvars.LoggingLocationKey, map[string]interface{}{
				"file":          location.File,
				"line":          location.Line,
				"function_name": location.FunctionName,
			}),
		)
	} else {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(constvars.StatusInternalServerError)
	json.NewEncoder(w).Encode(responses.ErrorResponse{Error: err.Error()})
}
