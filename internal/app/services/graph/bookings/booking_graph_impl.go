package graph_bookings

import (
	"bookings-gateway/internal/app/contracts"
	"bookings-gateway/internal/pkg/constvars"
	"bookings-gateway/internal/pkg/exceptions"
	"bookings-gateway/internal/pkg/graph_dto"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const transportFailureLabel = "error"

var graphRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "graph_requests_total",
		Help: "Total number of calls made to the Graph Bookings API",
	},
	[]string{"operation", "status"},
)

type bookingGraphClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

// graphCall describes one outbound request and the single status that counts
// as success for it.
type graphCall struct {
	name           string
	operation      string
	devMessage     string
	method         string
	url            string
	expectedStatus int
}

func NewBookingGraphClient(baseUrl string, httpClient *http.Client, logger *zap.Logger) contracts.BookingGraphClient {
	return &bookingGraphClient{
		BaseUrl:    baseUrl,
		HTTPClient: httpClient,
		Log:        logger,
	}
}

func (c *bookingGraphClient) ListBusinesses(ctx context.Context, accessToken string) (json.RawMessage, error) {
	return c.do(ctx, graphCall{
		name:           "bookingGraphClient.ListBusinesses",
		operation:      constvars.GraphOperationListBusinesses,
		devMessage:     constvars.ErrDevListBusinesses,
		method:         constvars.MethodGet,
		url:            c.BaseUrl + constvars.ResourceBookingBusinesses,
		expectedStatus: constvars.StatusOK,
	}, accessToken, nil)
}

func (c *bookingGraphClient) ListAppointments(ctx context.Context, accessToken, businessID string) (json.RawMessage, error) {
	return c.do(ctx, graphCall{
		name:           "bookingGraphClient.ListAppointments",
		operation:      constvars.GraphOperationListAppointments,
		devMessage:     constvars.ErrDevListAppointments,
		method:         constvars.MethodGet,
		url:            c.appointmentsUrl(businessID),
		expectedStatus: constvars.StatusOK,
	}, accessToken, nil)
}

func (c *bookingGraphClient) CreateAppointment(ctx context.Context, accessToken, businessID string, request *graph_dto.BookingAppointment) (json.RawMessage, error) {
	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("bookingGraphClient.CreateAppointment error marshaling appointment",
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalPayload(err)
	}

	return c.do(ctx, graphCall{
		name:           "bookingGraphClient.CreateAppointment",
		operation:      constvars.GraphOperationCreateAppointment,
		devMessage:     constvars.ErrDevCreateAppointment,
		method:         constvars.MethodPost,
		url:            c.appointmentsUrl(businessID),
		expectedStatus: constvars.StatusCreated,
	}, accessToken, requestJSON)
}

// appointmentsUrl places businessID in the path as given.
func (c *bookingGraphClient) appointmentsUrl(businessID string) string {
	return fmt.Sprintf("%s%s/%s%s", c.BaseUrl, constvars.ResourceBookingBusinesses, businessID, constvars.ResourceAppointments)
}

func (c *bookingGraphClient) do(ctx context.Context, call graphCall, accessToken string, body []byte) (json.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info(call.name+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGraphUrlKey, call.url),
	)

	var requestBody io.Reader
	if body != nil {
		requestBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, call.method, call.url, requestBody)
	if err != nil {
		c.Log.Error(call.name+" error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, fmt.Sprintf(constvars.BearerTokenFormat, accessToken))
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		graphRequestsTotal.WithLabelValues(call.operation, transportFailureLabel).Inc()
		c.Log.Error(call.name+" error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()
	graphRequestsTotal.WithLabelValues(call.operation, strconv.Itoa(resp.StatusCode)).Inc()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error(call.name+" error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrReadResponseBody(err)
	}

	if resp.StatusCode != call.expectedStatus {
		c.Log.Error(call.name+" Graph returned an unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingGraphStatusKey, resp.StatusCode),
		)
		return nil, exceptions.ErrRemoteStatus(call.devMessage, resp.StatusCode, bodyBytes)
	}

	if !json.Valid(bodyBytes) {
		c.Log.Error(call.name+" Graph returned a body that is not JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingGraphStatusKey, resp.StatusCode),
		)
		return nil, exceptions.ErrInvalidJSONResponse(call.devMessage, resp.StatusCode, bodyBytes)
	}

	c.Log.Info(call.name+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingGraphStatusKey, resp.StatusCode),
		zap.Int(constvars.LoggingResponseLengthKey, len(bodyBytes)),
	)
	return json.RawMessage(bodyBytes), nil
}
