package bookings

import (
	"bookings-gateway/internal/pkg/dto/requests"
	"bookings-gateway/internal/pkg/exceptions"
	"bookings-gateway/internal/pkg/graph_dto"
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockTokenAcquirer struct {
	mock.Mock
}

func (m *MockTokenAcquirer) AcquireToken(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type MockBookingGraphClient struct {
	mock.Mock
}

func (m *MockBookingGraphClient) ListBusinesses(ctx context.Context, accessToken string) (json.RawMessage, error) {
	args := m.Called(ctx, accessToken)
	body, _ := args.Get(0).(json.RawMessage)
	return body, args.Error(1)
}

func (m *MockBookingGraphClient) ListAppointments(ctx context.Context, accessToken, businessID string) (json.RawMessage, error) {
	args := m.Called(ctx, accessToken, businessID)
	body, _ := args.Get(0).(json.RawMessage)
	return body, args.Error(1)
}

func (m *MockBookingGraphClient) CreateAppointment(ctx context.Context, accessToken, businessID string, request *graph_dto.BookingAppointment) (json.RawMessage, error) {
	args := m.Called(ctx, accessToken, businessID, request)
	body, _ := args.Get(0).(json.RawMessage)
	return body, args.Error(1)
}

func completeRequest() *requests.CreateAppointmentRequest {
	return &requests.CreateAppointmentRequest{
		StartTime:     json.RawMessage(`"2024-01-01T10:00:00"`),
		EndTime:       json.RawMessage(`"2024-01-01T10:30:00"`),
		ServiceID:     json.RawMessage(`"svc1"`),
		CustomerEmail: json.RawMessage(`"a@b.com"`),
		CustomerName:  json.RawMessage(`"A"`),
		CustomerPhone: json.RawMessage(`"123"`),
		StaffMemberID: json.RawMessage(`"staff1"`),
	}
}

func TestListBusinesses_PassesTokenToGraph(t *testing.T) {
	ctx := context.Background()
	tokens := new(MockTokenAcquirer)
	graph := new(MockBookingGraphClient)
	tokens.On("AcquireToken", ctx).Return("token-1", nil).Once()
	graph.On("ListBusinesses", ctx, "token-1").Return(json.RawMessage(`{"value":[]}`), nil).Once()

	body, err := NewBookingUsecase(tokens, graph, zap.NewNop()).ListBusinesses(ctx)

	require.NoError(t, err)
	assert.Equal(t, `{"value":[]}`, string(body))
	tokens.AssertExpectations(t)
	graph.AssertExpectations(t)
}

func TestListAppointments_TokenFailureSkipsGraph(t *testing.T) {
	ctx := context.Background()
	tokens := new(MockTokenAcquirer)
	graph := new(MockBookingGraphClient)
	tokens.On("AcquireToken", ctx).Return("", exceptions.ErrEmptyAccessToken()).Once()

	body, err := NewBookingUsecase(tokens, graph, zap.NewNop()).ListAppointments(ctx, "biz1")

	assert.Nil(t, body)
	var authErr *exceptions.AuthError
	require.ErrorAs(t, err, &authErr)
	graph.AssertNotCalled(t, "ListAppointments", mock.Anything, mock.Anything, mock.Anything)
}

func TestListAppointments_RemoteErrorPropagates(t *testing.T) {
	ctx := context.Background()
	tokens := new(MockTokenAcquirer)
	graph := new(MockBookingGraphClient)
	remoteErr := exceptions.ErrRemoteStatus("failed to list appointments", 404, []byte(`{"error":"nope"}`))
	tokens.On("AcquireToken", ctx).Return("token", nil).Once()
	graph.On("ListAppointments", ctx, "token", "unknown").Return(nil, remoteErr).Once()

	_, err := NewBookingUsecase(tokens, graph, zap.NewNop()).ListAppointments(ctx, "unknown")

	assert.Same(t, remoteErr, err)
}

func TestCreateAppointment_BuildsGraphPayload(t *testing.T) {
	ctx := context.Background()
	tokens := new(MockTokenAcquirer)
	graph := new(MockBookingGraphClient)
	tokens.On("AcquireToken", ctx).Return("token", nil).Once()
	graph.On("CreateAppointment", ctx, "token", "biz1", mock.MatchedBy(func(appointment *graph_dto.BookingAppointment) bool {
		return len(appointment.StaffMemberIDs) == 1 &&
			string(appointment.StaffMemberIDs[0]) == `"staff1"` &&
			appointment.StartDateTime.TimeZone == "UTC" &&
			appointment.EndDateTime.TimeZone == "UTC"
	})).Return(json.RawMessage(`{"id":"appt-1"}`), nil).Once()

	body, err := NewBookingUsecase(tokens, graph, zap.NewNop()).CreateAppointment(ctx, "biz1", completeRequest())

	require.NoError(t, err)
	assert.Equal(t, `{"id":"appt-1"}`, string(body))
	graph.AssertExpectations(t)
}

func TestCreateAppointment_MissingFieldMakesNoOutboundCall(t *testing.T) {
	ctx := context.Background()
	tokens := new(MockTokenAcquirer)
	graph := new(MockBookingGraphClient)

	request := completeRequest()
	request.CustomerPhone = nil

	_, err := NewBookingUsecase(tokens, graph, zap.NewNop()).CreateAppointment(ctx, "biz1", request)

	var payloadErr *exceptions.PayloadError
	require.ErrorAs(t, err, &payloadErr)
	assert.Equal(t, "customer_phone", payloadErr.Field)
	tokens.AssertNotCalled(t, "AcquireToken", mock.Anything)
	graph.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
