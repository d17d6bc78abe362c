package contracts

import (
	"bookings-gateway/internal/pkg/dto/requests"
	"bookings-gateway/internal/pkg/graph_dto"
	"context"

	"github.com/goccy/go-json"
)

// TokenAcquirer performs one client-credential exchange per call.
type TokenAcquirer interface {
	AcquireToken(ctx context.Context) (string, error)
}

// BookingGraphClient issues exactly one Graph call per method and returns the
// response body untouched.
type BookingGraphClient interface {
	ListBusinesses(ctx context.Context, accessToken string) (json.RawMessage, error)
	ListAppointments(ctx context.Context, accessToken, businessID string) (json.RawMessage, error)
	CreateAppointment(ctx context.Context, accessToken, businessID string, request *graph_dto.BookingAppointment) (json.RawMessage, error)
}

type BookingUsecase interface {
	ListBusinesses(ctx context.Context) (json.RawMessage, error)
	ListAppointments(ctx context.Context, businessID string) (json.RawMessage, error)
	CreateAppointment(ctx context.Context, businessID string, request *requests.CreateAppointmentRequest) (json.RawMessage, error)
}
