package bookings

import (
	"bookings-gateway/internal/app/contracts"
	"bookings-gateway/internal/pkg/constvars"
	"bookings-gateway/internal/pkg/dto/requests"
	"bookings-gateway/internal/pkg/exceptions"
	"bookings-gateway/internal/pkg/utils"
	"context"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type bookingUsecase struct {
	TokenAcquirer      contracts.TokenAcquirer
	BookingGraphClient contracts.BookingGraphClient
	Log                *zap.Logger
}

func NewBookingUsecase(
	tokenAcquirer contracts.TokenAcquirer,
	bookingGraphClient contracts.BookingGraphClient,
	logger *zap.Logger,
) contracts.BookingUsecase {
	return &bookingUsecase{
		TokenAcquirer:      tokenAcquirer,
		BookingGraphClient: bookingGraphClient,
		Log:                logger,
	}
}

func (uc *bookingUsecase) ListBusinesses(ctx context.Context) (json.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.ListBusinesses called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	accessToken, err := uc.TokenAcquirer.AcquireToken(ctx)
	if err != nil {
		uc.Log.Error("bookingUsecase.ListBusinesses error acquiring token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	businesses, err := uc.BookingGraphClient.ListBusinesses(ctx, accessToken)
	if err != nil {
		uc.Log.Error("bookingUsecase.ListBusinesses error calling Graph",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("bookingUsecase.ListBusinesses succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return businesses, nil
}

func (uc *bookingUsecase) ListAppointments(ctx context.Context, businessID string) (json.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.ListAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, businessID),
	)

	accessToken, err := uc.TokenAcquirer.AcquireToken(ctx)
	if err != nil {
		uc.Log.Error("bookingUsecase.ListAppointments error acquiring token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	appointments, err := uc.BookingGraphClient.ListAppointments(ctx, accessToken, businessID)
	if err != nil {
		uc.Log.Error("bookingUsecase.ListAppointments error calling Graph",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBusinessIDKey, businessID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("bookingUsecase.ListAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, businessID),
	)
	return appointments, nil
}

// CreateAppointment checks the request before anything leaves the process:
// a missing field never costs a token exchange or a Graph call.
func (uc *bookingUsecase) CreateAppointment(ctx context.Context, businessID string, request *requests.CreateAppointmentRequest) (json.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, businessID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("bookingUsecase.CreateAppointment request is missing a field",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrFromValidation(err)
	}
	appointment := utils.BuildGraphAppointmentRequest(request)

	accessToken, err := uc.TokenAcquirer.AcquireToken(ctx)
	if err != nil {
		uc.Log.Error("bookingUsecase.CreateAppointment error acquiring token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	created, err := uc.BookingGraphClient.CreateAppointment(ctx, accessToken, businessID, appointment)
	if err != nil {
		uc.Log.Error("bookingUsecase.CreateAppointment error calling Graph",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBusinessIDKey, businessID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("bookingUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, businessID),
	)
	return created, nil
}
