package controllers

import (
	"bookings-gateway/internal/app/contracts"
	"bookings-gateway/internal/pkg/constvars"
	"bookings-gateway/internal/pkg/dto/requests"
	"bookings-gateway/internal/pkg/exceptions"
	"bookings-gateway/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
	}
}

func (ctrl *BookingController) ListBusinesses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("BookingController.ListBusinesses called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	response, err := ctrl.BookingUsecase.ListBusinesses(ctx)
	if err != nil {
		ctrl.Log.Error("Error in BookingUsecase.ListBusinesses",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BookingController.ListBusinesses succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))
	utils.BuildRawJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *BookingController) ListAppointments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	businessID := chi.URLParam(r, constvars.URLParamBusinessID)
	ctrl.Log.Info("BookingController.ListAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, businessID))

	response, err := ctrl.BookingUsecase.ListAppointments(ctx, businessID)
	if err != nil {
		ctrl.Log.Error("Error in BookingUsecase.ListAppointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BookingController.ListAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))
	utils.BuildRawJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *BookingController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	businessID := chi.URLParam(r, constvars.URLParamBusinessID)
	ctrl.Log.Info("BookingController.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, businessID))

	request := new(requests.CreateAppointmentRequest)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		ctrl.Log.Error("BookingController.CreateAppointment error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	response, err := ctrl.BookingUsecase.CreateAppointment(ctx, businessID, request)
	if err != nil {
		ctrl.Log.Error("Error in BookingUsecase.CreateAppointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BookingController.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))
	utils.BuildRawJSONResponse(w, constvars.StatusCreated, response)
}

func (ctrl *BookingController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.BuildTextResponse(w, constvars.StatusOK, constvars.HealthCheckResponse)
}
