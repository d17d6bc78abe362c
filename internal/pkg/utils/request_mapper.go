package utils

import (
	"bookings-gateway/internal/pkg/constvars"
	"bookings-gateway/internal/pkg/dto/requests"
	"bookings-gateway/internal/pkg/graph_dto"

	"github.com/goccy/go-json"
)

// BuildGraphAppointmentRequest reshapes the flat inbound body into the nested
// bookingAppointment Graph expects. Both ends are pinned to UTC and the single
// staff member becomes a one-element list.
func BuildGraphAppointmentRequest(request *requests.CreateAppointmentRequest) *graph_dto.BookingAppointment {
	return &graph_dto.BookingAppointment{
		StartDateTime: graph_dto.DateTimeTimeZone{
			DateTime: request.StartTime,
			TimeZone: constvars.GraphTimeZoneUTC,
		},
		EndDateTime: graph_dto.DateTimeTimeZone{
			DateTime: request.EndTime,
			TimeZone: constvars.GraphTimeZoneUTC,
		},
		ServiceID: request.ServiceID,
		Customer: graph_dto.BookingCustomer{
			EmailAddress: request.CustomerEmail,
			Name:         request.CustomerName,
			Phone:        request.CustomerPhone,
		},
		StaffMemberIDs: []json.RawMessage{request.StaffMemberID},
	}
}
