package graph_dto

import "github.com/goccy/go-json"

type DateTimeTimeZone struct {
	DateTime json.RawMessage `json:"dateTime"`
	TimeZone string          `json:"timeZone"`
}

type BookingCustomer struct {
	EmailAddress json.RawMessage `json:"emailAddress"`
	Name         json.RawMessage `json:"name"`
	Phone        json.RawMessage `json:"phone"`
}

// BookingAppointment is the body Graph expects on
// POST /solutions/bookingBusinesses/{id}/appointments.
type BookingAppointment struct {
	StartDateTime  DateTimeTimeZone  `json:"startDateTime"`
	EndDateTime    DateTimeTimeZone  `json:"endDateTime"`
	ServiceID      json.RawMessage   `json:"serviceId"`
	Customer       BookingCustomer   `json:"customer"`
	StaffMemberIDs []json.RawMessage `json:"staffMemberIds"`
}
