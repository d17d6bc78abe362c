package requests

import "github.com/goccy/go-json"

// CreateAppointmentRequest is the inbound body of POST /appointments/{id}.
// Fields stay raw so that presence is the only rule and values reach Graph
// exactly as the caller sent them.
type CreateAppointmentRequest struct {
	StartTime     json.RawMessage `json:"start_time" validate:"required"`
	EndTime       json.RawMessage `json:"end_time" validate:"required"`
	ServiceID     json.RawMessage `json:"service_id" validate:"required"`
	CustomerEmail json.RawMessage `json:"customer_email" validate:"required"`
	CustomerName  json.RawMessage `json:"customer_name" validate:"required"`
	CustomerPhone json.RawMessage `json:"customer_phone" validate:"required"`
	StaffMemberID json.RawMessage `json:"staff_member_id" validate:"required"`
}
