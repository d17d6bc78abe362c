package constvars

const (
	GraphDefaultBaseUrl       = "https://graph.microsoft.com/v1.0"
	GraphDefaultScope         = "https://graph.microsoft.com/.default"
	IdentityDefaultAuthority  = "https://login.microsoftonline.com/"
	GraphTimeZoneUTC          = "UTC"
	ResourceBookingBusinesses = "/solutions/bookingBusinesses"
	ResourceAppointments      = "/appointments"
)

const (
	GraphOperationListBusinesses    = "list_businesses"
	GraphOperationListAppointments  = "list_appointments"
	GraphOperationCreateAppointment = "create_appointment"
)
