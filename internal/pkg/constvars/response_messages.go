package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	GetPatientsSuccessMessage         = "get patients successfully"
	GetPatientSuccessMessage          = "get patient successfully"
	CreatePatientSuccessMessage       = "patient created successfully"
	UpdatePatientSuccessMessage       = "patient updated successfully"
	GetAppointmentsSuccessMessage     = "get appointments successfully"
	GetAppointmentSuccessMessage      = "get appointment successfully"
	GetAppointmentTypesSuccessMessage = "get appointment types successfully"
	CreateAppointmentSuccessMessage   = "appointment created successfully"
	UpdateAppointmentSuccessMessage   = "appointment updated successfully"
	GetSlotsSuccessMessage            = "get slots successfully"
	GetSlotSuccessMessage             = "get slot successfully"
	CreateSlotSuccessMessage          = "slot created successfully"
	UpdateSlotSuccessMessage          = "slot updated successfully"
	AcquireTokensSuccessMessage       = "tokens stored successfully"
)
