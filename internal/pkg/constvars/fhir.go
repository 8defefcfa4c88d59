package constvars

type ResourceType string

const (
	ResourcePatient      = "Patient"
	ResourceAppointment  = "Appointment"
	ResourceSlot         = "Slot"
	ResourcePractitioner = "Practitioner"
	ResourceLocation     = "Location"
	ResourceBundle       = "Bundle"
)

const (
	FhirSlotStatusBusy = "busy"
	FhirSlotStatusFree = "free"
)

const (
	FhirAppointmentStatusBooked    = "booked"
	FhirAppointmentStatusProposed  = "proposed"
	FhirAppointmentStatusPending   = "pending"
	FhirAppointmentStatusFulfilled = "fulfilled"
	FhirAppointmentStatusArrived   = "arrived"
	FhirAppointmentStatusCancelled = "cancelled"
	FhirAppointmentStatusNoShow    = "noshow"
	FhirAppointmentStatusCheckedIn = "checked-in"
)

const (
	FhirParticipantStatusAccepted = "accepted"
)

const (
	FhirContactPointSystemEmail = "email"
	FhirContactPointSystemPhone = "phone"
	FhirContactPointUseHome     = "home"
	FhirContactPointUseMobile   = "mobile"
	FhirAddressUseHome          = "home"
)

const (
	FhirBundleLinkRelationNext = "next"
)

// Search parameter names that get special treatment when building queries.
const (
	FhirSearchParamPage            = "page"
	FhirSearchParamDate            = "date"
	FhirSearchParamDateUpperBound  = "date2"
	FhirSearchParamPatient         = "patient"
	FhirSearchParamActive          = "active"
	FhirSearchParamStatus          = "status"
	FhirSearchParamStart           = "start"
	FhirSearchParamAppointmentType = "appointment-type"
)

const (
	FhirDatePrefixGreaterOrEqual = "ge"
	FhirDatePrefixLessOrEqual    = "le"
	FhirReferencePatientPrefix   = "Patient/"
)

// Path segments of the upstream EMA API below the firm prefix.
const (
	EmaFhirPath       = "ema/fhir/v2"
	EmaOAuthGrantPath = "ema/ws/oauth2/grant"
	EmaValueSetPath   = "ValueSet/appointment-type"
)

const (
	OAuthGrantTypePassword = "password"
)

const (
	DefaultAppointmentTypeCode    = "1509"
	DefaultAppointmentTypeDisplay = "New Patient"
	DefaultAppointmentMinutes     = 10
)
