package requests

// AppointmentForm is the flat booking form accepted by POST /appointments.
// References are bare ids; the resource type prefix is added when the FHIR
// payload is built.
type AppointmentForm struct {
	Status                 string `json:"status" validate:"omitempty,oneof=proposed pending booked arrived fulfilled cancelled noshow checked-in"`
	AppointmentTypeCode    string `json:"appointmentTypeCode"`
	AppointmentTypeDisplay string `json:"appointmentTypeDisplay"`
	Start                  string `json:"start" validate:"required,rfc3339"`
	MinutesDuration        int    `json:"minutesDuration" validate:"omitempty,gt=0"`
	Description            string `json:"description"`
	Comment                string `json:"comment"`
	PatientRef             string `json:"patientRef" validate:"required"`
	PatientDisplay         string `json:"patientDisplay"`
	PractitionerRef        string `json:"practitionerRef" validate:"required"`
	PractitionerDisplay    string `json:"practitionerDisplay"`
	LocationRef            string `json:"locationRef" validate:"required"`
	LocationDisplay        string `json:"locationDisplay"`
}
