package fhir_dto

type Appointment struct {
	ResourceType    string                   `json:"resourceType"`
	ID              string                   `json:"id,omitempty"`
	Status          string                   `json:"status"`
	AppointmentType *CodeableConcept         `json:"appointmentType,omitempty"`
	Start           string                   `json:"start"`
	End             string                   `json:"end"`
	MinutesDuration int                      `json:"minutesDuration"`
	Description     string                   `json:"description,omitempty"`
	Comment         string                   `json:"comment,omitempty"`
	Participant     []AppointmentParticipant `json:"participant"`
}

type AppointmentParticipant struct {
	Actor  Reference `json:"actor"`
	Status string    `json:"status,omitempty"`
}
