package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ehr-gateway-service/internal/pkg/constvars"
	"ehr-gateway-service/internal/pkg/dto/requests"
	"ehr-gateway-service/internal/pkg/dto/responses"
	"ehr-gateway-service/internal/pkg/exceptions"
	"ehr-gateway-service/internal/pkg/fhir_dto"
	"ehr-gateway-service/internal/pkg/utils"
)

const fhirInstantLayout = "2006-01-02T15:04:05.000Z"

var knownAppointmentTypes = []responses.AppointmentType{
	{Code: "1508", Display: "Surgery"},
	{Code: "1509", Display: "New Patient"},
	{Code: "1510", Display: "Follow-up"},
}

var errMissingRequiredFields = errors.New("start, patientRef, practitionerRef and locationRef are required")

// BuildAppointmentPayload turns the booking form into an Appointment. The
// end instant is start plus the duration, and every participant is marked
// accepted.
func BuildAppointmentPayload(form *requests.AppointmentForm, typeSystem string) (*fhir_dto.Appointment, error) {
	if form == nil || strings.TrimSpace(form.Start) == "" || strings.TrimSpace(form.PatientRef) == "" ||
		strings.TrimSpace(form.PractitionerRef) == "" || strings.TrimSpace(form.LocationRef) == "" {
		return nil, exceptions.ErrAppointmentFormIncomplete(errMissingRequiredFields)
	}

	start, err := utils.ParseTimestamp(form.Start)
	if err != nil {
		return nil, exceptions.ErrAppointmentFormIncomplete(err)
	}

	status := form.Status
	if status == "" {
		status = constvars.FhirAppointmentStatusBooked
	}

	minutes := form.MinutesDuration
	if minutes <= 0 {
		minutes = constvars.DefaultAppointmentMinutes
	}

	typeCode, typeDisplay := resolveAppointmentType(form.AppointmentTypeCode, form.AppointmentTypeDisplay)
	end := start.Add(time.Duration(minutes) * time.Minute)

	return &fhir_dto.Appointment{
		ResourceType: constvars.ResourceAppointment,
		Status:       status,
		AppointmentType: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{
					System:  typeSystem,
					Code:    typeCode,
					Display: typeDisplay,
				},
			},
			Text: typeDisplay,
		},
		Start:           formatInstant(start),
		End:             formatInstant(end),
		MinutesDuration: minutes,
		Description:     form.Description,
		Comment:         form.Comment,
		Participant: []fhir_dto.AppointmentParticipant{
			newParticipant(constvars.ResourceLocation, form.LocationRef, form.LocationDisplay),
			newParticipant(constvars.ResourcePractitioner, form.PractitionerRef, form.PractitionerDisplay),
			newParticipant(constvars.ResourcePatient, form.PatientRef, form.PatientDisplay),
		},
	}, nil
}

func resolveAppointmentType(code, display string) (string, string) {
	if code == "" {
		return constvars.DefaultAppointmentTypeCode, constvars.DefaultAppointmentTypeDisplay
	}
	if display != "" {
		return code, display
	}
	for _, known := range knownAppointmentTypes {
		if known.Code == code {
			return code, known.Display
		}
	}
	return code, display
}

func newParticipant(resourceType, ref, display string) fhir_dto.AppointmentParticipant {
	return fhir_dto.AppointmentParticipant{
		Actor: fhir_dto.Reference{
			Reference: referenceTo(resourceType, ref),
			Display:   display,
		},
		Status: constvars.FhirParticipantStatusAccepted,
	}
}

// referenceTo builds "Type/id", leaving an already typed reference alone.
func referenceTo(resourceType, ref string) string {
	ref = strings.TrimSpace(ref)
	prefix := resourceType + "/"
	if strings.HasPrefix(ref, prefix) {
		return ref
	}
	return fmt.Sprintf("%s%s", prefix, ref)
}

func formatInstant(t time.Time) string {
	return t.UTC().Format(fhirInstantLayout)
}

func appointmentTypeCode(payload *fhir_dto.Appointment) string {
	if payload.AppointmentType == nil || len(payload.AppointmentType.Coding) == 0 {
		return ""
	}
	return payload.AppointmentType.Coding[0].Code
}
