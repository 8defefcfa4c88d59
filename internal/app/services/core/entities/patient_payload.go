package entities

import (
	"strings"
	"time"

	"ehr-gateway-service/internal/pkg/constvars"
	"ehr-gateway-service/internal/pkg/dto/requests"
	"ehr-gateway-service/internal/pkg/fhir_dto"
)

var now = time.Now

// BuildPatientUpdate builds a partial Patient holding only the fields the
// form filled in.
func BuildPatientUpdate(id string, form *requests.PatientUpdateForm) *fhir_dto.Patient {
	patient := &fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
		ID:           id,
		Meta: &fhir_dto.Meta{
			LastUpdated: formatInstant(now()),
		},
	}
	if form == nil {
		return patient
	}

	familyName := strings.TrimSpace(form.FamilyName)
	givenName := strings.TrimSpace(form.GivenName)
	if familyName != "" || givenName != "" {
		name := fhir_dto.HumanName{Family: familyName}
		if givenName != "" {
			name.Given = []string{givenName}
		}
		patient.Name = []fhir_dto.HumanName{name}
	}

	if !form.Address.IsEmpty() {
		patient.Address = []fhir_dto.Address{
			{
				Use:        constvars.FhirAddressUseHome,
				Line:       nonEmpty(form.Address.Line),
				City:       form.Address.City,
				State:      form.Address.State,
				PostalCode: form.Address.PostalCode,
				Country:    form.Address.Country,
			},
		}
	}

	if form.Email != "" {
		patient.Telecom = append(patient.Telecom, fhir_dto.ContactPoint{
			System: constvars.FhirContactPointSystemEmail,
			Value:  form.Email,
			Rank:   1,
		})
	}
	if form.HomePhone != "" {
		patient.Telecom = append(patient.Telecom, fhir_dto.ContactPoint{
			System: constvars.FhirContactPointSystemPhone,
			Value:  form.HomePhone,
			Use:    constvars.FhirContactPointUseHome,
		})
	}
	if form.MobilePhone != "" {
		patient.Telecom = append(patient.Telecom, fhir_dto.ContactPoint{
			System: constvars.FhirContactPointSystemPhone,
			Value:  form.MobilePhone,
			Use:    constvars.FhirContactPointUseMobile,
			Rank:   2,
		})
	}

	return patient
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
