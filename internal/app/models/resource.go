package models

import "ehr-gateway-service/internal/pkg/constvars"

// Resource names an upstream FHIR resource type the gateway proxies.
type Resource string

const (
	ResourcePatient     Resource = constvars.ResourcePatient
	ResourceAppointment Resource = constvars.ResourceAppointment
	ResourceSlot        Resource = constvars.ResourceSlot
)

func (r Resource) String() string {
	return string(r)
}

func (r Resource) IsValid() bool {
	switch r {
	case ResourcePatient, ResourceAppointment, ResourceSlot:
		return true
	}
	return false
}

// HasDateRange reports whether a bare date filter on this resource is
// expanded to a whole-day range.
func (r Resource) HasDateRange() bool {
	return r == ResourceAppointment || r == ResourceSlot
}
