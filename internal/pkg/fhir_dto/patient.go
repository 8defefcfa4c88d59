package fhir_dto

type Patient struct {
	ResourceType string         `json:"resourceType"`
	ID           string         `json:"id,omitempty"`
	Meta         *Meta          `json:"meta,omitempty"`
	Name         []HumanName    `json:"name,omitempty"`
	Address      []Address      `json:"address,omitempty"`
	Telecom      []ContactPoint `json:"telecom,omitempty"`
}
