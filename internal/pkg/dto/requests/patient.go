package requests

type PatientUpdateForm struct {
	Email       string              `json:"email" validate:"omitempty,email"`
	HomePhone   string              `json:"homePhone"`
	MobilePhone string              `json:"mobilePhone"`
	FamilyName  string              `json:"familyName"`
	GivenName   string              `json:"givenName"`
	Address     *PatientAddressForm `json:"address,omitempty"`
}

type PatientAddressForm struct {
	Line       []string `json:"line,omitempty"`
	City       string   `json:"city,omitempty"`
	State      string   `json:"state,omitempty"`
	PostalCode string   `json:"postalCode,omitempty"`
	Country    string   `json:"country,omitempty"`
}

func (a *PatientAddressForm) IsEmpty() bool {
	if a == nil {
		return true
	}
	for _, line := range a.Line {
		if line != "" {
			return false
		}
	}
	return a.City == "" && a.State == "" && a.PostalCode == "" && a.Country == ""
}
