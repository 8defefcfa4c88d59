package responses

type AppointmentType struct {
	Code    string `json:"code"`
	Display string `json:"display"`
}
