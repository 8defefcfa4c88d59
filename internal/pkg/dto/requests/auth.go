package requests

type AcquireTokens struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	APIKey   string `json:"apiKey" validate:"required"`
}
