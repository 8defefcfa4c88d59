package models

// Credentials is the cached upstream credential record.
type Credentials struct {
	APIKey       string
	AccessToken  string
	RefreshToken string
}

func (c *Credentials) IsComplete() bool {
	return c != nil && c.APIKey != "" && c.AccessToken != ""
}
