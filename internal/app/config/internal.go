package config

type InternalConfig struct {
	App App
	EHR AppEHR
	JWT AppJWT
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	MaxTimeRequestsPerSeconds  int
	RequestBodyLimitInMegabyte int
}

// AppEHR describes the upstream records API and how its credentials are
// held. CredentialScope is either "global" (one shared record) or
// "session" (one record per token exchange).
type AppEHR struct {
	BaseUrl                      string
	FirmUrlPrefix                string
	CredentialKey                string
	CredentialScope              string
	HTTPTimeoutInSeconds         int
	OutboundMaxRequestsPerSecond int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}
