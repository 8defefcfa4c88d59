package httpclient

import (
	"net/http"
	"time"

	"ehr-gateway-service/internal/app/config"
)

// NewHTTPClient returns the client used for every upstream call. A zero
// timeout leaves the platform default in place.
func NewHTTPClient(internalConfig *config.InternalConfig) *http.Client {
	client := &http.Client{
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 20,
			IdleConnTimeout:     90 * time.Second,
		},
	}
	if internalConfig.EHR.HTTPTimeoutInSeconds > 0 {
		client.Timeout = time.Duration(internalConfig.EHR.HTTPTimeoutInSeconds) * time.Second
	}
	return client
}
