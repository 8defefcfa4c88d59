package fhir_dto

import (
	"net/url"
	"strconv"

	"ehr-gateway-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

type Bundle struct {
	ResourceType string        `json:"resourceType"`
	ID           string        `json:"id,omitempty"`
	Type         string        `json:"type,omitempty"`
	Total        *int          `json:"total,omitempty"`
	Link         []BundleLink  `json:"link,omitempty"`
	Entry        []BundleEntry `json:"entry,omitempty"`
}

type BundleLink struct {
	Relation string `json:"relation"`
	URL      string `json:"url"`
}

type BundleEntry struct {
	FullURL  string          `json:"fullUrl,omitempty"`
	Resource json.RawMessage `json:"resource,omitempty"`
}

// NextPage returns the page number carried by the bundle's next link.
func (b *Bundle) NextPage() (int, bool) {
	if b == nil {
		return 0, false
	}
	for _, link := range b.Link {
		if link.Relation != constvars.FhirBundleLinkRelationNext {
			continue
		}
		parsed, err := url.Parse(link.URL)
		if err != nil {
			return 0, false
		}
		page, err := strconv.Atoi(parsed.Query().Get(constvars.FhirSearchParamPage))
		if err != nil {
			return 0, false
		}
		return page, true
	}
	return 0, false
}
