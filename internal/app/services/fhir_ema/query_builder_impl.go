package fhir_ema

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ehr-gateway-service/internal/app/contracts"
	"ehr-gateway-service/internal/app/models"
	"ehr-gateway-service/internal/pkg/constvars"
	"ehr-gateway-service/internal/pkg/dto/requests"
)

const (
	bareDateLayout  = "2006-01-02"
	startOfDayClock = "T00:00:00.000Z"
	endOfDayClock   = "T23:59:59.999Z"
)

type queryBuilder struct {
	BaseUrl       string
	FirmUrlPrefix string
}

func NewQueryBuilder(baseUrl, firmUrlPrefix string) contracts.EHRQueryBuilder {
	return &queryBuilder{
		BaseUrl:       strings.TrimRight(baseUrl, "/"),
		FirmUrlPrefix: strings.Trim(firmUrlPrefix, "/"),
	}
}

func (b *queryBuilder) fhirRoot() string {
	return fmt.Sprintf("%s/%s/%s", b.BaseUrl, b.FirmUrlPrefix, constvars.EmaFhirPath)
}

func (b *queryBuilder) EntityURL(resource models.Resource) string {
	return fmt.Sprintf("%s/%s", b.fhirRoot(), resource)
}

func (b *queryBuilder) PageURL(resource models.Resource, page int) string {
	return fmt.Sprintf("%s?%s=%s", b.EntityURL(resource), constvars.FhirSearchParamPage, strconv.Itoa(page))
}

func (b *queryBuilder) ByIDURL(resource models.Resource, id string) string {
	return fmt.Sprintf("%s/%s", b.EntityURL(resource), url.PathEscape(id))
}

// SearchURL appends filters as a query string in the order given. Blank
// values are dropped and the result never ends in a separator.
func (b *queryBuilder) SearchURL(resource models.Resource, filters requests.SearchFilters) string {
	var sb strings.Builder
	sb.WriteString(b.EntityURL(resource))
	sb.WriteString("?")

	for _, filter := range filters {
		key := strings.TrimSpace(filter.Key)
		value := strings.TrimSpace(filter.Value)
		if key == "" || value == "" {
			continue
		}

		switch {
		case key == constvars.FhirSearchParamDate && resource.HasDateRange() && isBareDate(value):
			writeParam(&sb, constvars.FhirSearchParamDate, constvars.FhirDatePrefixGreaterOrEqual+value+startOfDayClock)
			writeParam(&sb, constvars.FhirSearchParamDate, constvars.FhirDatePrefixLessOrEqual+value+endOfDayClock)
		case key == constvars.FhirSearchParamDateUpperBound:
			writeParam(&sb, constvars.FhirSearchParamDate, value)
		case key == constvars.FhirSearchParamPatient && !strings.HasPrefix(value, constvars.FhirReferencePatientPrefix):
			writeParam(&sb, key, constvars.FhirReferencePatientPrefix+value)
		default:
			writeParam(&sb, key, value)
		}
	}

	return strings.TrimRight(sb.String(), "&?/")
}

func (b *queryBuilder) OAuthGrantURL() string {
	return fmt.Sprintf("%s/%s/%s", b.BaseUrl, b.FirmUrlPrefix, constvars.EmaOAuthGrantPath)
}

func (b *queryBuilder) AppointmentTypeSystem() string {
	return fmt.Sprintf("%s/%s", b.fhirRoot(), constvars.EmaValueSetPath)
}

func writeParam(sb *strings.Builder, key, value string) {
	sb.WriteString(url.QueryEscape(key))
	sb.WriteString("=")
	sb.WriteString(url.QueryEscape(value))
	sb.WriteString("&")
}

func isBareDate(value string) bool {
	_, err := time.Parse(bareDateLayout, value)
	return err == nil
}
