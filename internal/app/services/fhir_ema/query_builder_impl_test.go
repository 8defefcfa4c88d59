package fhir_ema

import (
	"net/url"
	"testing"

	"ehr-gateway-service/internal/app/models"
	"ehr-gateway-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueryBuilder() *queryBuilder {
	return NewQueryBuilder("https://ehr.example.com/", "/acme").(*queryBuilder)
}

func TestQueryBuilderURLs(t *testing.T) {
	b := newTestQueryBuilder()

	assert.Equal(t, "https://ehr.example.com/acme/ema/fhir/v2/Patient", b.EntityURL(models.ResourcePatient))
	assert.Equal(t, "https://ehr.example.com/acme/ema/fhir/v2/Slot?page=3", b.PageURL(models.ResourceSlot, 3))
	assert.Equal(t, "https://ehr.example.com/acme/ema/fhir/v2/Appointment/42", b.ByIDURL(models.ResourceAppointment, "42"))
	assert.Equal(t, "https://ehr.example.com/acme/ema/fhir/v2/Patient/a%2Fb", b.ByIDURL(models.ResourcePatient, "a/b"), "id should be path escaped")
	assert.Equal(t, "https://ehr.example.com/acme/ema/ws/oauth2/grant", b.OAuthGrantURL())
	assert.Equal(t, "https://ehr.example.com/acme/ema/fhir/v2/ValueSet/appointment-type", b.AppointmentTypeSystem())
}

func TestQueryBuilderSearchURL(t *testing.T) {
	b := newTestQueryBuilder()

	t.Run("Keeps Filter Order", func(t *testing.T) {
		filters := requests.SearchFilters{}.Add("given", "John").Add("active", "true")

		got := b.SearchURL(models.ResourcePatient, filters)

		assert.Equal(t, "https://ehr.example.com/acme/ema/fhir/v2/Patient?given=John&active=true", got)
	})

	t.Run("Drops Blank Values And Trims", func(t *testing.T) {
		filters := requests.SearchFilters{}.Add("given", "  ").Add("family", " Doe ").Add("gender", "")

		got := b.SearchURL(models.ResourcePatient, filters)

		assert.Equal(t, "https://ehr.example.com/acme/ema/fhir/v2/Patient?family=Doe", got)
	})

	t.Run("No Filters Leaves No Separator", func(t *testing.T) {
		got := b.SearchURL(models.ResourcePatient, nil)

		assert.Equal(t, "https://ehr.example.com/acme/ema/fhir/v2/Patient", got)
	})

	t.Run("Encodes Keys And Values", func(t *testing.T) {
		filters := requests.SearchFilters{}.Add("name", "Mary Jane&Co")

		got := b.SearchURL(models.ResourcePatient, filters)

		parsed, err := url.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, "Mary Jane&Co", parsed.Query().Get("name"))
		assert.Len(t, parsed.Query(), 1)
	})

	t.Run("Expands Bare Date On Appointment", func(t *testing.T) {
		filters := requests.SearchFilters{}.Add("date", "2024-01-01")

		got := b.SearchURL(models.ResourceAppointment, filters)

		parsed, err := url.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, []string{"ge2024-01-01T00:00:00.000Z", "le2024-01-01T23:59:59.999Z"}, parsed.Query()["date"])
	})

	t.Run("Prefixed Date Passes Through", func(t *testing.T) {
		filters := requests.SearchFilters{}.Add("date", "ge2024-01-01").Add("date2", "le2024-01-31")

		got := b.SearchURL(models.ResourceSlot, filters)

		parsed, err := url.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, []string{"ge2024-01-01", "le2024-01-31"}, parsed.Query()["date"], "date2 should become a second date")
		assert.Empty(t, parsed.Query()["date2"])
	})

	t.Run("Bare Date On Patient Is Not Expanded", func(t *testing.T) {
		filters := requests.SearchFilters{}.Add("date", "2024-01-01")

		got := b.SearchURL(models.ResourcePatient, filters)

		assert.Equal(t, "https://ehr.example.com/acme/ema/fhir/v2/Patient?date=2024-01-01", got)
	})

	t.Run("Patient Reference Prefix", func(t *testing.T) {
		filters := requests.SearchFilters{}.Add("patient", "89145")

		got := b.SearchURL(models.ResourceAppointment, filters)

		parsed, err := url.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, "Patient/89145", parsed.Query().Get("patient"))
	})

	t.Run("Patient Reference Already Prefixed", func(t *testing.T) {
		filters := requests.SearchFilters{}.Add("patient", "Patient/89145")

		got := b.SearchURL(models.ResourceAppointment, filters)

		parsed, err := url.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, "Patient/89145", parsed.Query().Get("patient"))
	})
}
