package requests

import "strings"

// SearchFilter is a single upstream search parameter.
type SearchFilter struct {
	Key   string
	Value string
}

// SearchFilters keeps search parameters in insertion order so the outbound
// query string mirrors what the caller sent.
type SearchFilters []SearchFilter

func (f SearchFilters) Add(key, value string) SearchFilters {
	return append(f, SearchFilter{Key: key, Value: value})
}

func (f SearchFilters) Get(key string) (string, bool) {
	for _, filter := range f {
		if filter.Key == key {
			return filter.Value, true
		}
	}
	return "", false
}

// HasValues reports whether at least one filter carries a non-blank value.
func (f SearchFilters) HasValues() bool {
	for _, filter := range f {
		if strings.TrimSpace(filter.Value) != "" {
			return true
		}
	}
	return false
}
