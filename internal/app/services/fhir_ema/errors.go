package fhir_ema

import "errors"

var errInvalidJSON = errors.New("response body is not valid JSON")
