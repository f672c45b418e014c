package models

import (
	"encoding/json"
	"errors"
)

// ConfigurationsField is the envelope key under which the Apollo
// /configs/{appId}/{cluster}/{namespace} endpoint returns the key/value pairs.
const ConfigurationsField = "configurations"

// ErrMalformedJSON is returned when a config server response body is not
// valid JSON at all.
var ErrMalformedJSON = errors.New("configuration document is not valid JSON")

// ParseConfigResponse extracts the key/value pairs of a config server
// response body.
//
// When the body is an envelope with a non-null "configurations" value, that
// value is used. Otherwise the whole body is treated as a flat configuration.
// Bytes that are not JSON yield [ErrMalformedJSON]; valid JSON whose source
// is not an object yields [ErrNotJSONObject].
func ParseConfigResponse(body []byte) (*Configurations, error) {
	if !json.Valid(body) {
		return nil, ErrMalformedJSON
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil || envelope == nil {
		return nil, ErrNotJSONObject
	}

	source := body
	if raw, ok := envelope[ConfigurationsField]; ok && string(raw) != "null" {
		source = raw
	}

	cfgs := &Configurations{}
	if err := cfgs.UnmarshalJSON(source); err != nil {
		return nil, err
	}

	return cfgs, nil
}
