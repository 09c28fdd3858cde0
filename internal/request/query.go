// Package request parses API Gateway inputs (query, path, headers,
// authorizer) into the typed values the services consume. Parse failures on
// required inputs surface as apierr results; optional inputs fall back to
// defaults instead of failing the request.
package request

import (
	"strconv"

	"github.com/mkalns/samplestore/internal/apierr"
)

// intParam parses an integer query parameter, returning def when the
// parameter is absent or malformed.
func intParam(params map[string]string, name string, def int) int {
	raw, ok := params[name]
	if !ok {
		return def
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}

// int64Param parses an optional int64 query parameter.
func int64Param(params map[string]string, name string) *int64 {
	raw, ok := params[name]
	if !ok {
		return nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &value
}

// Version parses the mandatory optimistic-concurrency version parameter.
func Version(params map[string]string) (int16, error) {
	raw, ok := params["version"]
	if !ok {
		return 0, apierr.RequiredParameter("version")
	}

	value, err := strconv.ParseInt(raw, 10, 16)
	if err != nil {
		return 0, apierr.InvalidParameter("version", map[string]any{"type": "int"})
	}
	return int16(value), nil
}

// Translate reports whether a localized single-language view was requested.
func Translate(params map[string]string) bool {
	return params["translate"] == "true"
}

// Query returns the optional case-insensitive substring filter.
func Query(params map[string]string) string {
	return params["query"]
}
