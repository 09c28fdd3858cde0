package request

import (
	"strconv"

	"github.com/mkalns/samplestore/internal/apierr"
)

// PathID extracts a mandatory int64 path parameter.
func PathID(params map[string]string, key string) (int64, error) {
	raw, ok := params[key]
	if !ok || raw == "" {
		return 0, apierr.PathNotFound()
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apierr.InvalidParameter(key, map[string]any{"type": "int"})
	}
	return value, nil
}
