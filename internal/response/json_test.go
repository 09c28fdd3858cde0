package response

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkalns/samplestore/internal/apierr"
	"github.com/mkalns/samplestore/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestJSON(t *testing.T) {
	resp, err := JSON(map[string]string{"a": "b"}, 201)
	require.NoError(t, err)

	assert.Equal(t, 201, resp.StatusCode)
	assert.JSONEq(t, `{"a":"b"}`, resp.Body)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
}

func TestError_ClassifiedErrorKeepsStatus(t *testing.T) {
	resp, err := Error(context.Background(), discardLogger(), apierr.IDNotFound("sample", 5))
	require.NoError(t, err)

	assert.Equal(t, 404, resp.StatusCode)
	assert.Contains(t, resp.Body, `"not_found"`)
}

func TestError_UnclassifiedErrorCollapsesTo500(t *testing.T) {
	resp, err := Error(context.Background(), discardLogger(), errors.New("pq: deadlock detected"))
	require.NoError(t, err)

	assert.Equal(t, 500, resp.StatusCode)
	assert.Contains(t, resp.Body, `"server_internal"`)
	assert.NotContains(t, resp.Body, "deadlock")
}
