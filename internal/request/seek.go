package request

import "time"

// SeekRequest carries keyset-pagination inputs. The cursor is open when both
// CreatedAt and ID are present; a fresh query leaves both nil.
type SeekRequest struct {
	Size      int
	CreatedAt *time.Time
	ID        *int64
}

// NewSeekRequest reads size and the (createdAt, id) cursor from the query
// string. A malformed createdAt is treated as cursor-absent, not an error,
// so a stale or mangled link degrades to the first page.
func NewSeekRequest(params map[string]string) SeekRequest {
	size := intParam(params, "size", defaultSize)
	if size < 1 {
		size = defaultSize
	}

	var createdAt *time.Time
	if raw, ok := params["createdAt"]; ok {
		if value, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			createdAt = &value
		}
	}

	return SeekRequest{
		Size:      size,
		CreatedAt: createdAt,
		ID:        int64Param(params, "id"),
	}
}

// Limit is the row cap for the seek query: one extra row beyond the page
// size, used to detect whether a next page exists.
func (s SeekRequest) Limit() int {
	return s.Size + 1
}
