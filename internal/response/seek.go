// Package response builds the typed result envelopes and renders them as
// API Gateway JSON responses.
package response

import (
	"time"

	"github.com/mkalns/samplestore/internal/request"
)

// Seekable is implemented by rows that expose their keyset-ordering key.
type Seekable interface {
	SeekKey() (createdAt time.Time, id int64)
}

// Seek is one keyset page. CreatedAt and ID form the cursor for the next
// page; both are nil when no further page exists.
type Seek[T Seekable] struct {
	Data      []T        `json:"data"`
	Size      int        `json:"size"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	ID        *int64     `json:"id,omitempty"`
}

// NewSeek turns an overfetched result (up to size+1 rows) into a page. When
// the extra row is present it is dropped and the cursor is taken from the
// last row actually returned; otherwise the result set is exhausted and the
// cursor stays nil.
func NewSeek[T Seekable](data []T, req request.SeekRequest) Seek[T] {
	var (
		createdAt *time.Time
		id        *int64
	)

	size := req.Size
	if size < 0 {
		size = 0
	}

	if len(data) > size {
		data = data[:size]
		if len(data) > 0 {
			last, lastID := data[len(data)-1].SeekKey()
			createdAt, id = &last, &lastID
		}
	}

	if data == nil {
		data = []T{}
	}

	return Seek[T]{
		Data:      data,
		Size:      req.Size,
		CreatedAt: createdAt,
		ID:        id,
	}
}
