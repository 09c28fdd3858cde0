package response

import "github.com/mkalns/samplestore/internal/request"

// Page is one offset page plus the total match count for the same filter.
type Page[T any] struct {
	Data  []T   `json:"data"`
	Page  int64 `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
}

func NewPage[T any](data []T, total int64, req request.PageRequest) Page[T] {
	if data == nil {
		data = []T{}
	}

	return Page[T]{
		Data:  data,
		Page:  req.Page,
		Size:  req.Size,
		Total: total,
	}
}
