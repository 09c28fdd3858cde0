package request

const (
	defaultPage = 1
	defaultSize = 20
)

// PageRequest carries offset-pagination inputs. Page and Size are always ≥ 1.
type PageRequest struct {
	Page int64
	Size int
}

// NewPageRequest reads page and size from the query string, applying defaults
// for absent, malformed or out-of-range values.
func NewPageRequest(params map[string]string) PageRequest {
	page := int64(intParam(params, "page", defaultPage))
	if page < 1 {
		page = defaultPage
	}

	size := intParam(params, "size", defaultSize)
	if size < 1 {
		size = defaultSize
	}

	return PageRequest{Page: page, Size: size}
}

// Limit is the row cap for the page query.
func (p PageRequest) Limit() int {
	return p.Size
}

// Offset is the number of rows skipped before the page, never negative.
func (p PageRequest) Offset() int64 {
	offset := (p.Page - 1) * int64(p.Size)
	if offset < 0 {
		return 0
	}
	return offset
}
