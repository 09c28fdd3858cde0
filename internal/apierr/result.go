// Package apierr defines the structured error envelope returned to API
// callers and the classification of storage failures into it.
//
// Every failed operation produces an ErrorResult carrying an HTTP-equivalent
// status and at least one ErrorDetail with a stable machine-parsable code.
package apierr

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// Error codes returned in ErrorDetail.Code.
const (
	CodeRequired        = "required"
	CodeInvalid         = "invalid"
	CodeDuplicate       = "duplicate"
	CodeNotFound        = "not_found"
	CodeVersionConflict = "version_conflict"
	CodeUnauthorized    = "unauthorized"
	CodeServerInternal  = "server_internal"
)

// ErrorResult is the error envelope. It implements error so it can travel
// through ordinary error returns; callers unwrap it with errors.As.
type ErrorResult struct {
	Status int           `json:"status"`
	Errors []ErrorDetail `json:"errors"`
}

type ErrorDetail struct {
	ID     any         `json:"id,omitempty"`
	Code   string      `json:"code"`
	Source ErrorSource `json:"source"`
}

// ErrorSource locates the failing input: a JSON pointer into the entity or
// body, a query parameter, or a header. Meta carries structured context such
// as the conflicting version number.
type ErrorSource struct {
	Pointer   string         `json:"pointer,omitempty"`
	Parameter string         `json:"parameter,omitempty"`
	Header    string         `json:"header,omitempty"`
	Meta      map[string]any `json:"meta,omitempty"`
}

func (e *ErrorResult) Error() string {
	return fmt.Sprintf("api error %d: %+v", e.Status, e.Errors)
}

// InternalServer is the generic 500 envelope. The ID is a fresh incident
// reference: the site that collapsed the failure logs the same reference
// next to the diagnostic detail, which itself never reaches the caller.
func InternalServer() *ErrorResult {
	return &ErrorResult{
		Status: http.StatusInternalServerError,
		Errors: []ErrorDetail{{
			ID:     uuid.NewString(),
			Code:   CodeServerInternal,
			Source: ErrorSource{Pointer: "/server"},
		}},
	}
}

// Incident returns the incident reference of a 500 envelope, or "" when the
// result is not one.
func (e *ErrorResult) Incident() any {
	if e.Status != http.StatusInternalServerError || len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].ID
}

// Unauthorized reports a missing or invalid caller identity.
func Unauthorized() *ErrorResult {
	return &ErrorResult{
		Status: http.StatusUnauthorized,
		Errors: []ErrorDetail{{
			Code:   CodeUnauthorized,
			Source: ErrorSource{Header: "authorization"},
		}},
	}
}

// RequiredBody reports an absent request body.
func RequiredBody() *ErrorResult {
	return &ErrorResult{
		Status: http.StatusBadRequest,
		Errors: []ErrorDetail{{
			Code:   CodeRequired,
			Source: ErrorSource{Pointer: "/body"},
		}},
	}
}

// InvalidBody reports a body that could not be decoded.
func InvalidBody() *ErrorResult {
	return &ErrorResult{
		Status: http.StatusBadRequest,
		Errors: []ErrorDetail{{
			Code:   CodeInvalid,
			Source: ErrorSource{Pointer: "/body"},
		}},
	}
}

// RequiredParameter reports an absent query or path parameter.
func RequiredParameter(name string) *ErrorResult {
	return &ErrorResult{
		Status: http.StatusBadRequest,
		Errors: []ErrorDetail{{
			Code:   CodeRequired,
			Source: ErrorSource{Parameter: name},
		}},
	}
}

// InvalidParameter reports a malformed query or path parameter.
func InvalidParameter(name string, meta map[string]any) *ErrorResult {
	return &ErrorResult{
		Status: http.StatusBadRequest,
		Errors: []ErrorDetail{{
			Code:   CodeInvalid,
			Source: ErrorSource{Parameter: name, Meta: meta},
		}},
	}
}

// IDNotFound reports that no live row exists for the id.
func IDNotFound(entity string, id int64) *ErrorResult {
	return &ErrorResult{
		Status: http.StatusNotFound,
		Errors: []ErrorDetail{{
			ID:     id,
			Code:   CodeNotFound,
			Source: ErrorSource{Pointer: fmt.Sprintf("/data/%s/id", entity)},
		}},
	}
}

// PathNotFound reports a request for an unmapped route.
func PathNotFound() *ErrorResult {
	return &ErrorResult{
		Status: http.StatusNotFound,
		Errors: []ErrorDetail{{
			Code:   CodeNotFound,
			Source: ErrorSource{Pointer: "/path"},
		}},
	}
}

// VersionConflict reports a stale optimistic version. The meta carries the
// version the client submitted, not the currently stored one.
func VersionConflict(entity string, id int64, version int16) *ErrorResult {
	return &ErrorResult{
		Status: http.StatusConflict,
		Errors: []ErrorDetail{{
			ID:     id,
			Code:   CodeVersionConflict,
			Source: ErrorSource{
				Pointer: fmt.Sprintf("/data/%s/version", entity),
				Meta:    map[string]any{"version": version},
			},
		}},
	}
}
