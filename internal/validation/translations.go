package validation

import (
	"net/http"

	"github.com/mkalns/samplestore/internal/apierr"
	"github.com/mkalns/samplestore/internal/server/models"
)

// UniqueTranslations verifies that the submitted translation set has unique
// language and unique ordinal values. Scanning stops at the first collision,
// which is reported with its index and the colliding key. This runs before
// any storage call.
func UniqueTranslations(translations []models.SampleTranslation) error {
	languages := make(map[string]struct{}, len(translations))
	ordinals := make(map[int16]struct{}, len(translations))

	for i, t := range translations {
		var key string
		if _, dup := languages[t.Language]; dup {
			key = "language"
		} else if _, dup := ordinals[t.Ordinal]; dup {
			key = "ordinal"
		}
		languages[t.Language] = struct{}{}
		ordinals[t.Ordinal] = struct{}{}

		if key == "" {
			continue
		}

		return &apierr.ErrorResult{
			Status: http.StatusBadRequest,
			Errors: []apierr.ErrorDetail{{
				Code: apierr.CodeDuplicate,
				Source: apierr.ErrorSource{
					Pointer: "/body/translations",
					Meta:    map[string]any{"index": i, "key": key},
				},
			}},
		}
	}

	return nil
}
