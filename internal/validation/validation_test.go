package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkalns/samplestore/internal/apierr"
	"github.com/mkalns/samplestore/internal/server/models"
)

func validRequest() models.SampleRequest {
	return models.SampleRequest{
		Name:   "Widget",
		Amount: decimal.RequireFromString("12.34"),
		Translations: []models.SampleTranslation{
			{Name: "Widget", Language: "en", Ordinal: 1},
		},
	}
}

func asResult(t *testing.T, err error) *apierr.ErrorResult {
	t.Helper()
	var result *apierr.ErrorResult
	require.True(t, errors.As(err, &result), "want *apierr.ErrorResult, got %v", err)
	return result
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, Validate(validRequest()))
}

func TestValidate_MissingName(t *testing.T) {
	req := validRequest()
	req.Name = ""

	result := asResult(t, Validate(req))

	assert.Equal(t, 400, result.Status)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, apierr.CodeRequired, result.Errors[0].Code)
	assert.Equal(t, "/body/name", result.Errors[0].Source.Pointer)
}

func TestValidate_NameTooLong(t *testing.T) {
	req := validRequest()
	req.Name = strings.Repeat("x", 101)

	result := asResult(t, Validate(req))

	require.Len(t, result.Errors, 1)
	assert.Equal(t, apierr.CodeInvalid, result.Errors[0].Code)
	assert.Equal(t, "/body/name", result.Errors[0].Source.Pointer)
	assert.Equal(t, map[string]any{"max": "100"}, result.Errors[0].Source.Meta)
}

func TestValidate_AmountOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{"below minimum", "0.001"},
		{"above maximum", "1000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Amount = decimal.RequireFromString(tt.amount)

			result := asResult(t, Validate(req))

			require.Len(t, result.Errors, 1)
			assert.Equal(t, apierr.CodeInvalid, result.Errors[0].Code)
			assert.Equal(t, "/body/amount", result.Errors[0].Source.Pointer)
		})
	}
}

func TestValidate_NestedTranslationPointer(t *testing.T) {
	req := validRequest()
	req.Translations = append(req.Translations, models.SampleTranslation{
		Name: "Vidjets", Language: "lv-latn", Ordinal: 2,
	})

	result := asResult(t, Validate(req))

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "/body/translations/1/language", result.Errors[0].Source.Pointer)
	assert.Equal(t, apierr.CodeInvalid, result.Errors[0].Code)
}

func TestValidate_EmptyTranslations(t *testing.T) {
	req := validRequest()
	req.Translations = nil

	result := asResult(t, Validate(req))

	require.Len(t, result.Errors, 1)
	assert.Equal(t, apierr.CodeRequired, result.Errors[0].Code)
	assert.Equal(t, "/body/translations", result.Errors[0].Source.Pointer)
}

func TestUniqueTranslations(t *testing.T) {
	tests := []struct {
		name         string
		translations []models.SampleTranslation
		wantIndex    int
		wantKey      string
	}{
		{
			name: "duplicate language",
			translations: []models.SampleTranslation{
				{Language: "en", Ordinal: 1},
				{Language: "de", Ordinal: 2},
				{Language: "en", Ordinal: 3},
			},
			wantIndex: 2,
			wantKey:   "language",
		},
		{
			name: "duplicate ordinal",
			translations: []models.SampleTranslation{
				{Language: "en", Ordinal: 1},
				{Language: "de", Ordinal: 1},
			},
			wantIndex: 1,
			wantKey:   "ordinal",
		},
		{
			name: "language collision wins over later ordinal collision",
			translations: []models.SampleTranslation{
				{Language: "en", Ordinal: 1},
				{Language: "en", Ordinal: 2},
				{Language: "de", Ordinal: 2},
			},
			wantIndex: 1,
			wantKey:   "language",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := asResult(t, UniqueTranslations(tt.translations))

			assert.Equal(t, 400, result.Status)
			require.Len(t, result.Errors, 1)
			assert.Equal(t, apierr.CodeDuplicate, result.Errors[0].Code)
			assert.Equal(t, "/body/translations", result.Errors[0].Source.Pointer)
			assert.Equal(t, tt.wantIndex, result.Errors[0].Source.Meta["index"])
			assert.Equal(t, tt.wantKey, result.Errors[0].Source.Meta["key"])
		})
	}
}

func TestUniqueTranslations_OK(t *testing.T) {
	assert.NoError(t, UniqueTranslations([]models.SampleTranslation{
		{Language: "en", Ordinal: 1},
		{Language: "de", Ordinal: 2},
	}))
	assert.NoError(t, UniqueTranslations(nil))
}
