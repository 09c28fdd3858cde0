// Package models holds the sample domain types shared by the repositories,
// services and transport layer.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sample is the versioned, soft-deletable aggregate root. The store owns id,
// version and the audit columns; the service never writes version directly.
type Sample struct {
	ID             int64               `json:"id"`
	Name           string              `json:"name"`
	Description    *string             `json:"description,omitempty"`
	Amount         decimal.Decimal     `json:"amount"`
	Version        int16               `json:"version"`
	Translations   []SampleTranslation `json:"translations,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	CreatedBy      string              `json:"createdBy,omitempty"`
	LastModifiedAt time.Time           `json:"lastModifiedAt"`
	LastModifiedBy string              `json:"lastModifiedBy,omitempty"`
}

// SampleListItem is the trimmed row returned by the list and seek queries.
// Name and description may come from the best-matching translation.
type SampleListItem struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// SeekKey returns the keyset-ordering key of the row.
func (s *SampleListItem) SeekKey() (time.Time, int64) {
	return s.CreatedAt, s.ID
}

// SampleTranslation is a per-language child record of a Sample, keyed by
// (sample, language). Ordinal is the display order within the sample.
type SampleTranslation struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=200"`
	Language    string  `json:"language" validate:"required,min=2,max=4"`
	Ordinal     int16   `json:"ordinal" validate:"required,min=1,max=100"`
}

// SampleRequest is the write payload for create and update. Field rules are
// enforced by validation.Validate before the request reaches a service; the
// translation set must additionally have unique languages and ordinals.
type SampleRequest struct {
	Name         string              `json:"name" validate:"required,min=1,max=100"`
	Description  *string             `json:"description,omitempty" validate:"omitempty,max=2000"`
	Amount       decimal.Decimal     `json:"amount" validate:"required,gte=0.01,lte=999999999.99"`
	Translations []SampleTranslation `json:"translations" validate:"required,min=1,max=100,dive"`
}
