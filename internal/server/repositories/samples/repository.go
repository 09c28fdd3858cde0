package samples

import (
	"context"

	"github.com/mkalns/samplestore/internal/request"
	"github.com/mkalns/samplestore/internal/server/models"
)

// SeekFilter narrows the seek query. Language selects the preferred
// translation for display names; Query is a case-insensitive substring match
// against the primary name or the displayed translation name.
type SeekFilter struct {
	Language string
	Query    string
}

// Repository is the storage contract for samples. The production
// implementation is PostgresRepository; tests may substitute their own.
type Repository interface {
	Seek(ctx context.Context, filter SeekFilter, req request.SeekRequest) ([]*models.SampleListItem, error)
	List(ctx context.Context, query string, req request.PageRequest) ([]*models.SampleListItem, error)
	Count(ctx context.Context, query string) (int64, error)
	Get(ctx context.Context, id int64, translate bool, language string) (*models.Sample, error)
	Create(ctx context.Context, req *models.SampleRequest, actor string) (*models.Sample, error)
	Update(ctx context.Context, id int64, req *models.SampleRequest, version int16, actor string) (*models.Sample, error)
	Delete(ctx context.Context, id int64, version int16, actor string) error
	Translations(ctx context.Context, id int64) ([]models.SampleTranslation, error)
	InsertTranslations(ctx context.Context, id int64, translations []models.SampleTranslation) ([]models.SampleTranslation, error)
	ReplaceTranslations(ctx context.Context, id int64, translations []models.SampleTranslation) ([]models.SampleTranslation, error)
}
