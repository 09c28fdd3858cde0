// Package services orchestrates repository calls into the sample business
// operations: transactional writes, paginated reads and the localized get.
package services

import (
	"context"
	"database/sql"

	"golang.org/x/sync/errgroup"

	"github.com/mkalns/samplestore/internal/dbx"
	"github.com/mkalns/samplestore/internal/logging"
	"github.com/mkalns/samplestore/internal/request"
	"github.com/mkalns/samplestore/internal/response"
	"github.com/mkalns/samplestore/internal/server/models"
	"github.com/mkalns/samplestore/internal/server/repositories/repomanager"
	"github.com/mkalns/samplestore/internal/server/repositories/samples"
	"github.com/mkalns/samplestore/internal/validation"
)

type SampleService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

func NewSampleService(db *sql.DB, repos repomanager.RepositoryManager, logger logging.Logger) *SampleService {
	return &SampleService{
		db:     db,
		repos:  repos,
		logger: logger,
	}
}

// Seek returns one keyset page. A single statement, no transaction.
func (s *SampleService) Seek(ctx context.Context, filter samples.SeekFilter, req request.SeekRequest) (response.Seek[*models.SampleListItem], error) {
	list, err := s.repos.Samples(s.db).Seek(ctx, filter, req)
	if err != nil {
		return response.Seek[*models.SampleListItem]{}, err
	}

	return response.NewSeek(list, req), nil
}

// List returns one offset page plus the total count. The two reads are
// independent, so they run concurrently and are joined before returning;
// either failure fails the whole operation.
func (s *SampleService) List(ctx context.Context, query string, req request.PageRequest) (response.Page[*models.SampleListItem], error) {
	repo := s.repos.Samples(s.db)

	var (
		list  []*models.SampleListItem
		count int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, err = repo.List(gctx, query, req)
		return err
	})
	g.Go(func() error {
		var err error
		count, err = repo.Count(gctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		return response.Page[*models.SampleListItem]{}, err
	}

	return response.NewPage(list, count, req), nil
}

// Get fetches one sample. With translate set, only the single localized
// record is needed and the translation-list query is skipped; otherwise the
// entity and its full translation set are read concurrently.
func (s *SampleService) Get(ctx context.Context, id int64, translate bool, language string) (*models.Sample, error) {
	repo := s.repos.Samples(s.db)

	if translate {
		return repo.Get(ctx, id, true, language)
	}

	var (
		sample       *models.Sample
		translations []models.SampleTranslation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sample, err = repo.Get(gctx, id, false, language)
		return err
	})
	g.Go(func() error {
		var err error
		translations, err = repo.Translations(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sample.Translations = translations
	return sample, nil
}

// Create inserts the sample and its translation set atomically.
func (s *SampleService) Create(ctx context.Context, req *models.SampleRequest, actor string) (*models.Sample, error) {
	if err := validation.UniqueTranslations(req.Translations); err != nil {
		return nil, err
	}

	var sample *models.Sample
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Samples(tx)

		var err error
		sample, err = repo.Create(ctx, req, actor)
		if err != nil {
			return err
		}

		sample.Translations, err = repo.InsertTranslations(ctx, sample.ID, req.Translations)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "sample created", "id", sample.ID, "actor", actor)
	return sample, nil
}

// Update applies a version-gated content update and reconciles the
// translation set to the submitted one, all in a single transaction.
func (s *SampleService) Update(ctx context.Context, id int64, req *models.SampleRequest, version int16, actor string) (*models.Sample, error) {
	if err := validation.UniqueTranslations(req.Translations); err != nil {
		return nil, err
	}

	var sample *models.Sample
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Samples(tx)

		var err error
		sample, err = repo.Update(ctx, id, req, version, actor)
		if err != nil {
			return err
		}

		sample.Translations, err = repo.ReplaceTranslations(ctx, id, req.Translations)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "sample updated", "id", id, "version", sample.Version, "actor", actor)
	return sample, nil
}

// Delete soft-deletes the sample, gated on the submitted version.
func (s *SampleService) Delete(ctx context.Context, id int64, version int16, actor string) error {
	if err := s.repos.Samples(s.db).Delete(ctx, id, version, actor); err != nil {
		return err
	}

	s.logger.Info(ctx, "sample deleted", "id", id, "actor", actor)
	return nil
}
