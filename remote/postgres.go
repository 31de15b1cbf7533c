package remote

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/accessx/showcase/content"
)

func init() {
	Register("postgres", openPostgres)
}

type postgresStore struct {
	pool *pgxpool.Pool
}

func openPostgres(ctx context.Context, cfg Config) (Store, error) {
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, err
	}
	pc.MaxConnIdleTime = 5 * time.Minute
	pc.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return &postgresStore{pool: pool}, nil
}

func (s *postgresStore) Work(ctx context.Context, slug string) (content.WorkDetail, bool, error) {
	const q = `
SELECT id::text, title, COALESCE(thumbnail_image, ''), category, description,
       COALESCE(case_study_body, ''), COALESCE(external_link, ''), COALESCE(tags, '{}'), slug
FROM works
WHERE slug = $1
LIMIT 1
`
	var w content.WorkDetail
	err := s.pool.QueryRow(ctx, q, slug).Scan(
		&w.ID, &w.Title, &w.Thumbnail, &w.Category, &w.Description,
		&w.CaseStudyBody, &w.ExternalLink, &w.Tags, &w.Slug,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return content.WorkDetail{}, false, nil
	}
	if err != nil {
		return content.WorkDetail{}, false, err
	}
	if len(w.Tags) == 0 {
		w.Tags = nil
	}
	return w, true, nil
}

func (s *postgresStore) Insight(ctx context.Context, slug string) (content.InsightDetail, bool, error) {
	const q = `
SELECT id::text, title, COALESCE(featured_image, ''), description, COALESCE(body, ''),
       author_name, COALESCE(to_char(published_date, 'YYYY-MM-DD'), ''), slug
FROM insights
WHERE slug = $1
LIMIT 1
`
	var in content.InsightDetail
	err := s.pool.QueryRow(ctx, q, slug).Scan(
		&in.ID, &in.Title, &in.FeaturedImage, &in.Description, &in.Body,
		&in.AuthorName, &in.PublishedDate, &in.Slug,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return content.InsightDetail{}, false, nil
	}
	if err != nil {
		return content.InsightDetail{}, false, err
	}
	return in, true, nil
}

func (s *postgresStore) PutWork(ctx context.Context, w content.WorkDetail) error {
	const q = `
INSERT INTO works (id, title, thumbnail_image, category, description, case_study_body, external_link, tags, slug)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8, $9)
ON CONFLICT (slug) DO UPDATE
SET id = EXCLUDED.id,
    title = EXCLUDED.title,
    thumbnail_image = EXCLUDED.thumbnail_image,
    category = EXCLUDED.category,
    description = EXCLUDED.description,
    case_study_body = EXCLUDED.case_study_body,
    external_link = EXCLUDED.external_link,
    tags = EXCLUDED.tags
`
	tags := w.Tags
	if tags == nil {
		tags = []string{}
	}
	_, err := s.pool.Exec(ctx, q, w.ID, w.Title, w.Thumbnail, w.Category, w.Description,
		w.CaseStudyBody, w.ExternalLink, tags, w.Slug)
	return err
}

func (s *postgresStore) PutInsight(ctx context.Context, in content.InsightDetail) error {
	const q = `
INSERT INTO insights (id, title, featured_image, description, body, author_name, published_date, slug)
VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), $6, NULLIF($7::text, '')::date, $8)
ON CONFLICT (slug) DO UPDATE
SET id = EXCLUDED.id,
    title = EXCLUDED.title,
    featured_image = EXCLUDED.featured_image,
    description = EXCLUDED.description,
    body = EXCLUDED.body,
    author_name = EXCLUDED.author_name,
    published_date = EXCLUDED.published_date
`
	_, err := s.pool.Exec(ctx, q, in.ID, in.Title, in.FeaturedImage, in.Description,
		in.Body, in.AuthorName, in.PublishedDate, in.Slug)
	return err
}

func (s *postgresStore) Close() error {
	s.pool.Close()
	return nil
}
