package remote

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/accessx/showcase/content"
)

func init() {
	Register("sqlite", func(ctx context.Context, cfg Config) (Store, error) {
		return openSQL(ctx, sqliteDialect, cfg.DSN)
	})
	Register("mysql", func(ctx context.Context, cfg Config) (Store, error) {
		return openSQL(ctx, mysqlDialect, strings.TrimPrefix(cfg.DSN, "mysql://"))
	})
}

// dialect holds the per-driver statements of the sqlx-backed store.
type dialect struct {
	driver  string
	schema  []string
	upsertW string
	upsertI string
}

var sqliteDialect = dialect{
	driver: "sqlite",
	schema: []string{
		`CREATE TABLE IF NOT EXISTS works (
			id TEXT NOT NULL,
			title TEXT NOT NULL,
			thumbnail_image TEXT,
			category TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			case_study_body TEXT,
			external_link TEXT,
			tags TEXT,
			slug TEXT PRIMARY KEY
		)`,
		`CREATE TABLE IF NOT EXISTS insights (
			id TEXT NOT NULL,
			title TEXT NOT NULL,
			featured_image TEXT,
			description TEXT NOT NULL DEFAULT '',
			body TEXT,
			author_name TEXT NOT NULL DEFAULT '',
			published_date TEXT NOT NULL DEFAULT '',
			slug TEXT PRIMARY KEY
		)`,
	},
	upsertW: `INSERT INTO works (id, title, thumbnail_image, category, description, case_study_body, external_link, tags, slug)
		VALUES (:id, :title, :thumbnail_image, :category, :description, :case_study_body, :external_link, :tags, :slug)
		ON CONFLICT(slug) DO UPDATE SET
			id = excluded.id,
			title = excluded.title,
			thumbnail_image = excluded.thumbnail_image,
			category = excluded.category,
			description = excluded.description,
			case_study_body = excluded.case_study_body,
			external_link = excluded.external_link,
			tags = excluded.tags`,
	upsertI: `INSERT INTO insights (id, title, featured_image, description, body, author_name, published_date, slug)
		VALUES (:id, :title, :featured_image, :description, :body, :author_name, :published_date, :slug)
		ON CONFLICT(slug) DO UPDATE SET
			id = excluded.id,
			title = excluded.title,
			featured_image = excluded.featured_image,
			description = excluded.description,
			body = excluded.body,
			author_name = excluded.author_name,
			published_date = excluded.published_date`,
}

var mysqlDialect = dialect{
	driver: "mysql",
	schema: []string{
		"CREATE TABLE IF NOT EXISTS works (" +
			"id VARCHAR(64) NOT NULL," +
			"title VARCHAR(255) NOT NULL," +
			"thumbnail_image TEXT NULL," +
			"category VARCHAR(255) NOT NULL DEFAULT ''," +
			"description TEXT NOT NULL," +
			"case_study_body MEDIUMTEXT NULL," +
			"external_link TEXT NULL," +
			"tags TEXT NULL," +
			"slug VARCHAR(191) NOT NULL PRIMARY KEY" +
			") DEFAULT CHARSET=utf8mb4",
		"CREATE TABLE IF NOT EXISTS insights (" +
			"id VARCHAR(64) NOT NULL," +
			"title VARCHAR(255) NOT NULL," +
			"featured_image TEXT NULL," +
			"description TEXT NOT NULL," +
			"body MEDIUMTEXT NULL," +
			"author_name VARCHAR(255) NOT NULL DEFAULT ''," +
			"published_date VARCHAR(10) NOT NULL DEFAULT ''," +
			"slug VARCHAR(191) NOT NULL PRIMARY KEY" +
			") DEFAULT CHARSET=utf8mb4",
	},
	upsertW: "INSERT INTO works (id, title, thumbnail_image, category, description, case_study_body, external_link, tags, slug) " +
		"VALUES (:id, :title, :thumbnail_image, :category, :description, :case_study_body, :external_link, :tags, :slug) " +
		"ON DUPLICATE KEY UPDATE id = VALUES(id), title = VALUES(title), thumbnail_image = VALUES(thumbnail_image), " +
		"category = VALUES(category), description = VALUES(description), case_study_body = VALUES(case_study_body), " +
		"external_link = VALUES(external_link), tags = VALUES(tags)",
	upsertI: "INSERT INTO insights (id, title, featured_image, description, body, author_name, published_date, slug) " +
		"VALUES (:id, :title, :featured_image, :description, :body, :author_name, :published_date, :slug) " +
		"ON DUPLICATE KEY UPDATE id = VALUES(id), title = VALUES(title), featured_image = VALUES(featured_image), " +
		"description = VALUES(description), body = VALUES(body), author_name = VALUES(author_name), " +
		"published_date = VALUES(published_date)",
}

// sqlStore is the sqlx-backed store shared by the sqlite and mysql drivers.
type sqlStore struct {
	db *sqlx.DB
	d  dialect
}

func openSQL(ctx context.Context, d dialect, dsn string) (Store, error) {
	db, err := sqlx.ConnectContext(ctx, d.driver, dsn)
	if err != nil {
		return nil, err
	}
	if d.driver == "sqlite" {
		db.SetMaxOpenConns(1)
	}
	s := &sqlStore{db: db, d: d}
	if err := s.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *sqlStore) ensureSchema(ctx context.Context) error {
	for _, stmt := range s.d.schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

type workRow struct {
	ID            string         `db:"id"`
	Title         string         `db:"title"`
	Thumbnail     sql.NullString `db:"thumbnail_image"`
	Category      string         `db:"category"`
	Description   string         `db:"description"`
	CaseStudyBody sql.NullString `db:"case_study_body"`
	ExternalLink  sql.NullString `db:"external_link"`
	Tags          sql.NullString `db:"tags"`
	Slug          string         `db:"slug"`
}

func (r workRow) detail() (content.WorkDetail, error) {
	tags, err := decodeTags(r.Tags)
	if err != nil {
		return content.WorkDetail{}, err
	}
	return content.WorkDetail{
		ID:            r.ID,
		Title:         r.Title,
		Thumbnail:     r.Thumbnail.String,
		Category:      r.Category,
		Description:   r.Description,
		CaseStudyBody: r.CaseStudyBody.String,
		ExternalLink:  r.ExternalLink.String,
		Tags:          tags,
		Slug:          r.Slug,
	}, nil
}

type insightRow struct {
	ID            string         `db:"id"`
	Title         string         `db:"title"`
	FeaturedImage sql.NullString `db:"featured_image"`
	Description   string         `db:"description"`
	Body          sql.NullString `db:"body"`
	AuthorName    string         `db:"author_name"`
	PublishedDate string         `db:"published_date"`
	Slug          string         `db:"slug"`
}

func (r insightRow) detail() content.InsightDetail {
	return content.InsightDetail{
		ID:            r.ID,
		Title:         r.Title,
		FeaturedImage: r.FeaturedImage.String,
		Description:   r.Description,
		Body:          r.Body.String,
		AuthorName:    r.AuthorName,
		PublishedDate: r.PublishedDate,
		Slug:          r.Slug,
	}
}

func (s *sqlStore) Work(ctx context.Context, slug string) (content.WorkDetail, bool, error) {
	var row workRow
	err := s.db.GetContext(ctx, &row, `SELECT id, title, thumbnail_image, category, description,
		case_study_body, external_link, tags, slug FROM works WHERE slug = ? LIMIT 1`, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return content.WorkDetail{}, false, nil
	}
	if err != nil {
		return content.WorkDetail{}, false, err
	}
	w, err := row.detail()
	if err != nil {
		return content.WorkDetail{}, false, err
	}
	return w, true, nil
}

func (s *sqlStore) Insight(ctx context.Context, slug string) (content.InsightDetail, bool, error) {
	var row insightRow
	err := s.db.GetContext(ctx, &row, `SELECT id, title, featured_image, description, body,
		author_name, published_date, slug FROM insights WHERE slug = ? LIMIT 1`, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return content.InsightDetail{}, false, nil
	}
	if err != nil {
		return content.InsightDetail{}, false, err
	}
	return row.detail(), true, nil
}

func (s *sqlStore) PutWork(ctx context.Context, w content.WorkDetail) error {
	tags, err := encodeTags(w.Tags)
	if err != nil {
		return err
	}
	row := workRow{
		ID:            w.ID,
		Title:         w.Title,
		Thumbnail:     nullString(w.Thumbnail),
		Category:      w.Category,
		Description:   w.Description,
		CaseStudyBody: nullString(w.CaseStudyBody),
		ExternalLink:  nullString(w.ExternalLink),
		Tags:          tags,
		Slug:          w.Slug,
	}
	_, err = s.db.NamedExecContext(ctx, s.d.upsertW, row)
	return err
}

func (s *sqlStore) PutInsight(ctx context.Context, in content.InsightDetail) error {
	row := insightRow{
		ID:            in.ID,
		Title:         in.Title,
		FeaturedImage: nullString(in.FeaturedImage),
		Description:   in.Description,
		Body:          nullString(in.Body),
		AuthorName:    in.AuthorName,
		PublishedDate: in.PublishedDate,
		Slug:          in.Slug,
	}
	_, err := s.db.NamedExecContext(ctx, s.d.upsertI, row)
	return err
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

// Tags are stored as a JSON array; NULL and "[]" both mean no tags.
func encodeTags(tags []string) (sql.NullString, error) {
	if len(tags) == 0 {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encode tags: %w", err)
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func decodeTags(v sql.NullString) ([]string, error) {
	if !v.Valid || strings.TrimSpace(v.String) == "" {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(v.String), &tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	if len(tags) == 0 {
		return nil, nil
	}
	return tags, nil
}
