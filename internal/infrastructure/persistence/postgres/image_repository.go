package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/DanielPopoola/aquapure/internal/application"
	"github.com/DanielPopoola/aquapure/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const imageColumns = `id::text, file_name, object_name, file_url, content_type, file_size, description, tags, uploaded_at`

// ImageRepository is the Postgres-backed image search index.
type ImageRepository struct {
	db *DB
}

func NewImageRepository(db *DB) *ImageRepository {
	return &ImageRepository{db: db}
}

var _ application.ImageIndex = (*ImageRepository)(nil)

func (r *ImageRepository) Save(ctx context.Context, doc *domain.ImageDocument) error {
	query := `
		INSERT INTO images (
			id, file_name, object_name, file_url, content_type, file_size, description, tags, uploaded_at
		) VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			file_name = EXCLUDED.file_name,
			object_name = EXCLUDED.object_name,
			file_url = EXCLUDED.file_url,
			content_type = EXCLUDED.content_type,
			file_size = EXCLUDED.file_size,
			description = EXCLUDED.description,
			tags = EXCLUDED.tags,
			uploaded_at = EXCLUDED.uploaded_at
	`

	m := toImageModel(doc)
	_, err := r.db.Pool.Exec(ctx, query,
		m.ID,
		m.FileName,
		m.ObjectName,
		m.FileURL,
		m.ContentType,
		m.FileSize,
		m.Description,
		m.Tags,
		m.UploadedAt,
	)
	if err != nil {
		return storeFailure("save image", err)
	}

	return nil
}

func (r *ImageRepository) FindByID(ctx context.Context, id string) (*domain.ImageDocument, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, application.ErrRecordNotFound
	}

	query := `SELECT ` + imageColumns + ` FROM images WHERE id = $1::uuid`

	doc, err := scanImage(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, application.ErrRecordNotFound
		}
		return nil, storeFailure("find image", err)
	}

	return doc, nil
}

// SearchByTag matches images having a tag that contains keyword, ignoring case.
func (r *ImageRepository) SearchByTag(ctx context.Context, tag string) ([]*domain.ImageDocument, error) {
	query := `
		SELECT ` + imageColumns + `
		FROM images
		WHERE EXISTS (SELECT 1 FROM unnest(tags) AS t WHERE t ILIKE $1)
		ORDER BY uploaded_at DESC, id
	`
	return r.search(ctx, "search images by tag", query, tag)
}

func (r *ImageRepository) SearchByDescription(ctx context.Context, keyword string) ([]*domain.ImageDocument, error) {
	query := `
		SELECT ` + imageColumns + `
		FROM images
		WHERE description ILIKE $1
		ORDER BY uploaded_at DESC, id
	`
	return r.search(ctx, "search images by description", query, keyword)
}

func (r *ImageRepository) SearchByFileName(ctx context.Context, keyword string) ([]*domain.ImageDocument, error) {
	query := `
		SELECT ` + imageColumns + `
		FROM images
		WHERE file_name ILIKE $1
		ORDER BY uploaded_at DESC, id
	`
	return r.search(ctx, "search images by file name", query, keyword)
}

func (r *ImageRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return application.ErrRecordNotFound
	}

	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM images WHERE id = $1::uuid`, id)
	if err != nil {
		return storeFailure("delete image", err)
	}
	if tag.RowsAffected() == 0 {
		return application.ErrRecordNotFound
	}
	return nil
}

func (r *ImageRepository) search(ctx context.Context, op, query, keyword string) ([]*domain.ImageDocument, error) {
	rows, err := r.db.Pool.Query(ctx, query, containsPattern(keyword))
	if err != nil {
		return nil, storeFailure(op, err)
	}

	docs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.ImageDocument, error) {
		return scanImage(row)
	})
	if err != nil {
		return nil, storeFailure(op, err)
	}

	return docs, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching keyword anywhere, with
// wildcard characters in keyword taken literally.
func containsPattern(keyword string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(keyword)) + "%"
}

func scanImage(row pgx.Row) (*domain.ImageDocument, error) {
	var m ImageModel
	err := row.Scan(
		&m.ID, &m.FileName, &m.ObjectName, &m.FileURL, &m.ContentType,
		&m.FileSize, &m.Description, &m.Tags, &m.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	return toImageDocument(m), nil
}
