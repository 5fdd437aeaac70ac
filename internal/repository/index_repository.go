package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tellwe/obedir-qr-codes/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const indexColumns = `id, name, sku, category, status, scans, created_at, updated_at`

// indexRepository implements the IndexRepository interface using PostgreSQL.
type indexRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewIndexRepository creates a new PostgreSQL-backed passport index repository.
func NewIndexRepository(pool *pgxpool.Pool, logger zerolog.Logger) IndexRepository {
	return &indexRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "passport_index").Logger(),
	}
}

// Upsert inserts the entry or refreshes its descriptive columns.
func (r *indexRepository) Upsert(ctx context.Context, entry *model.IndexEntry) error {
	status := entry.Status
	if status == "" {
		status = model.StatusActive
	}

	query := `
		INSERT INTO passport_index (id, name, sku, category, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			sku = EXCLUDED.sku,
			category = EXCLUDED.category,
			updated_at = NOW()
		RETURNING ` + indexColumns

	row := r.pool.QueryRow(ctx, query, entry.ID, entry.Name, entry.SKU, entry.Category, string(status))
	stored, err := scanEntry(row)
	if err != nil {
		r.logger.Error().Err(err).Str("passport_id", entry.ID.String()).Msg("failed to upsert index entry")
		return fmt.Errorf("failed to upsert index entry: %w", err)
	}

	*entry = *stored
	return nil
}

// GetByID retrieves a single index entry by passport ID.
func (r *indexRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.IndexEntry, error) {
	query := `SELECT ` + indexColumns + ` FROM passport_index WHERE id = $1`

	entry, err := scanEntry(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("passport_id", id.String()).Msg("index entry not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("passport_id", id.String()).Msg("failed to query index entry")
		return nil, fmt.Errorf("failed to query index entry: %w", err)
	}

	return entry, nil
}

// GetByIDs retrieves the index entries that exist among ids.
func (r *indexRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.IndexEntry, error) {
	if len(ids) == 0 {
		return []model.IndexEntry{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}

	query := `
		SELECT ` + indexColumns + `
		FROM passport_index
		WHERE id = ANY($1::uuid[])
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, keys)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query index entries by IDs")
		return nil, fmt.Errorf("failed to query index entries by IDs: %w", err)
	}
	defer rows.Close()

	entries := make([]model.IndexEntry, 0, len(ids))
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan index entry row")
			return nil, fmt.Errorf("failed to scan index entry: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating index entry rows")
		return nil, fmt.Errorf("error iterating index entries: %w", err)
	}

	return entries, nil
}

// SetStatus changes the status of an index entry.
func (r *indexRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.PassportStatus) error {
	query := `UPDATE passport_index SET status = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, string(status))
	if err != nil {
		r.logger.Error().Err(err).Str("passport_id", id.String()).Msg("failed to update index status")
		return fmt.Errorf("failed to update index status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Str("passport_id", id.String()).Msg("index entry not found for status update")
		return model.ErrPassportNotFound
	}

	return nil
}

// IncrementScans records one public view of the passport.
func (r *indexRepository) IncrementScans(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE passport_index SET scans = scans + 1 WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		r.logger.Error().Err(err).Str("passport_id", id.String()).Msg("failed to increment scans")
		return fmt.Errorf("failed to increment scans: %w", err)
	}

	return nil
}

// Delete removes the index entry of a passport.
func (r *indexRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM passport_index WHERE id = $1`, id); err != nil {
		r.logger.Error().Err(err).Str("passport_id", id.String()).Msg("failed to delete index entry")
		return fmt.Errorf("failed to delete index entry: %w", err)
	}

	return nil
}

// scanEntry scans one row selected with indexColumns.
func scanEntry(row pgx.Row) (*model.IndexEntry, error) {
	var (
		e      model.IndexEntry
		status string
	)
	if err := row.Scan(&e.ID, &e.Name, &e.SKU, &e.Category, &status, &e.Scans, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.Status = model.PassportStatus(status)
	return &e, nil
}
