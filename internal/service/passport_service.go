package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tellwe/obedir-qr-codes/internal/archive"
	"github.com/Tellwe/obedir-qr-codes/internal/model"
	"github.com/Tellwe/obedir-qr-codes/internal/passportapi"
	"github.com/Tellwe/obedir-qr-codes/internal/qr"
	"github.com/Tellwe/obedir-qr-codes/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options holds the presentation settings of the passport service.
type Options struct {
	PublicBaseURL string
	Company       model.CompanyInfo
	QRSize        int
}

// passportService implements PassportService.
type passportService struct {
	client  passportapi.Client
	index   repository.IndexRepository
	archive archive.Store
	opts    Options
	logger  zerolog.Logger
}

// NewPassportService creates a new passport service.
func NewPassportService(
	client passportapi.Client,
	index repository.IndexRepository,
	store archive.Store,
	opts Options,
	logger zerolog.Logger,
) PassportService {
	if opts.QRSize <= 0 {
		opts.QRSize = qr.DefaultSize
	}
	return &passportService{
		client:  client,
		index:   index,
		archive: store,
		opts:    opts,
		logger:  logger.With().Str("service", "passport").Logger(),
	}
}

// List returns the passports of the API merged with their index entries.
func (s *passportService) List(ctx context.Context, query string) ([]model.Summary, error) {
	passports, err := s.client.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list passports")
		return nil, fmt.Errorf("failed to list passports: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(passports))
	for _, p := range passports {
		if id, err := uuid.Parse(p.UUID); err == nil {
			ids = append(ids, id)
		}
	}

	entries := map[string]*model.IndexEntry{}
	found, err := s.index.GetByIDs(ctx, ids)
	if err != nil {
		// The list is still usable without status and scan columns.
		s.logger.Warn().Err(err).Int("count", len(ids)).Msg("failed to load index entries")
	}
	for i := range found {
		entries[found[i].ID.String()] = &found[i]
	}

	summaries := make([]model.Summary, 0, len(passports))
	for _, p := range passports {
		summaries = append(summaries, model.NewSummary(p, entries[normaliseID(p.UUID)]))
	}

	filtered := model.FilterSummaries(summaries, query)

	s.logger.Debug().
		Int("total", len(summaries)).
		Int("matched", len(filtered)).
		Str("query", query).
		Msg("listed passports")

	return filtered, nil
}

// Get retrieves a passport by ID.
func (s *passportService) Get(ctx context.Context, id string) (*model.Passport, error) {
	parsed, err := parseID(id)
	if err != nil {
		s.logger.Warn().Str("passport_id", id).Msg("invalid passport ID")
		return nil, err
	}
	id = parsed.String()

	p, err := s.client.Read(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPassportNotFound) {
			return nil, model.ErrPassportNotFound
		}
		s.logger.Error().Err(err).Str("passport_id", id).Msg("failed to read passport")
		return nil, fmt.Errorf("failed to read passport: %w", err)
	}

	return p, nil
}

// Create stores a new passport and indexes it when the API reports its UUID.
func (s *passportService) Create(ctx context.Context, p model.Passport) (string, error) {
	created, err := s.client.Create(ctx, p.WithoutUUID())
	if err != nil {
		s.logger.Error().Err(err).Str("product_name", p.Name()).Msg("failed to create passport")
		return "", fmt.Errorf("failed to create passport: %w", err)
	}

	if created == "" {
		s.logger.Warn().Str("product_name", p.Name()).Msg("passport API did not return a UUID, skipping index")
		return "", nil
	}

	id, err := uuid.Parse(created)
	if err != nil {
		s.logger.Warn().Str("passport_id", created).Msg("passport API returned a non-UUID identifier, skipping index")
		return created, nil
	}

	s.upsertIndex(ctx, id, p)

	s.logger.Info().
		Str("passport_id", created).
		Str("product_name", p.Name()).
		Msg("passport created")

	return created, nil
}

// Update replaces the passport stored under id and refreshes its index entry.
func (s *passportService) Update(ctx context.Context, id string, p model.Passport) error {
	parsed, err := parseID(id)
	if err != nil {
		return err
	}
	id = parsed.String()

	p.UUID = id
	if err := s.client.Update(ctx, id, p); err != nil {
		if errors.Is(err, model.ErrPassportNotFound) {
			return model.ErrPassportNotFound
		}
		s.logger.Error().Err(err).Str("passport_id", id).Msg("failed to update passport")
		return fmt.Errorf("failed to update passport: %w", err)
	}

	s.upsertIndex(ctx, parsed, p)

	s.logger.Info().Str("passport_id", id).Msg("passport updated")
	return nil
}

// Delete removes the passport from the API, then its index entry and
// archived QR image.
func (s *passportService) Delete(ctx context.Context, id string) error {
	parsed, err := parseID(id)
	if err != nil {
		return err
	}
	id = parsed.String()

	if err := s.client.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrPassportNotFound) {
			return model.ErrPassportNotFound
		}
		s.logger.Error().Err(err).Str("passport_id", id).Msg("failed to delete passport")
		return fmt.Errorf("failed to delete passport: %w", err)
	}

	if err := s.index.Delete(ctx, parsed); err != nil {
		s.logger.Warn().Err(err).Str("passport_id", id).Msg("passport deleted but index entry remains")
	}
	if err := s.archive.Delete(ctx, archive.QRKey(id, s.opts.PublicBaseURL)); err != nil {
		s.logger.Warn().Err(err).Str("passport_id", id).Msg("passport deleted but archived QR code remains")
	}

	s.logger.Info().Str("passport_id", id).Msg("passport deleted")
	return nil
}

// SetStatus changes the visibility of a passport. Passports created outside
// the dashboard are indexed on first use.
func (s *passportService) SetStatus(ctx context.Context, id string, status model.PassportStatus) error {
	parsed, err := parseID(id)
	if err != nil {
		return err
	}
	id = parsed.String()
	if _, err := model.ParseStatus(string(status)); err != nil {
		return err
	}

	err = s.index.SetStatus(ctx, parsed, status)
	if errors.Is(err, model.ErrPassportNotFound) {
		p, readErr := s.Get(ctx, id)
		if readErr != nil {
			return readErr
		}

		entry := model.NewIndexEntry(parsed, *p)
		if err := s.index.Upsert(ctx, &entry); err != nil {
			s.logger.Error().Err(err).Str("passport_id", id).Msg("failed to index passport")
			return fmt.Errorf("failed to set passport status: %w", err)
		}
		err = s.index.SetStatus(ctx, parsed, status)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("passport_id", id).Str("status", string(status)).Msg("failed to set passport status")
		return fmt.Errorf("failed to set passport status: %w", err)
	}

	s.logger.Info().Str("passport_id", id).Str("status", string(status)).Msg("passport status changed")
	return nil
}

// View returns the public view of an active passport and records the scan.
func (s *passportService) View(ctx context.Context, id string) (*model.PassportView, error) {
	parsed, err := parseID(id)
	if err != nil {
		return nil, err
	}
	id = parsed.String()

	entry, lookupErr := s.index.GetByID(ctx, parsed)
	if lookupErr != nil {
		s.logger.Warn().Err(lookupErr).Str("passport_id", id).Msg("failed to load index entry for view")
	}
	if entry != nil && entry.Status == model.StatusInactive {
		s.logger.Debug().Str("passport_id", id).Msg("passport is inactive")
		return nil, model.ErrPassportNotFound
	}

	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if entry == nil && lookupErr == nil {
		s.upsertIndex(ctx, parsed, *p)
	}
	if err := s.index.IncrementScans(ctx, parsed); err != nil {
		s.logger.Warn().Err(err).Str("passport_id", id).Msg("failed to record scan")
	}

	view := model.NewPassportView(*p, s.opts.Company)
	view.ID = id
	return &view, nil
}

// QRCode returns the QR image of an active passport. Archived images are
// served only for indexed passports; anything else is checked against the
// API first, so deleted passports stop resolving.
func (s *passportService) QRCode(ctx context.Context, id string) ([]byte, error) {
	parsed, err := parseID(id)
	if err != nil {
		return nil, err
	}
	id = parsed.String()

	entry, lookupErr := s.index.GetByID(ctx, parsed)
	if lookupErr != nil {
		s.logger.Warn().Err(lookupErr).Str("passport_id", id).Msg("failed to load index entry for QR code")
	}
	if entry != nil && entry.Status == model.StatusInactive {
		s.logger.Debug().Str("passport_id", id).Msg("passport is inactive")
		return nil, model.ErrPassportNotFound
	}

	key := archive.QRKey(id, s.opts.PublicBaseURL)
	if entry != nil {
		data, err := s.archive.Get(ctx, key)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, archive.ErrNotFound) {
			s.logger.Warn().Err(err).Str("passport_id", id).Msg("failed to read archived QR code, rendering a new one")
		}
	}

	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil && lookupErr == nil {
		s.upsertIndex(ctx, parsed, *p)
	}

	data, err := qr.Encode(qr.PassportURL(s.opts.PublicBaseURL, id), s.opts.QRSize)
	if err != nil {
		s.logger.Error().Err(err).Str("passport_id", id).Msg("failed to render QR code")
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}

	if err := s.archive.Put(ctx, key, data); err != nil {
		s.logger.Warn().Err(err).Str("passport_id", id).Msg("failed to archive QR code")
	}

	return data, nil
}

// upsertIndex refreshes the index entry of a passport. The API is the source
// of truth, so index failures are only logged.
func (s *passportService) upsertIndex(ctx context.Context, id uuid.UUID, p model.Passport) {
	entry := model.NewIndexEntry(id, p)
	if err := s.index.Upsert(ctx, &entry); err != nil {
		s.logger.Warn().Err(err).Str("passport_id", id.String()).Msg("failed to update index entry")
	}
}

// parseID validates a passport ID.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, model.ErrInvalidPassportID
	}
	return parsed, nil
}

// normaliseID returns the canonical form of a UUID string, or the input when
// it is not a UUID.
func normaliseID(id string) string {
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed.String()
	}
	return id
}
