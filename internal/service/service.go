package service

import (
	"context"

	"github.com/Tellwe/obedir-qr-codes/internal/model"
)

// PassportService defines operations for passport management.
type PassportService interface {
	// List returns dashboard summaries whose name or category matches query.
	List(ctx context.Context, query string) ([]model.Summary, error)

	// Get retrieves a passport by ID.
	Get(ctx context.Context, id string) (*model.Passport, error)

	// Create stores a new passport and returns its UUID, which may be empty
	// when the passport API does not report it.
	Create(ctx context.Context, p model.Passport) (string, error)

	// Update replaces the passport stored under id.
	Update(ctx context.Context, id string, p model.Passport) error

	// Delete removes a passport.
	Delete(ctx context.Context, id string) error

	// SetStatus makes a passport publicly visible or hides it.
	SetStatus(ctx context.Context, id string, status model.PassportStatus) error

	// View returns the public view of an active passport and counts the scan.
	View(ctx context.Context, id string) (*model.PassportView, error)

	// QRCode returns the PNG QR code pointing at the public passport page.
	QRCode(ctx context.Context, id string) ([]byte, error)
}
