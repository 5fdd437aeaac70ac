package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PassportStatus controls whether a passport is publicly visible.
type PassportStatus string

const (
	StatusActive   PassportStatus = "active"
	StatusInactive PassportStatus = "inactive"
)

// ParseStatus validates a status value.
func ParseStatus(s string) (PassportStatus, error) {
	switch PassportStatus(s) {
	case StatusActive, StatusInactive:
		return PassportStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// IndexEntry is the dashboard's local record of a passport.
type IndexEntry struct {
	ID        uuid.UUID      `json:"id" db:"id"`
	Name      string         `json:"name" db:"name"`
	SKU       string         `json:"sku" db:"sku"`
	Category  string         `json:"category" db:"category"`
	Status    PassportStatus `json:"status" db:"status"`
	Scans     int64          `json:"scans" db:"scans"`
	CreatedAt time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time      `json:"updatedAt" db:"updated_at"`
}

// NewIndexEntry derives an index entry from a passport.
func NewIndexEntry(id uuid.UUID, p Passport) IndexEntry {
	info := p.BasicDetails.BasicInformation
	return IndexEntry{
		ID:       id,
		Name:     info.ProductName,
		SKU:      info.SKU,
		Category: info.Category,
		Status:   StatusActive,
	}
}

// Summary is one row of the dashboard product list.
type Summary struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	SKU       string         `json:"sku"`
	Category  string         `json:"category"`
	Status    PassportStatus `json:"status"`
	Scans     int64          `json:"scans"`
	CreatedAt *time.Time     `json:"createdAt,omitempty"`
}

// CategoryLabel returns the display label of the summary category.
func (s Summary) CategoryLabel() string {
	return CategoryLabel(s.Category)
}

// NewSummary combines a passport with its index entry, which may be nil.
func NewSummary(p Passport, entry *IndexEntry) Summary {
	info := p.BasicDetails.BasicInformation
	s := Summary{
		ID:       p.UUID,
		Name:     info.ProductName,
		SKU:      info.SKU,
		Category: info.Category,
		Status:   StatusActive,
	}
	if entry != nil {
		created := entry.CreatedAt
		s.Status = entry.Status
		s.Scans = entry.Scans
		s.CreatedAt = &created
	}
	return s
}

// FilterSummaries keeps the summaries whose name or category contains query,
// ignoring case. An empty query keeps everything.
func FilterSummaries(list []Summary, query string) []Summary {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return list
	}

	filtered := make([]Summary, 0, len(list))
	for _, s := range list {
		if strings.Contains(strings.ToLower(s.Name), query) ||
			strings.Contains(strings.ToLower(s.Category), query) ||
			strings.Contains(strings.ToLower(s.CategoryLabel()), query) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
