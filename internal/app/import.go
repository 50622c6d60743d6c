package app

import "github.com/dferrell/cadence/internal/domain"

// ImportResult reports what a file import persisted.
type ImportResult struct {
	Clients  []*domain.Client
	Requests []*domain.SessionRequest
	// Warnings are per-record problems that did not abort the import.
	Warnings []string
}
