// Package repository persists the roster as a single JSON document.
package repository

import "context"

// Store loads and saves the whole roster document.
type Store interface {
	// Load returns the stored document. A store that has never been saved
	// returns an empty document and no error.
	Load(ctx context.Context) (Document, error)

	// Save replaces the stored document and returns the revision it was
	// written under.
	Save(ctx context.Context, doc Document) (string, error)
}
