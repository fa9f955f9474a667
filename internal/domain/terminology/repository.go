package terminology

import (
	"context"
)

// Repository is the terminology lookup contract.  Implementations return an
// empty slice when no entries exist for a brand/area pair; errors are
// reserved for storage or transport failures.
type Repository interface {
	// GetEntries returns all terminology entries for a brand and
	// therapeutic area.
	GetEntries(ctx context.Context, brandID, therapeuticArea string) ([]Entry, error)
}

// TranslationMatch is one hit from the translation-memory collaborator.
type TranslationMatch struct {
	TargetText      string  `json:"target_text"`
	MatchPercentage float64 `json:"match_percentage"`
}

// TranslationMemorySearch carries the parameters of a TM lookup.
type TranslationMemorySearch struct {
	Term               string
	SourceLang         string
	TargetLang         string
	BrandID            string
	MinMatchPercentage float64
}

// TranslationMemory is the optional external lookup used only by the
// terminology-consistency cross-check.  A nil TranslationMemory disables
// the check entirely.
type TranslationMemory interface {
	Search(ctx context.Context, query TranslationMemorySearch) ([]TranslationMatch, error)
}
