package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/rules"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/terminology"
)

// RuleRepository is the in-memory rules.Repository.  Reads are lock-free
// after construction; Add* mutators exist for test setup only.
type RuleRepository struct {
	mu              sync.RWMutex
	taboo           []rules.TabooContentRule
	transformations []rules.CulturalTransformationRule
}

// NewRuleRepository returns an empty in-memory repository.
func NewRuleRepository() *RuleRepository {
	return &RuleRepository{}
}

// NewSeededRuleRepository returns a repository loaded with the curated
// seed tables.
func NewSeededRuleRepository() *RuleRepository {
	return &RuleRepository{
		taboo:           seedTabooRules(),
		transformations: seedTransformationRules(),
	}
}

// AddTabooRules appends rules for test setup.
func (r *RuleRepository) AddTabooRules(extra ...rules.TabooContentRule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.taboo = append(r.taboo, extra...)
}

// AddTransformationRules appends rules for test setup.
func (r *RuleRepository) AddTransformationRules(extra ...rules.CulturalTransformationRule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transformations = append(r.transformations, extra...)
}

// GetTabooRules implements rules.Repository.
func (r *RuleRepository) GetTabooRules(_ context.Context, market string) ([]rules.TabooContentRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []rules.TabooContentRule{}
	for _, rule := range r.taboo {
		if strings.EqualFold(rule.Market, market) {
			out = append(out, rule)
		}
	}
	return out, nil
}

// GetTransformationRules implements rules.Repository.
func (r *RuleRepository) GetTransformationRules(_ context.Context, market, assetType string) ([]rules.CulturalTransformationRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []rules.CulturalTransformationRule{}
	for _, rule := range r.transformations {
		if strings.EqualFold(rule.Market, market) && strings.EqualFold(rule.AssetType, assetType) {
			out = append(out, rule)
		}
	}
	return out, nil
}

// TerminologyRepository is the in-memory terminology.Repository.
type TerminologyRepository struct {
	mu      sync.RWMutex
	entries []terminology.Entry
}

// NewTerminologyRepository returns an empty in-memory repository.
func NewTerminologyRepository() *TerminologyRepository {
	return &TerminologyRepository{}
}

// NewSeededTerminologyRepository returns a repository loaded with the
// curated seed vocabulary.
func NewSeededTerminologyRepository() *TerminologyRepository {
	return &TerminologyRepository{entries: seedTerminology()}
}

// AddEntries appends entries for test setup.
func (r *TerminologyRepository) AddEntries(extra ...terminology.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, extra...)
}

// GetEntries implements terminology.Repository.  An empty therapeuticArea
// spans the whole brand vocabulary.
func (r *TerminologyRepository) GetEntries(_ context.Context, brandID, therapeuticArea string) ([]terminology.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []terminology.Entry{}
	for _, entry := range r.entries {
		if !strings.EqualFold(entry.BrandID, brandID) {
			continue
		}
		if therapeuticArea != "" && !strings.EqualFold(entry.TherapeuticArea, therapeuticArea) {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}
