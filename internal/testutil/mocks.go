// Package testutil provides shared test doubles for the compliance engine:
// a recording logger and function-field mocks for the repository contracts.
package testutil

import (
	"context"
	"sync"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/rules"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/terminology"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/monitoring/logging"
)

// ─────────────────────────────────────────────────────────────────────────────
// MockLogger
// ─────────────────────────────────────────────────────────────────────────────

// LogMessage is a single entry captured by MockLogger.
type LogMessage struct {
	Level   string
	Message string
	Fields  []logging.Field
}

// MockLogger implements logging.Logger and records every entry so tests can
// assert on logging behavior.  Safe for concurrent use.
type MockLogger struct {
	mu       sync.Mutex
	messages []LogMessage
}

// NewMockLogger returns an empty recording logger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) log(level, msg string, fields []logging.Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, LogMessage{Level: level, Message: msg, Fields: fields})
}

func (m *MockLogger) Debug(msg string, fields ...logging.Field) { m.log("debug", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...logging.Field)  { m.log("info", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...logging.Field)  { m.log("warn", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...logging.Field) { m.log("error", msg, fields) }

func (m *MockLogger) With(...logging.Field) logging.Logger { return m }
func (m *MockLogger) Named(string) logging.Logger          { return m }

// Messages returns a copy of all recorded entries.
func (m *MockLogger) Messages() []LogMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LogMessage, len(m.messages))
	copy(out, m.messages)
	return out
}

// CountLevel returns the number of entries recorded at the given level.
func (m *MockLogger) CountLevel(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, msg := range m.messages {
		if msg.Level == level {
			n++
		}
	}
	return n
}

// ─────────────────────────────────────────────────────────────────────────────
// Repository mocks (function fields; nil fields return empty results)
// ─────────────────────────────────────────────────────────────────────────────

// RuleRepoMock implements rules.Repository with overridable function fields.
type RuleRepoMock struct {
	GetTabooRulesFn          func(ctx context.Context, market string) ([]rules.TabooContentRule, error)
	GetTransformationRulesFn func(ctx context.Context, market, assetType string) ([]rules.CulturalTransformationRule, error)
}

func (m *RuleRepoMock) GetTabooRules(ctx context.Context, market string) ([]rules.TabooContentRule, error) {
	if m.GetTabooRulesFn == nil {
		return []rules.TabooContentRule{}, nil
	}
	return m.GetTabooRulesFn(ctx, market)
}

func (m *RuleRepoMock) GetTransformationRules(ctx context.Context, market, assetType string) ([]rules.CulturalTransformationRule, error) {
	if m.GetTransformationRulesFn == nil {
		return []rules.CulturalTransformationRule{}, nil
	}
	return m.GetTransformationRulesFn(ctx, market, assetType)
}

// TermRepoMock implements terminology.Repository with an overridable
// function field.
type TermRepoMock struct {
	GetEntriesFn func(ctx context.Context, brandID, therapeuticArea string) ([]terminology.Entry, error)
}

func (m *TermRepoMock) GetEntries(ctx context.Context, brandID, therapeuticArea string) ([]terminology.Entry, error) {
	if m.GetEntriesFn == nil {
		return []terminology.Entry{}, nil
	}
	return m.GetEntriesFn(ctx, brandID, therapeuticArea)
}

// TranslationMemoryMock implements terminology.TranslationMemory.
type TranslationMemoryMock struct {
	SearchFn func(ctx context.Context, query terminology.TranslationMemorySearch) ([]terminology.TranslationMatch, error)
}

func (m *TranslationMemoryMock) Search(ctx context.Context, query terminology.TranslationMemorySearch) ([]terminology.TranslationMatch, error) {
	if m.SearchFn == nil {
		return []terminology.TranslationMatch{}, nil
	}
	return m.SearchFn(ctx, query)
}
