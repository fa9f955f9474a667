//go:build integration

package repositories_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/rules"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/terminology"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/database/postgres/repositories"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/monitoring/logging"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

// startPostgres launches a PostgreSQL 16 container and returns a connected
// pool with the rule-store schema applied.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "mlr_test",
		},
		WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/mlr_test?sslmode=disable", host, port.Port())
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	applyRuleStoreSchema(t, pool)
	return pool
}

func applyRuleStoreSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()

	ddl := `
	CREATE TABLE IF NOT EXISTS taboo_rules (
		id           TEXT PRIMARY KEY,
		market       TEXT NOT NULL,
		category     TEXT NOT NULL,
		element      TEXT NOT NULL,
		severity     TEXT NOT NULL,
		reason       TEXT NOT NULL DEFAULT '',
		alternatives TEXT[] NOT NULL DEFAULT '{}',
		context      TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS transformation_rules (
		id                  TEXT PRIMARY KEY,
		market              TEXT NOT NULL,
		asset_type          TEXT NOT NULL,
		transformation_type TEXT NOT NULL,
		rule                TEXT NOT NULL,
		example_before      TEXT NOT NULL DEFAULT '',
		example_after       TEXT NOT NULL DEFAULT '',
		example_rationale   TEXT NOT NULL DEFAULT '',
		priority            TEXT NOT NULL DEFAULT 'medium',
		estimated_effort    TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS terminology_entries (
		id                      TEXT PRIMARY KEY,
		brand_id                TEXT NOT NULL,
		therapeutic_area        TEXT NOT NULL DEFAULT '',
		source_terms            TEXT[] NOT NULL DEFAULT '{}',
		preferred_term          TEXT NOT NULL,
		definition              TEXT NOT NULL DEFAULT '',
		regulatory_status       TEXT NOT NULL DEFAULT 'pending',
		usage_guidelines        TEXT NOT NULL DEFAULT '',
		patient_facing          BOOLEAN NOT NULL DEFAULT FALSE,
		hcp_facing              BOOLEAN NOT NULL DEFAULT FALSE,
		marketing_materials     BOOLEAN NOT NULL DEFAULT FALSE,
		regulatory_documents    BOOLEAN NOT NULL DEFAULT FALSE,
		cultural_considerations JSONB NOT NULL DEFAULT '{}',
		related_terms           TEXT[] NOT NULL DEFAULT '{}',
		last_updated            TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`

	_, err := pool.Exec(ctx, ddl)
	require.NoError(t, err)
}

func TestRuleRepositoryRoundTrip(t *testing.T) {
	pool := startPostgres(t)
	repo := repositories.NewRuleRepository(pool, logging.NewNopLogger())
	ctx := context.Background()

	rule := rules.TabooContentRule{
		ID:           "cn-color-white",
		Market:       "China",
		Category:     ctypes.CategoryColor,
		Element:      "white",
		Severity:     ctypes.SeverityWarning,
		Reason:       "Associated with mourning and death",
		Alternatives: []string{"red", "gold"},
		Context:      rules.RuleContextMarketing,
	}
	require.NoError(t, repo.SaveTabooRule(ctx, rule))

	got, err := repo.GetTabooRules(ctx, "China")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rule, got[0])

	// Unknown market returns empty, not an error.
	none, err := repo.GetTabooRules(ctx, "Atlantis")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRuleRepositoryTransformationRules(t *testing.T) {
	pool := startPostgres(t)
	repo := repositories.NewRuleRepository(pool, logging.NewNopLogger())
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO transformation_rules
			(id, market, asset_type, transformation_type, rule, example_before, example_after, priority, estimated_effort)
		VALUES
			('cn-text-1', 'China', 'banner', 'text', 'Use family framing', 'Your health', 'Your family''s health', 'high', '1 day'),
			('cn-text-2', 'China', 'email', 'tone', 'Soften imperatives', '', '', 'medium', '')`)
	require.NoError(t, err)

	got, err := repo.GetTransformationRules(ctx, "China", "banner")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, ctypes.TransformText, got[0].TransformationType)
	assert.Equal(t, "Your health → Your family's health", got[0].RenderedExample())
}

func TestTerminologyRepositoryRoundTrip(t *testing.T) {
	pool := startPostgres(t)
	repo := repositories.NewTerminologyRepository(pool, logging.NewNopLogger())
	ctx := context.Background()

	entry := terminology.Entry{
		ID:               "term-mi",
		BrandID:          "brand-1",
		TherapeuticArea:  "cardiology",
		SourceTerms:      []string{"heart attack", "MI"},
		PreferredTerm:    "myocardial infarction",
		Definition:       "Necrosis of heart muscle from ischemia",
		RegulatoryStatus: ctypes.StatusApproved,
		UsageGuidelines:  "Use the clinical term in HCP materials",
		ContextualUsage: terminology.ContextualUsage{
			HCPFacing:           true,
			MarketingMaterials:  true,
			RegulatoryDocuments: true,
		},
		CulturalConsiderations: map[string]string{
			"Japan": "Prefer indirect phrasing when addressing mortality",
		},
		RelatedTerms: []string{"cardiac event"},
		LastUpdated:  time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, repo.SaveEntry(ctx, entry))

	got, err := repo.GetEntries(ctx, "brand-1", "cardiology")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, entry.PreferredTerm, got[0].PreferredTerm)
	assert.Equal(t, entry.CulturalConsiderations, got[0].CulturalConsiderations)
	assert.True(t, got[0].ContextualUsage.HCPFacing)

	// Area filter: empty area spans the brand.
	all, err := repo.GetEntries(ctx, "brand-1", "")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	other, err := repo.GetEntries(ctx, "brand-1", "oncology")
	require.NoError(t, err)
	assert.Empty(t, other)
}
