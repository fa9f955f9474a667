// Package repositories provides PostgreSQL-backed implementations of the
// rules and terminology repository interfaces.  Every method takes a
// context.Context and uses parameterised queries exclusively.
package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/rules"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/monitoring/logging"
	appErrors "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/errors"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

// RuleRepository is the PostgreSQL implementation of rules.Repository.
type RuleRepository struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

// NewRuleRepository constructs a ready-to-use RuleRepository.
func NewRuleRepository(pool *pgxpool.Pool, logger logging.Logger) *RuleRepository {
	return &RuleRepository{pool: pool, logger: logger.Named("rule-repo")}
}

// GetTabooRules returns all taboo rules for a market.  Unknown markets
// yield an empty slice, never an error.
func (r *RuleRepository) GetTabooRules(ctx context.Context, market string) ([]rules.TabooContentRule, error) {
	r.logger.Debug("RuleRepository.GetTabooRules", logging.String("market", market))

	rows, err := r.pool.Query(ctx, `
		SELECT id, market, category, element, severity, reason, alternatives, context
		FROM taboo_rules
		WHERE market = $1
		ORDER BY id`, market)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrCodeRuleStoreUnavailable, "taboo rule query failed").
			WithDetail(market)
	}
	defer rows.Close()

	out := []rules.TabooContentRule{}
	for rows.Next() {
		var rule rules.TabooContentRule
		var category, severity, ruleCtx string
		if err := rows.Scan(&rule.ID, &rule.Market, &category, &rule.Element,
			&severity, &rule.Reason, &rule.Alternatives, &ruleCtx); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "taboo rule scan failed")
		}
		rule.Category = ctypes.RuleCategory(category)
		rule.Severity = ctypes.Severity(severity)
		rule.Context = rules.RuleContext(ruleCtx)
		if err := rule.Validate(); err != nil {
			r.logger.Warn("skipping invalid taboo rule",
				logging.String("rule_id", rule.ID), logging.Err(err))
			continue
		}
		out = append(out, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "taboo rule iteration failed")
	}
	return out, nil
}

// GetTransformationRules returns the transformation rules for a
// market/asset-type pair.  Empty means no adaptation constraints.
func (r *RuleRepository) GetTransformationRules(ctx context.Context, market, assetType string) ([]rules.CulturalTransformationRule, error) {
	r.logger.Debug("RuleRepository.GetTransformationRules",
		logging.String("market", market), logging.String("asset_type", assetType))

	rows, err := r.pool.Query(ctx, `
		SELECT id, market, asset_type, transformation_type, rule,
		       example_before, example_after, example_rationale,
		       priority, estimated_effort
		FROM transformation_rules
		WHERE market = $1 AND asset_type = $2
		ORDER BY id`, market, assetType)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrCodeRuleStoreUnavailable, "transformation rule query failed").
			WithDetail(market)
	}
	defer rows.Close()

	out := []rules.CulturalTransformationRule{}
	for rows.Next() {
		var rule rules.CulturalTransformationRule
		var transformType, priority string
		if err := rows.Scan(&rule.ID, &rule.Market, &rule.AssetType, &transformType,
			&rule.Rule, &rule.Example.Before, &rule.Example.After, &rule.Example.Rationale,
			&priority, &rule.EstimatedEffort); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "transformation rule scan failed")
		}
		rule.TransformationType = ctypes.TransformationType(transformType)
		rule.Priority = ctypes.RulePriority(priority)
		out = append(out, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "transformation rule iteration failed")
	}
	return out, nil
}

// SaveTabooRule upserts a taboo rule.  Used by data-loading tooling, not
// by the scoring path.
func (r *RuleRepository) SaveTabooRule(ctx context.Context, rule rules.TabooContentRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO taboo_rules (id, market, category, element, severity, reason, alternatives, context)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET
			market = EXCLUDED.market,
			category = EXCLUDED.category,
			element = EXCLUDED.element,
			severity = EXCLUDED.severity,
			reason = EXCLUDED.reason,
			alternatives = EXCLUDED.alternatives,
			context = EXCLUDED.context`,
		rule.ID, rule.Market, string(rule.Category), rule.Element,
		string(rule.Severity), rule.Reason, rule.Alternatives, string(rule.Context))
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "taboo rule upsert failed").
			WithDetail(rule.ID)
	}
	return nil
}
