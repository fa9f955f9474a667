package repositories

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/terminology"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/monitoring/logging"
	appErrors "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/errors"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

// TerminologyRepository is the PostgreSQL implementation of
// terminology.Repository.
type TerminologyRepository struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

// NewTerminologyRepository constructs a ready-to-use TerminologyRepository.
func NewTerminologyRepository(pool *pgxpool.Pool, logger logging.Logger) *TerminologyRepository {
	return &TerminologyRepository{pool: pool, logger: logger.Named("terminology-repo")}
}

// GetEntries returns the terminology entries for a brand, narrowed by
// therapeutic area when one is given.  An empty therapeuticArea spans the
// whole brand vocabulary.
func (r *TerminologyRepository) GetEntries(ctx context.Context, brandID, therapeuticArea string) ([]terminology.Entry, error) {
	r.logger.Debug("TerminologyRepository.GetEntries",
		logging.String("brand_id", brandID), logging.String("therapeutic_area", therapeuticArea))

	query := `
		SELECT id, brand_id, therapeutic_area, source_terms, preferred_term,
		       definition, regulatory_status, usage_guidelines,
		       patient_facing, hcp_facing, marketing_materials, regulatory_documents,
		       cultural_considerations, related_terms, last_updated
		FROM terminology_entries
		WHERE brand_id = $1`
	args := []any{brandID}
	if therapeuticArea != "" {
		query += ` AND therapeutic_area = $2`
		args = append(args, therapeuticArea)
	}
	query += ` ORDER BY preferred_term`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "terminology query failed").
			WithDetail(brandID)
	}
	defer rows.Close()

	out := []terminology.Entry{}
	for rows.Next() {
		var entry terminology.Entry
		var status string
		var culturalJSON []byte
		if err := rows.Scan(&entry.ID, &entry.BrandID, &entry.TherapeuticArea,
			&entry.SourceTerms, &entry.PreferredTerm, &entry.Definition,
			&status, &entry.UsageGuidelines,
			&entry.ContextualUsage.PatientFacing, &entry.ContextualUsage.HCPFacing,
			&entry.ContextualUsage.MarketingMaterials, &entry.ContextualUsage.RegulatoryDocuments,
			&culturalJSON, &entry.RelatedTerms, &entry.LastUpdated); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "terminology scan failed")
		}
		entry.RegulatoryStatus = ctypes.RegulatoryStatus(status)
		if len(culturalJSON) > 0 {
			if err := json.Unmarshal(culturalJSON, &entry.CulturalConsiderations); err != nil {
				return nil, appErrors.Wrap(err, appErrors.ErrCodeSerialization,
					"cultural considerations decode failed").WithDetail(entry.ID)
			}
		}
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "terminology iteration failed")
	}
	return out, nil
}

// SaveEntry upserts a terminology entry.  Used by data-loading tooling.
func (r *TerminologyRepository) SaveEntry(ctx context.Context, entry terminology.Entry) error {
	culturalJSON, err := json.Marshal(entry.CulturalConsiderations)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrCodeSerialization, "cultural considerations encode failed")
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO terminology_entries (
			id, brand_id, therapeutic_area, source_terms, preferred_term,
			definition, regulatory_status, usage_guidelines,
			patient_facing, hcp_facing, marketing_materials, regulatory_documents,
			cultural_considerations, related_terms, last_updated
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		ON CONFLICT (id) DO UPDATE SET
			source_terms = EXCLUDED.source_terms,
			preferred_term = EXCLUDED.preferred_term,
			definition = EXCLUDED.definition,
			regulatory_status = EXCLUDED.regulatory_status,
			usage_guidelines = EXCLUDED.usage_guidelines,
			patient_facing = EXCLUDED.patient_facing,
			hcp_facing = EXCLUDED.hcp_facing,
			marketing_materials = EXCLUDED.marketing_materials,
			regulatory_documents = EXCLUDED.regulatory_documents,
			cultural_considerations = EXCLUDED.cultural_considerations,
			related_terms = EXCLUDED.related_terms,
			last_updated = EXCLUDED.last_updated`,
		entry.ID, entry.BrandID, entry.TherapeuticArea, entry.SourceTerms, entry.PreferredTerm,
		entry.Definition, string(entry.RegulatoryStatus), entry.UsageGuidelines,
		entry.ContextualUsage.PatientFacing, entry.ContextualUsage.HCPFacing,
		entry.ContextualUsage.MarketingMaterials, entry.ContextualUsage.RegulatoryDocuments,
		culturalJSON, entry.RelatedTerms, entry.LastUpdated)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "terminology upsert failed").
			WithDetail(entry.ID)
	}
	return nil
}
