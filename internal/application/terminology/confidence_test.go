package terminology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/terminology"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

func approvedEntry(preferred string, sources ...string) domain.Entry {
	return domain.Entry{
		PreferredTerm:    preferred,
		SourceTerms:      sources,
		Definition:       "definition of " + preferred,
		RegulatoryStatus: ctypes.StatusApproved,
		ContextualUsage:  domain.ContextualUsage{MarketingMaterials: true, HCPFacing: true},
	}
}

func TestTermConfidence(t *testing.T) {
	entry := approvedEntry("myocardial infarction", "heart attack")

	cautioned := entry
	cautioned.CulturalConsiderations = map[string]string{
		"Japan": "Prefer indirect phrasing when addressing mortality",
	}

	tests := []struct {
		name     string
		term     string
		entry    domain.Entry
		audience ctypes.AudienceContext
		market   string
		want     int
	}{
		{
			name:     "preferred match in context with approval maxes out",
			term:     "Myocardial Infarction",
			entry:    entry,
			audience: ctypes.ContextHCP,
			want:     100,
		},
		{
			name:     "source match scores lower than preferred match",
			term:     "heart attack",
			entry:    entry,
			audience: ctypes.ContextHCP,
			want:     100, // 50+30+20+10 clamps at 100
		},
		{
			name:     "no match keeps the base plus context and status",
			term:     "stroke",
			entry:    entry,
			audience: ctypes.ContextHCP,
			want:     80,
		},
		{
			name:     "context mismatch drops the context bonus",
			term:     "myocardial infarction",
			entry:    entry,
			audience: ctypes.ContextPatient,
			want:     100, // 50+40+10
		},
		{
			name:     "cultural consideration for the target market deducts",
			term:     "stroke",
			entry:    cautioned,
			audience: ctypes.ContextHCP,
			market:   "Japan",
			want:     70, // 50+20+10-10
		},
		{
			name:     "cultural consideration for another market is ignored",
			term:     "stroke",
			entry:    cautioned,
			audience: ctypes.ContextHCP,
			market:   "Germany",
			want:     80,
		},
		{
			name: "unapproved entry loses the status bonus",
			term: "stroke",
			entry: domain.Entry{
				PreferredTerm:    "cerebrovascular accident",
				RegulatoryStatus: ctypes.StatusPending,
			},
			audience: ctypes.ContextPatient,
			want:     50,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TermConfidence(tt.term, tt.entry, tt.audience, tt.market))
		})
	}
}

func TestRankSuggestionsApprovedOnly(t *testing.T) {
	entries := []domain.Entry{
		approvedEntry("cardioprotective therapy", "cardio care"),
		{
			PreferredTerm:    "cardiotoxic agent",
			RegulatoryStatus: ctypes.StatusForbidden,
			ContextualUsage:  domain.ContextualUsage{MarketingMaterials: true},
		},
		{
			PreferredTerm:    "cardiac catheterization",
			RegulatoryStatus: ctypes.StatusPending,
			ContextualUsage:  domain.ContextualUsage{MarketingMaterials: true},
		},
	}

	got := RankSuggestions("cardi", entries, ctypes.ContextMarketing, "")

	require.Len(t, got, 1)
	assert.Equal(t, "cardioprotective therapy", got[0].Term)
}

func TestRankSuggestionsOrderingAndCap(t *testing.T) {
	entries := []domain.Entry{
		approvedEntry("beta blocker"),
		approvedEntry("beta agonist"),
		approvedEntry("benralizumab"),
		approvedEntry("bempedoic acid"),
		approvedEntry("betaxolol"),
		approvedEntry("bezafibrate"),
	}
	// One entry matches the partial exactly via a source term, earning a
	// higher confidence than the prefix-only entries.
	entries[2].SourceTerms = []string{"be"}

	got := RankSuggestions("be", entries, ctypes.ContextMarketing, "")

	require.Len(t, got, 5)
	assert.Equal(t, "benralizumab", got[0].Term)
	// Remaining ties are alphabetical on the preferred term.
	assert.Equal(t, []string{"bempedoic acid", "beta agonist", "beta blocker", "betaxolol"},
		[]string{got[1].Term, got[2].Term, got[3].Term, got[4].Term})
}

func TestRankSuggestionsTargetMarketDeduction(t *testing.T) {
	flagged := approvedEntry("cardiac arrest", "cardio event")
	flagged.CulturalConsiderations = map[string]string{
		"Japan": "Avoid direct mortality references",
	}
	entries := []domain.Entry{flagged, approvedEntry("cardioprotective therapy")}

	got := RankSuggestions("cardi", entries, ctypes.ContextMarketing, "Japan")
	require.Len(t, got, 2)
	assert.Equal(t, "cardioprotective therapy", got[0].Term)
	assert.Equal(t, got[0].Confidence-deductionCulturalCaution, got[1].Confidence)

	// Without a target market the two tie and order falls back to the
	// preferred term.
	got = RankSuggestions("cardi", entries, ctypes.ContextMarketing, "")
	require.Len(t, got, 2)
	assert.Equal(t, "cardiac arrest", got[0].Term)
}

func TestRankSuggestionsNoMatches(t *testing.T) {
	got := RankSuggestions("zzz", []domain.Entry{approvedEntry("beta blocker")}, ctypes.ContextMarketing, "")
	assert.Empty(t, got)
}
