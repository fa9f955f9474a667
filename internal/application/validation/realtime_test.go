package validation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/rules"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/testutil"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/errors"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

func TestScoreRealTimeEmptyInput(t *testing.T) {
	svc := newTestService(&testutil.RuleRepoMock{})

	score, err := svc.ScoreRealTime(context.Background(), "   ", []string{"China"})
	require.NoError(t, err)
	assert.Equal(t, 100, score.Score)
	assert.Empty(t, score.Warnings)

	score, err = svc.ScoreRealTime(context.Background(), "some text", nil)
	require.NoError(t, err)
	assert.Equal(t, 100, score.Score)
}

func TestScoreRealTimeTextRuleMatch(t *testing.T) {
	repo := &testutil.RuleRepoMock{
		GetTabooRulesFn: func(_ context.Context, market string) ([]rules.TabooContentRule, error) {
			return []rules.TabooContentRule{
				{
					Market:   market,
					Category: ctypes.CategoryText,
					Element:  "miracle",
					Severity: ctypes.SeverityCritical,
					Reason:   "Unsubstantiated efficacy claim",
				},
				// Color rules must be ignored by the real-time path.
				{
					Market:   market,
					Category: ctypes.CategoryColor,
					Element:  "white",
					Severity: ctypes.SeverityForbidden,
				},
			}, nil
		},
	}
	svc := newTestService(repo)

	// "should" keeps Germany's direct style satisfied so only the taboo
	// match deducts.
	score, err := svc.ScoreRealTime(context.Background(), "This miracle white pill should help", []string{"Germany"})
	require.NoError(t, err)

	assert.Equal(t, 70, score.Score)
	require.Len(t, score.Warnings, 1)
	assert.Equal(t, "miracle", score.Warnings[0].Element)
	assert.Equal(t, ctypes.SeverityCritical, score.Warnings[0].Severity)
}

func TestScoreRealTimeStyleMismatch(t *testing.T) {
	svc := newTestService(&testutil.RuleRepoMock{})

	tests := []struct {
		name      string
		text      string
		market    string
		wantScore int
	}{
		{
			name:      "direct copy for an indirect market",
			text:      "The best proven treatment, guaranteed",
			market:    "Japan",
			wantScore: 85,
		},
		{
			name:      "indirect copy for an indirect market",
			text:      "You may wish to consider discussing this with your doctor",
			market:    "Japan",
			wantScore: 100,
		},
		{
			name:      "indirect copy for a direct market",
			text:      "Perhaps this could help, you might consider it",
			market:    "Germany",
			wantScore: 85,
		},
		{
			name:      "unknown market skips the style check",
			text:      "The best proven treatment, guaranteed",
			market:    "Atlantis",
			wantScore: 100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := svc.ScoreRealTime(context.Background(), tt.text, []string{tt.market})
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, score.Score)
		})
	}
}

func TestScoreRealTimeClampsAtZero(t *testing.T) {
	repo := &testutil.RuleRepoMock{
		GetTabooRulesFn: func(_ context.Context, market string) ([]rules.TabooContentRule, error) {
			return []rules.TabooContentRule{
				{Market: market, Category: ctypes.CategoryText, Element: "death", Severity: ctypes.SeverityForbidden},
				{Market: market, Category: ctypes.CategoryText, Element: "cure", Severity: ctypes.SeverityForbidden},
				{Market: market, Category: ctypes.CategoryText, Element: "miracle", Severity: ctypes.SeverityForbidden},
			}, nil
		},
	}
	svc := newTestService(repo)

	score, err := svc.ScoreRealTime(context.Background(), "miracle cure that cheats death", []string{"Germany", "United States"})
	require.NoError(t, err)
	assert.Equal(t, 0, score.Score)
}

func TestScoreRealTimeRuleLookupFailureDegradesSilently(t *testing.T) {
	repo := &testutil.RuleRepoMock{
		GetTabooRulesFn: func(context.Context, string) ([]rules.TabooContentRule, error) {
			return nil, errors.New(errors.ErrCodeRuleStoreUnavailable, "store down")
		},
	}
	svc := newTestService(repo)

	score, err := svc.ScoreRealTime(context.Background(), "hello world", []string{"Germany"})
	require.NoError(t, err)
	assert.Equal(t, 100, score.Score)
	assert.Empty(t, score.Warnings)
}
