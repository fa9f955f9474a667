// Package validation implements the cultural validation engine: taboo
// matching, market-readiness scoring, risk derivation, recommendation and
// playbook generation, and the lightweight real-time scorer.  All scoring
// is a pure function of the inputs plus whatever the rule repository
// returns for the call; the package owns no mutable state.
package validation

import (
	"strings"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/rules"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

// issueTypeForCategory maps a rule category to the issue type it emits.
// Categories absent from the map are not matched by the engine.
var issueTypeForCategory = map[ctypes.RuleCategory]ctypes.IssueType{
	ctypes.CategoryText:    ctypes.IssueTabooContent,
	ctypes.CategoryConcept: ctypes.IssueTabooContent,
	ctypes.CategoryColor:   ctypes.IssueVisualConcern,
	ctypes.CategoryImagery: ctypes.IssueVisualConcern,
}

// MatchTabooRules scans content against one market's taboo rules and
// returns one issue per match.  Text and concept rules are matched by
// case-insensitive substring containment inside the concatenated text
// fields; color and imagery rules are matched against the corresponding
// declared brand elements.  Multiple rules may fire on the same content;
// no dedup is performed.
func MatchTabooRules(content ctypes.ContentInput, market string, tabooRules []rules.TabooContentRule) []ctypes.ValidationIssue {
	issues := []ctypes.ValidationIssue{}
	fullText := strings.ToLower(strings.Join([]string{content.Headline, content.Body, content.CTA}, " "))

	for _, rule := range tabooRules {
		issueType, matchable := issueTypeForCategory[rule.Category]
		if !matchable {
			continue
		}
		element := strings.ToLower(rule.Element)

		switch rule.Category {
		case ctypes.CategoryText, ctypes.CategoryConcept:
			if strings.Contains(fullText, element) {
				issues = append(issues, newIssue(issueType, rule, market, rule.Element))
			}
		case ctypes.CategoryColor:
			for _, color := range content.BrandElements.Colors {
				if strings.Contains(strings.ToLower(color), element) {
					issues = append(issues, newIssue(issueType, rule, market, color))
				}
			}
		case ctypes.CategoryImagery:
			for _, motif := range content.BrandElements.Imagery {
				if strings.Contains(strings.ToLower(motif), element) {
					issues = append(issues, newIssue(issueType, rule, market, motif))
				}
			}
		}
	}
	return issues
}

func newIssue(issueType ctypes.IssueType, rule rules.TabooContentRule, market, element string) ctypes.ValidationIssue {
	return ctypes.ValidationIssue{
		Type:           issueType,
		Severity:       rule.Severity,
		Element:        element,
		Market:         market,
		Description:    rule.Reason,
		Recommendation: rule.RecommendedAlternatives(),
	}
}
