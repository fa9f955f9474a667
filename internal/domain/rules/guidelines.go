package rules

import (
	"time"

	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

// ─────────────────────────────────────────────────────────────────────────────
// Curated per-market tables
//
// These tables are the engine's built-in market knowledge.  They are keyed
// by canonical market name; lookups are exact.  Markets without curated
// entries fall back to generic defaults — a deliberate minimum-viable
// default, not a silent failure.
// ─────────────────────────────────────────────────────────────────────────────

var visualGuidelines = map[string]VisualCulturalGuidelines{
	"China": {
		Market: "China",
		Colors: ColorGuidance{
			Preferred: []string{"red", "gold", "yellow"},
			Avoid:     []string{"white", "black"},
			Notes: map[string]string{
				"white": "Associated with mourning and death",
				"black": "Associated with funerals and bad luck",
			},
		},
		Imagery: ImageryGuidance{
			Preferred: []string{"family groups", "multi-generational households", "harmony motifs"},
			Avoid:     []string{"clocks", "number four", "solitary elderly figures"},
		},
		Layout: LayoutGuidance{
			ReadingDirection: "left-to-right",
			Hierarchy:        "authority and institutional endorsement placed prominently",
			Density:          "high information density accepted",
		},
		Typography: TypographyGuidance{
			PreferredScripts: []string{"Simplified Chinese"},
			MinBodySizePt:    10,
			Notes:            "Avoid stylized fonts for regulatory text",
		},
	},
	"Japan": {
		Market: "Japan",
		Colors: ColorGuidance{
			Preferred: []string{"pastel tones", "blue", "green"},
			Avoid:     []string{"white paired with black"},
			Notes: map[string]string{
				"white paired with black": "Funeral color pairing",
			},
		},
		Imagery: ImageryGuidance{
			Preferred: []string{"seasonal references", "understated professional settings"},
			Avoid:     []string{"direct eye contact close-ups", "number four"},
		},
		Layout: LayoutGuidance{
			ReadingDirection: "left-to-right",
			Hierarchy:        "group consensus cues before individual benefit claims",
			Density:          "high detail expected; omissions read as evasive",
		},
		Typography: TypographyGuidance{
			PreferredScripts: []string{"Japanese"},
			MinBodySizePt:    9,
		},
	},
	"Germany": {
		Market: "Germany",
		Colors: ColorGuidance{
			Preferred: []string{"blue", "white", "grey"},
			Avoid:     []string{},
		},
		Imagery: ImageryGuidance{
			Preferred: []string{"clinical settings", "data visualizations"},
			Avoid:     []string{"exaggerated lifestyle imagery"},
		},
		Layout: LayoutGuidance{
			ReadingDirection: "left-to-right",
			Hierarchy:        "evidence and references placed prominently",
			Density:          "data-forward, footnoted",
		},
		Typography: TypographyGuidance{
			PreferredScripts: []string{"Latin"},
			MinBodySizePt:    9,
		},
	},
	"United States": {
		Market: "United States",
		Colors: ColorGuidance{
			Preferred: []string{"blue", "green", "orange"},
			Avoid:     []string{},
		},
		Imagery: ImageryGuidance{
			Preferred: []string{"diverse patient populations", "active lifestyles"},
			Avoid:     []string{},
		},
		Layout: LayoutGuidance{
			ReadingDirection: "left-to-right",
			Hierarchy:        "benefit claim first, fair balance adjacent",
			Density:          "low density, prominent safety information",
		},
		Typography: TypographyGuidance{
			PreferredScripts: []string{"Latin"},
			MinBodySizePt:    10,
			Notes:            "ISI must meet minimum legibility sizes",
		},
	},
	"Saudi Arabia": {
		Market: "Saudi Arabia",
		Colors: ColorGuidance{
			Preferred: []string{"green", "white", "gold"},
			Avoid:     []string{},
		},
		Imagery: ImageryGuidance{
			Preferred: []string{"family contexts", "modest dress"},
			Avoid:     []string{"alcohol references", "mixed-gender casual settings"},
		},
		Layout: LayoutGuidance{
			ReadingDirection: "right-to-left",
			Hierarchy:        "mirror layouts for RTL reading order",
			Density:          "moderate",
		},
		Typography: TypographyGuidance{
			PreferredScripts: []string{"Arabic"},
			MinBodySizePt:    11,
			Notes:            "Arabic script requires larger minimum sizes for legibility",
		},
	},
}

// DefaultVisualGuidelines returns the generic fallback structure served for
// markets without curated guidance.
func DefaultVisualGuidelines(market string) VisualCulturalGuidelines {
	return VisualCulturalGuidelines{
		Market: market,
		Colors: ColorGuidance{
			Preferred: []string{"blue", "green"},
			Avoid:     []string{},
		},
		Imagery: ImageryGuidance{
			Preferred: []string{"neutral professional settings"},
			Avoid:     []string{},
		},
		Layout: LayoutGuidance{
			ReadingDirection: "left-to-right",
			Hierarchy:        "standard benefit-evidence-safety ordering",
			Density:          "moderate",
		},
		Typography: TypographyGuidance{
			PreferredScripts: []string{"Latin"},
			MinBodySizePt:    10,
		},
		Generic: true,
	}
}

var marketProfiles = map[string]MarketProfile{
	"China": {
		Market:             "China",
		CommunicationStyle: ctypes.StyleIndirect,
		CulturalNotes: []string{
			"Family involvement in healthcare decisions is crucial",
			"Respect for medical authority figures shapes messaging tone",
			"Avoid the number four in dosing schedules and pricing displays",
		},
	},
	"Japan": {
		Market:             "Japan",
		CommunicationStyle: ctypes.StyleIndirect,
		CulturalNotes: []string{
			"Indirect communication is preferred; absolute claims erode trust",
			"Group benefit framing outperforms individual benefit framing",
		},
	},
	"Germany": {
		Market:             "Germany",
		CommunicationStyle: ctypes.StyleDirect,
		CulturalNotes: []string{
			"Direct, evidence-led claims are expected; vagueness reads as evasion",
			"Cite clinical data sources inline",
		},
	},
	"United States": {
		Market:             "United States",
		CommunicationStyle: ctypes.StyleDirect,
		CulturalNotes: []string{
			"Direct-to-consumer framing is accepted with fair balance",
			"Patient empowerment language performs well",
		},
	},
	"Brazil": {
		Market:             "Brazil",
		CommunicationStyle: ctypes.StyleDirect,
		CulturalNotes: []string{
			"Warm, relational tone preferred over clinical detachment",
		},
	},
	"Saudi Arabia": {
		Market:             "Saudi Arabia",
		CommunicationStyle: ctypes.StyleIndirect,
		CulturalNotes: []string{
			"Family and community framing is central to health decisions",
			"Imagery must respect modesty conventions",
		},
	},
}

// GenericCulturalNote is appended for markets without curated notes.
const GenericCulturalNote = "No curated guidance for this market; consult local cultural experts before launch"

// ─────────────────────────────────────────────────────────────────────────────
// StaticGuidelineProvider
// ─────────────────────────────────────────────────────────────────────────────

// StaticGuidelineProvider serves the curated tables above.  It satisfies
// GuidelineProvider and is safe for concurrent use (the tables are
// read-only after package init).
type StaticGuidelineProvider struct {
	loadedAt time.Time
}

// NewStaticGuidelineProvider returns the built-in guideline provider.
func NewStaticGuidelineProvider() *StaticGuidelineProvider {
	return &StaticGuidelineProvider{loadedAt: time.Now().UTC()}
}

// GetVisualGuidelines returns curated guidance for the market, or the
// generic default structure for unknown markets.
func (p *StaticGuidelineProvider) GetVisualGuidelines(market string) VisualCulturalGuidelines {
	if g, ok := visualGuidelines[market]; ok {
		return g
	}
	return DefaultVisualGuidelines(market)
}

// GetMarketProfile returns the curated profile for the market.  The second
// return value reports whether the market is curated; fallback profiles
// carry only the generic cultural note and no style preference.
func (p *StaticGuidelineProvider) GetMarketProfile(market string) (MarketProfile, bool) {
	if mp, ok := marketProfiles[market]; ok {
		mp.UpdatedAt = p.loadedAt
		return mp, true
	}
	return MarketProfile{
		Market:        market,
		CulturalNotes: []string{GenericCulturalNote},
		UpdatedAt:     p.loadedAt,
	}, false
}

// CuratedMarkets returns the sorted-insertion list of markets with curated
// profiles, primarily for diagnostics endpoints.
func (p *StaticGuidelineProvider) CuratedMarkets() []string {
	out := make([]string, 0, len(marketProfiles))
	for m := range marketProfiles {
		out = append(out, m)
	}
	return out
}
