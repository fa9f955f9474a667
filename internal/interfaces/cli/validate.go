package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/application/validation"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

func newValidateCommand(opts *rootOptions) *cobra.Command {
	var (
		file      string
		headline  string
		body      string
		cta       string
		colors    []string
		imagery   []string
		assetType string
		markets   []string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate content against every target market",
		Long: `Runs the full validation pipeline: taboo rule matching, market
readiness scoring, risk tiering and recommendations.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svcs, err := buildServices(opts)
			if err != nil {
				return err
			}

			content := ctypes.ContentInput{
				Headline: headline,
				Body:     body,
				CTA:      cta,
				BrandElements: ctypes.BrandElements{
					Colors:  colors,
					Imagery: imagery,
				},
			}
			if file != "" {
				raw, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read content file: %w", err)
				}
				if err := json.Unmarshal(raw, &content); err != nil {
					return fmt.Errorf("parse content file %s: %w", file, err)
				}
			}
			result, err := svcs.validation.ValidateCulturalAppropriateness(
				cmd.Context(), content, assetType, markets)
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), opts, result, func(w io.Writer) {
				renderValidationResult(w, result)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "content JSON file (overrides the text flags)")
	cmd.Flags().StringVar(&headline, "headline", "", "content headline")
	cmd.Flags().StringVar(&body, "body", "", "content body copy")
	cmd.Flags().StringVar(&cta, "cta", "", "call to action")
	cmd.Flags().StringSliceVar(&colors, "colors", nil, "declared brand colors")
	cmd.Flags().StringSliceVar(&imagery, "imagery", nil, "declared imagery elements")
	cmd.Flags().StringVar(&assetType, "asset-type", "banner", "asset type (banner, email, ...)")
	cmd.Flags().StringSliceVarP(&markets, "markets", "m", nil, "target markets [required]")
	_ = cmd.MarkFlagRequired("markets")

	return cmd
}

func renderValidationResult(w io.Writer, result *validation.CulturalValidationResult) {
	fmt.Fprintf(w, "Overall score: %d\n", result.OverallScore)
	fmt.Fprintf(w, "Risk level:    %s\n", result.RiskLevel)

	if len(result.MarketReadiness) > 0 {
		fmt.Fprintln(w, "\nMarket readiness:")
		markets := make([]string, 0, len(result.MarketReadiness))
		for m := range result.MarketReadiness {
			markets = append(markets, m)
		}
		sort.Strings(markets)
		for _, m := range markets {
			fmt.Fprintf(w, "  %-20s %d\n", m, result.MarketReadiness[m])
		}
	}

	if len(result.Issues) > 0 {
		fmt.Fprintln(w, "\nIssues:")
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "  [%s] %s (%s): %s\n",
				strings.ToUpper(string(issue.Severity)), issue.Element, issue.Market, issue.Description)
		}
	}

	if len(result.Recommendations) > 0 {
		fmt.Fprintln(w, "\nRecommendations:")
		for _, rec := range result.Recommendations {
			fmt.Fprintf(w, "  - %s\n", rec)
		}
	}
}
