package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

func newTermsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "terms",
		Short: "Terminology intelligence commands",
	}
	cmd.AddCommand(
		newTermsAnalyzeCommand(opts),
		newTermsCheckCommand(opts),
		newTermsSuggestCommand(opts),
	)
	return cmd
}

func newTermsAnalyzeCommand(opts *rootOptions) *cobra.Command {
	var (
		brandID  string
		area     string
		audience string
		markets  []string
	)

	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Analyze full text against the brand terminology database",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := buildServices(opts)
			if err != nil {
				return err
			}

			result, err := svcs.terminology.AnalyzeTerminology(
				cmd.Context(), strings.Join(args, " "), brandID, area,
				ctypes.AudienceContext(audience), markets)
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), opts, result, func(w io.Writer) {
				fmt.Fprintf(w, "Compliance score: %d\n", result.OverallComplianceScore)
				for _, verdict := range result.TermResults {
					state := "ok"
					if !verdict.IsValid {
						state = "REVIEW"
					}
					fmt.Fprintf(w, "  %-30s %3d  %s\n", verdict.Term, verdict.ValidationScore, state)
				}
				for _, issue := range result.CriticalIssues {
					fmt.Fprintf(w, "  critical: %s\n", issue)
				}
				for term, alt := range result.ApprovedAlternatives {
					fmt.Fprintf(w, "  replace %q with %q\n", term, alt)
				}
				for _, rec := range result.Recommendations {
					fmt.Fprintf(w, "  - %s\n", rec)
				}
			})
		},
	}

	cmd.Flags().StringVar(&brandID, "brand", "", "brand identifier [required]")
	cmd.Flags().StringVar(&area, "area", "", "therapeutic area (empty spans the brand)")
	cmd.Flags().StringVar(&audience, "audience", "hcp", "audience context: patient|hcp|marketing|regulatory")
	cmd.Flags().StringSliceVarP(&markets, "markets", "m", nil, "target markets")
	_ = cmd.MarkFlagRequired("brand")
	return cmd
}

func newTermsCheckCommand(opts *rootOptions) *cobra.Command {
	var (
		brandID  string
		audience string
		market   string
	)

	cmd := &cobra.Command{
		Use:   "check [term]",
		Short: "Validate a single term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := buildServices(opts)
			if err != nil {
				return err
			}

			verdict, err := svcs.terminology.ValidateTermInRealTime(
				cmd.Context(), args[0], brandID, ctypes.AudienceContext(audience), market)
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), opts, verdict, func(w io.Writer) {
				fmt.Fprintf(w, "Term:  %s\n", verdict.Term)
				fmt.Fprintf(w, "Score: %d (valid: %t)\n", verdict.ValidationScore, verdict.IsValid)
				for _, issue := range verdict.Issues {
					fmt.Fprintf(w, "  issue: %s\n", issue)
				}
				if verdict.PreferredAlternative != "" {
					fmt.Fprintf(w, "  preferred: %s\n", verdict.PreferredAlternative)
				}
				for _, warning := range verdict.CulturalWarnings {
					fmt.Fprintf(w, "  cultural: %s\n", warning)
				}
			})
		},
	}

	cmd.Flags().StringVar(&brandID, "brand", "", "brand identifier [required]")
	cmd.Flags().StringVar(&audience, "audience", "hcp", "audience context: patient|hcp|marketing|regulatory")
	cmd.Flags().StringVarP(&market, "market", "m", "", "target market")
	_ = cmd.MarkFlagRequired("brand")
	return cmd
}

func newTermsSuggestCommand(opts *rootOptions) *cobra.Command {
	var (
		brandID  string
		area     string
		audience string
		market   string
	)

	cmd := &cobra.Command{
		Use:   "suggest [partial]",
		Short: "Suggest approved terms for a partial input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := buildServices(opts)
			if err != nil {
				return err
			}

			suggestions, err := svcs.terminology.GetContextualSuggestions(
				cmd.Context(), args[0], brandID, area, ctypes.AudienceContext(audience), market)
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), opts, suggestions, func(w io.Writer) {
				if len(suggestions) == 0 {
					fmt.Fprintln(w, "No approved terms match.")
					return
				}
				for _, s := range suggestions {
					fmt.Fprintf(w, "  %-30s confidence %3d  %s\n", s.Term, s.Confidence, s.Definition)
				}
			})
		},
	}

	cmd.Flags().StringVar(&brandID, "brand", "", "brand identifier [required]")
	cmd.Flags().StringVar(&area, "area", "", "therapeutic area (empty spans the brand)")
	cmd.Flags().StringVar(&audience, "audience", "hcp", "audience context: patient|hcp|marketing|regulatory")
	cmd.Flags().StringVarP(&market, "market", "m", "", "target market for cultural-fit ranking")
	_ = cmd.MarkFlagRequired("brand")
	return cmd
}
