// Package cli implements mlrctl, the offline command-line front end of the
// compliance engine.  All commands run against the in-memory rule store (or
// a rules file supplied with --rules-file); no server or database is needed.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/application/terminology"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/application/validation"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/rules"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/database/memory"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/monitoring/logging"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/intelligence/termextract"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// rootOptions holds the global flags shared by every subcommand.
type rootOptions struct {
	RulesFile string
	Output    string // "json" | "text"
}

// services bundles the wired application services for one invocation.
type services struct {
	validation  *validation.Service
	terminology *terminology.Service
}

// buildServices wires the offline service graph: seeded in-memory
// repositories, or repositories loaded from --rules-file.
func buildServices(opts *rootOptions) (*services, error) {
	var (
		ruleRepo *memory.RuleRepository
		termRepo *memory.TerminologyRepository
		err      error
	)
	if opts.RulesFile != "" {
		ruleRepo, termRepo, err = memory.LoadRulesFromYAML(opts.RulesFile)
		if err != nil {
			return nil, err
		}
	} else {
		ruleRepo = memory.NewSeededRuleRepository()
		termRepo = memory.NewSeededTerminologyRepository()
	}

	logger := logging.NewNopLogger()
	return &services{
		validation: validation.NewService(
			ruleRepo, rules.NewStaticGuidelineProvider(), nil, nil, logger),
		terminology: terminology.NewService(
			termRepo, termextract.NewExtractor(), nil, logger),
	}, nil
}

// NewRootCommand creates the mlrctl root command with all subcommands.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:     "mlrctl",
		Short:   "Cultural and regulatory compliance scoring for pharma marketing content",
		Version: fmt.Sprintf("%s (%s)", Version, GitCommit),
		Long: `mlrctl scores marketing content for cultural appropriateness and
terminology compliance across target markets, and generates market
transformation playbooks.  It runs fully offline against the built-in
rule tables or a YAML rules file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.RulesFile, "rules-file", "",
		"YAML rules file (defaults to the built-in rule tables)")
	cmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", "text",
		"output format: text or json")

	cmd.AddCommand(
		newValidateCommand(opts),
		newScoreCommand(opts),
		newTermsCommand(opts),
		newPlaybookCommand(opts),
	)
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// printResult renders v as indented JSON when --output=json, otherwise via
// the supplied text renderer.
func printResult(w io.Writer, opts *rootOptions, v interface{}, text func(io.Writer)) error {
	if opts.Output == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)
	return nil
}
