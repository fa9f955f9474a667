package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newScoreCommand(opts *rootOptions) *cobra.Command {
	var markets []string

	cmd := &cobra.Command{
		Use:   "score [text]",
		Short: "Score a text draft in real time",
		Long: `Runs the lightweight single-pass scorer used for live feedback:
text taboo rules and the communication-style heuristic only.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := buildServices(opts)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			score, err := svcs.validation.ScoreRealTime(cmd.Context(), text, markets)
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), opts, score, func(w io.Writer) {
				fmt.Fprintf(w, "Score: %d\n", score.Score)
				for _, warning := range score.Warnings {
					fmt.Fprintf(w, "  [%s] %s (%s): %s\n",
						strings.ToUpper(string(warning.Severity)), warning.Element,
						warning.Market, warning.Message)
				}
				for _, suggestion := range score.Suggestions {
					fmt.Fprintf(w, "  suggestion: %s\n", suggestion)
				}
			})
		},
	}

	cmd.Flags().StringSliceVarP(&markets, "markets", "m", nil, "target markets [required]")
	_ = cmd.MarkFlagRequired("markets")
	return cmd
}
