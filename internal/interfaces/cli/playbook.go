package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

func newPlaybookCommand(opts *rootOptions) *cobra.Command {
	var (
		source    string
		target    string
		assetType string
	)

	cmd := &cobra.Command{
		Use:   "playbook",
		Short: "Generate a market transformation playbook",
		Long: `Builds the source-to-target adaptation plan: text, visual and
structural transformations plus cultural notes for the target market.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svcs, err := buildServices(opts)
			if err != nil {
				return err
			}

			playbook, err := svcs.validation.GenerateTransformationPlaybook(
				cmd.Context(), ctypes.ContentInput{}, assetType, source, target)
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), opts, playbook, func(w io.Writer) {
				fmt.Fprintf(w, "Playbook: %s -> %s (%s)\n", playbook.SourceMarket,
					playbook.TargetMarket, playbook.AssetType)

				if len(playbook.TextTransformations) > 0 {
					fmt.Fprintln(w, "\nText transformations:")
					for _, tr := range playbook.TextTransformations {
						fmt.Fprintf(w, "  - %s\n", tr.Rule)
						if tr.Example != "" {
							fmt.Fprintf(w, "    example: %s\n", tr.Example)
						}
					}
				}
				if len(playbook.VisualTransformations) > 0 {
					fmt.Fprintln(w, "\nVisual transformations:")
					for _, tr := range playbook.VisualTransformations {
						fmt.Fprintf(w, "  - %s\n", tr)
					}
				}
				if len(playbook.StructuralChanges) > 0 {
					fmt.Fprintln(w, "\nStructural changes:")
					for _, change := range playbook.StructuralChanges {
						fmt.Fprintf(w, "  - %s (effort: %s)\n", change.Change, change.EstimatedEffort)
					}
				}
				if len(playbook.CulturalNotes) > 0 {
					fmt.Fprintln(w, "\nCultural notes:")
					for _, note := range playbook.CulturalNotes {
						fmt.Fprintf(w, "  - %s\n", note)
					}
				}
			})
		},
	}

	cmd.Flags().StringVar(&source, "source", "United States", "source market")
	cmd.Flags().StringVarP(&target, "target", "t", "", "target market [required]")
	cmd.Flags().StringVar(&assetType, "asset-type", "banner", "asset type (banner, email, ...)")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}
