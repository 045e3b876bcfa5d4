package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagOutput string

func newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Regenerate the public copy of the store",
		Long: `Write the store annotated with image information to the public location,
optionally with a brotli-compressed sibling and an SFTP upload. The store
itself is only read. Passes that write the store publish automatically when
publish.output_path is configured.`,
		Args: cobra.NoArgs,
		RunE: runPublish,
	}

	cmd.Flags().StringVar(&flagOutput, "output", "", "Public copy path (overrides config)")

	return cmd
}

func runPublish(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	if flagOutput != "" {
		a.cfg.Publish.OutputPath = flagOutput
	}
	if !a.cfg.Publish.Enabled() {
		return fmt.Errorf("no public copy path: pass --output or set publish.output_path")
	}

	cat, err := a.store.Load()
	if err != nil {
		return fmt.Errorf("loading store: %w", err)
	}

	p, err := a.publisher()
	if err != nil {
		return err
	}

	out := &PublishOutput{}
	if flagDryRun {
		_, out.Report, err = p.Build(cat)
		if err != nil {
			return err
		}
	} else {
		if err := p.Publish(cmd.Context(), cat); err != nil {
			return fmt.Errorf("publishing: %w", err)
		}
		out.Report = p.LastReport()
	}

	return WriteOutput(cmd.OutOrStdout(), out, a.format, flagVerbose)
}
