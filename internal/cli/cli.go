package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/golf-catalog/internal/config"
	"github.com/pfrederiksen/golf-catalog/internal/logger"
	"github.com/pfrederiksen/golf-catalog/internal/pipeline"
	"github.com/pfrederiksen/golf-catalog/internal/publish"
	"github.com/pfrederiksen/golf-catalog/internal/storage"
)

const (
	ExitSuccess    = 0
	ExitError      = 1
	ExitIncomplete = 2
)

// errIncomplete makes `check --strict` exit with ExitIncomplete.
var errIncomplete = errors.New("catalog has records without a complete blurb")

var (
	flagConfig       string
	flagStore        string
	flagDescriptions string
	flagFormat       string
	flagDryRun       bool
	flagVerbose      bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course-catalog",
		Short: "Maintain the golf course catalog",
		Long: `A CLI tool to maintain the golf course catalog.
Each command loads the course store, applies one pass (ingest descriptions,
derive fields, add filler records, ...) and writes the store back together
with the descriptions side file and, when configured, the public copy.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default catalog.yaml if present)")
	cmd.PersistentFlags().StringVar(&flagStore, "store", "", "Course store JSON file (overrides config)")
	cmd.PersistentFlags().StringVar(&flagDescriptions, "descriptions", "", "Descriptions side file (overrides config)")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false, "Show what would change without writing anything")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(
		newIngestCmd(),
		newEnrichCmd(),
		newDedupeCmd(),
		newIgolfCmd(),
		newYardageCmd(),
		newStudioCmd(),
		newPublishCmd(),
		newCheckCmd(),
	)

	return cmd
}

// app holds what every command needs after flags are parsed.
type app struct {
	cfg    *config.Config
	log    *logger.Logger
	store  *storage.Storage
	format OutputFormat
}

// newApp loads configuration, applies flag overrides and sets up logging
// and storage.
func newApp(cmd *cobra.Command) (*app, error) {
	// Validate format
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return nil, fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagStore != "" {
		cfg.StorePath = flagStore
	}
	if cmd.Flags().Changed("descriptions") {
		cfg.DescriptionsPath = flagDescriptions
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if flagVerbose {
		level = logger.LevelDebug
	}
	log := logger.New(level, cmd.ErrOrStderr())
	logger.SetDefault(log)

	storePath, err := storage.ExpandHome(cfg.StorePath)
	if err != nil {
		return nil, err
	}
	descriptionsPath, err := storage.ExpandHome(cfg.DescriptionsPath)
	if err != nil {
		return nil, err
	}

	store, err := storage.New(storePath, descriptionsPath)
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}

	log.Debug("Configuration loaded", logger.Fields{
		"store":        storePath,
		"descriptions": descriptionsPath,
		"dry_run":      flagDryRun,
	})

	return &app{cfg: cfg, log: log, store: store, format: format}, nil
}

// runner returns a pass runner that also publishes when publishing is
// configured.
func (a *app) runner() (*pipeline.Runner, error) {
	r := &pipeline.Runner{Store: a.store, Log: a.log, DryRun: flagDryRun}
	if a.cfg.Publish.Enabled() {
		p, err := a.publisher()
		if err != nil {
			return nil, err
		}
		r.Publisher = p
	}
	return r, nil
}

func (a *app) publisher() (*publish.Publisher, error) {
	var uploader publish.Uploader
	if a.cfg.Publish.SFTP.Enabled() {
		u, err := publish.NewSFTPUploader(a.cfg.Publish.SFTP)
		if err != nil {
			return nil, fmt.Errorf("configuring upload: %w", err)
		}
		uploader = u
	}
	return publish.New(a.cfg.Publish, uploader, a.log), nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errIncomplete) {
			os.Exit(ExitIncomplete)
		}
		os.Exit(ExitError)
	}
}
