package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"qbank/internal/classifier"
	"qbank/internal/config"
	"qbank/internal/dataset"
	"qbank/internal/logger"
	"qbank/internal/pipeline"
	"qbank/internal/report"
)

// globalOptions are shared by every command.
type globalOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "qbank",
		Short: "Convert interview question dumps into technical and HR JSON datasets",
		Long: "qbank reads a plain-text question dump per company, sorts each line into the technical or HR " +
			"section, and writes technical.json and hr.json into the company's output directory.\n\n" +
			"Without a --config file the built-in company list (Infosys, TCS under " + config.DefaultBaseDir + ") is processed.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAll(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to YAML configuration file (default: built-in company list)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override logging level (debug, info, warn, error)")

	cmd.AddCommand(
		newClassifyCmd(opts),
		newTraceCmd(opts),
		newValidateCmd(opts),
		newInitCmd(),
	)

	return cmd
}

// loadConfig returns the file configuration or the built-in default.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	cfg := config.Default()

	if o.configPath != "" {
		loaded, err := config.LoadConfig(o.configPath)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func newClassifier(cfg *config.Config) (*classifier.Classifier, error) {
	clOpts, err := cfg.ClassifierOptions()
	if err != nil {
		return nil, err
	}

	return classifier.New(clOpts), nil
}

func newProcessor(cfg *config.Config, stderr, stdout io.Writer) (*pipeline.Processor, error) {
	c, err := newClassifier(cfg)
	if err != nil {
		return nil, err
	}

	log := logger.NewWithWriter(stderr, cfg.Logging.Level).ForRun()
	log.Debug("configuration loaded", "config", cfg.String())

	return pipeline.NewProcessor(c, dataset.NewWriter(cfg.Output.Indent), log, stdout), nil
}

func runAll(cmd *cobra.Command, opts *globalOptions) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	p, err := newProcessor(cfg, cmd.ErrOrStderr(), out)
	if err != nil {
		return err
	}

	results, err := p.Run(cfg.EnabledCompanies())
	if err != nil {
		return err
	}

	rows := make([]report.CompanyRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, report.CompanyRow{
			Company:     r.Company.Name,
			Technical:   len(r.Dataset.Technical),
			HR:          len(r.Dataset.HR),
			InputDigest: r.InputDigest,
		})
	}

	fmt.Fprintln(out)

	return report.Summary(rows).Render(out)
}
