package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"qbank/internal/config"
	"qbank/internal/models"
	"qbank/internal/pipeline"
	"qbank/internal/report"
	"qbank/internal/validator"
)

var errValidationFailed = errors.New("validation failed")

func newClassifyCmd(opts *globalOptions) *cobra.Command {
	var company, in, out string

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Process a single question dump",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			p, err := newProcessor(cfg, cmd.ErrOrStderr(), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			_, err = p.ProcessCompany(models.Company{Name: company, Input: in, OutputDir: out})

			return err
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "Company name used in the summary line")
	cmd.Flags().StringVarP(&in, "in", "i", "", "Path to the plain-text question dump")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output directory for technical.json and hr.json")

	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func newTraceCmd(opts *globalOptions) *cobra.Command {
	var in string

	var withBlank bool

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Show how each line of a dump is classified",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			c, err := newClassifier(cfg)
			if err != nil {
				return err
			}

			src, err := pipeline.LoadSource(in)
			if err != nil {
				return err
			}

			if src.Missing {
				return fmt.Errorf("%s: %w", in, fs.ErrNotExist)
			}

			res, err := c.Classify(src.Lines)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := report.Trace(res.Decisions, withBlank).Render(out); err != nil {
				return err
			}

			fmt.Fprintf(out, "\n%d lines: %d headers, %d questions, %d noise, %d orphans\n",
				res.Stats.Lines, res.Stats.Headers, res.Stats.Questions, res.Stats.Noise, res.Stats.Orphans)

			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "Path to the plain-text question dump")
	cmd.Flags().BoolVar(&withBlank, "all", false, "Include blank lines")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

func newValidateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [DIR...]",
		Short: "Check written datasets against the record schema",
		Long:  "Validate technical.json and hr.json in each DIR. Without arguments, the output directories of the configured companies are checked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dirs := args

			if len(dirs) == 0 {
				cfg, err := opts.loadConfig()
				if err != nil {
					return err
				}

				for _, co := range cfg.EnabledCompanies() {
					dirs = append(dirs, co.OutputDir)
				}
			}

			out := cmd.OutOrStdout()
			failed := 0

			for _, dir := range dirs {
				res, err := validator.ValidateDir(dir)
				if err != nil {
					return err
				}

				if !res.IsValid {
					failed++

					res.PrintErrors(out)

					continue
				}

				fmt.Fprintf(out, "✅ %s: %d records\n", dir, res.Records)
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d directories", errValidationFailed, failed, len(dirs))
			}

			return nil
		},
	}
}

func newInitCmd() *cobra.Command {
	var out string

	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in configuration to a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				if _, err := os.Stat(out); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", out)
				}
			}

			if err := config.Default().SaveConfig(out); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Saved to: %s\n", out)

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "qbank.yaml", "Path of the configuration file to write")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
