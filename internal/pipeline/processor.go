// Package pipeline reads company dumps, classifies them and writes the JSON datasets.
package pipeline

import (
	"fmt"
	"io"
	"log/slog"

	"qbank/internal/classifier"
	"qbank/internal/dataset"
	"qbank/internal/logger"
	"qbank/internal/models"
	"qbank/internal/validator"
	"qbank/pkg/checksum"
)

// Result describes one processed company.
type Result struct {
	Company      models.Company
	Dataset      *models.Dataset
	Paths        dataset.Paths
	InputDigest  string
	OutputDigest string
	Stats        models.Stats
	InputMissing bool
}

// Processor runs read, classify, validate and write for each company.
type Processor struct {
	classifier *classifier.Classifier
	writer     *dataset.Writer
	log        *logger.Logger
	out        io.Writer
}

// NewProcessor creates a processor. Progress lines go to out.
func NewProcessor(c *classifier.Classifier, w *dataset.Writer, log *logger.Logger, out io.Writer) *Processor {
	if log == nil {
		log = logger.Discard()
	}

	if out == nil {
		out = io.Discard
	}

	return &Processor{
		classifier: c,
		writer:     w,
		log:        log,
		out:        out,
	}
}

// ProcessCompany builds and writes the dataset of one company.
// The Processed line is printed only when both files were written.
func (p *Processor) ProcessCompany(co models.Company) (*Result, error) {
	log := p.log.With("company", co.Name)

	fmt.Fprintf(p.out, "Reading %s\n", co.Input)

	src, err := LoadSource(co.Input)
	if err != nil {
		return nil, err
	}

	if src.Missing {
		log.Warn("input file not found, writing empty dataset", "path", co.Input)
	}

	classified, err := p.classifier.Classify(src.Lines)
	if err != nil {
		return nil, fmt.Errorf("failed to classify %s: %w", co.Input, err)
	}

	if p.log.Enabled(slog.LevelDebug) {
		for _, d := range classified.Decisions {
			if d.Kind == models.LineBlank {
				continue
			}

			log.Debug("line", "n", d.Line, "kind", d.Kind.String(), "section", d.Section.String(), "reason", d.Reason)
		}
	}

	if err := validator.ValidateDataset(classified.Dataset).Err(); err != nil {
		return nil, fmt.Errorf("classified dataset is inconsistent: %w", err)
	}

	paths, err := p.writer.Write(co.OutputDir, classified.Dataset)
	if err != nil {
		return nil, err
	}

	outDigest, err := checksum.Files(paths.Technical, paths.HR)
	if err != nil {
		return nil, err
	}

	log.Info("dataset written",
		"dir", co.OutputDir,
		"technical", len(classified.Dataset.Technical),
		"hr", len(classified.Dataset.HR),
		"noise", classified.Stats.Noise,
		"orphans", classified.Stats.Orphans,
		"output_digest", checksum.Short(outDigest),
	)

	fmt.Fprintf(p.out, "Processed %s: %d Technical, %d HR questions.\n",
		co.Name, len(classified.Dataset.Technical), len(classified.Dataset.HR))

	return &Result{
		Company:      co,
		Dataset:      classified.Dataset,
		Paths:        paths,
		InputDigest:  src.Digest,
		OutputDigest: outDigest,
		Stats:        classified.Stats,
		InputMissing: src.Missing,
	}, nil
}

// Run processes companies in order and stops at the first failure.
// Results of the companies completed before the failure are returned with the error.
func (p *Processor) Run(companies []models.Company) ([]*Result, error) {
	results := make([]*Result, 0, len(companies))

	for _, co := range companies {
		res, err := p.ProcessCompany(co)
		if err != nil {
			return results, fmt.Errorf("%s: %w", co.Name, err)
		}

		results = append(results, res)
	}

	return results, nil
}
