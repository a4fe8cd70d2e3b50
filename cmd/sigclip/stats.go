package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/sourcegraph/conc"
	"github.com/urfave/cli/v2"

	"github.com/valcour/sigclip/internal/dataset"
	"github.com/valcour/sigclip/internal/output"
	"github.com/valcour/sigclip/pkg/aggregate"
	"github.com/valcour/sigclip/pkg/rank"
)

// fileStats is one file's row in the stats report.
type fileStats struct {
	Path    string            `json:"path"`
	Sum     float64           `json:"sum"`
	Moments aggregate.Moments `json:"moments"`
	Median  float64           `json:"median"`
	Summary dataset.Summary   `json:"summary"`
}

func statsCmd() *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "Summary statistics over sample files",
		ArgsUsage: "file [file...]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "column",
				Usage: "Whitespace-separated column to read (0-based)",
			},
		},
		Action: runStats,
	}
}

func runStats(c *cli.Context) error {
	paths := getPaths(c)
	if len(paths) == 0 {
		return fmt.Errorf("no input files given")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	opts := dataset.Options{Comment: cfg.Input.Comment, Column: cfg.Input.Column}
	if c.IsSet("column") {
		opts.Column = c.Int("column")
	}

	results := make([]fileStats, len(paths))
	errs := make([]error, len(paths))

	// Each file is an independent sample set; process them in parallel.
	wg := conc.NewWaitGroup()
	for i, path := range paths {
		wg.Go(func() {
			results[i], errs[i] = computeStats(path, opts)
		})
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	rows := make([][]string, len(results))
	for i, r := range results {
		warnSmallSample(r.Path, r.Moments.N)
		rows[i] = []string{
			r.Path,
			fmt.Sprintf("%d", r.Moments.N),
			fmt.Sprintf("%g", r.Moments.Mean),
			fmt.Sprintf("%g", r.Median),
			fmt.Sprintf("%g", r.Moments.Variance),
			fmt.Sprintf("%g", r.Summary.Min),
			fmt.Sprintf("%g", r.Summary.Max),
		}
	}

	table := output.NewTable(
		"Sample Statistics",
		[]string{"File", "N", "Mean", "Median", "Variance", "Min", "Max"},
		rows,
		results,
	)
	totalN := 0
	for _, r := range results {
		totalN += r.Moments.N
	}
	table.Footer = []string{"Total", fmt.Sprintf("%d", totalN), "", "", "", "", ""}
	return formatter.Output(table)
}

func computeStats(path string, opts dataset.Options) (fileStats, error) {
	samples, err := dataset.Load(path, opts)
	if err != nil {
		return fileStats{}, err
	}

	indx := rank.Identity(len(samples))
	sum := aggregate.Sum(samples, indx)
	moments, err := aggregate.Mean(samples, indx)
	if err != nil {
		return fileStats{}, fmt.Errorf("%s: %w", path, err)
	}
	median, err := aggregate.Median(samples, indx)
	if err != nil {
		return fileStats{}, fmt.Errorf("%s: %w", path, err)
	}

	return fileStats{
		Path:    path,
		Sum:     sum,
		Moments: moments,
		Median:  median,
		Summary: dataset.Summarize(samples),
	}, nil
}

// warnSmallSample nudges the user when a robust estimate rests on very
// few points.
func warnSmallSample(path string, n int) {
	if n < 3 {
		color.Yellow("%s: only %d samples, statistics are fragile", path, n)
	}
}
