package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/valcour/sigclip/internal/dataset"
	"github.com/valcour/sigclip/internal/output"
	"github.com/valcour/sigclip/pkg/interp"
)

// interpPoint is one evaluated query.
type interpPoint struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Bracket int     `json:"bracket"`
}

func interpCmd() *cli.Command {
	return &cli.Command{
		Name:      "interp",
		Usage:     "Linear interpolation over a monotonic two-column table",
		ArgsUsage: "x [x...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "table",
				Aliases:  []string{"t"},
				Usage:    "File with abscissa and ordinate columns",
				Required: true,
			},
		},
		Action: runInterp,
	}
}

func runInterp(c *cli.Context) error {
	args := c.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("no query points given")
	}

	queries := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("query %q: %w", a, err)
		}
		queries[i] = v
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	opts := dataset.Options{Comment: cfg.Input.Comment}
	xs, ys, err := dataset.LoadTable(c.String("table"), opts)
	if err != nil {
		return err
	}

	table, err := interp.NewTable(xs, ys)
	if err != nil {
		return err
	}

	points := make([]interpPoint, len(queries))
	rows := make([][]string, len(queries))
	for i, x := range queries {
		points[i] = interpPoint{
			X:       x,
			Y:       table.Eval(x),
			Bracket: interp.Locate(xs, x),
		}
		rows[i] = []string{
			fmt.Sprintf("%g", points[i].X),
			fmt.Sprintf("%g", points[i].Y),
			fmt.Sprintf("%d", points[i].Bracket),
		}
	}

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	out := output.NewTable(
		"Interpolation",
		[]string{"X", "Y", "Bracket"},
		rows,
		points,
	)
	return formatter.Output(out)
}
