// Command aoc runs Advent of Code solvers built on lazy sequence views.
//
//	aoc run 2015 1            # reads the configured input path
//	aoc run 2025 6 day6.txt   # reads the named file
//	aoc run 2024 1 -          # reads standard input
//	aoc list
//	aoc schema > config.schema.json
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/kbukum/prelude/config"
	"github.com/kbukum/prelude/errors"
	"github.com/kbukum/prelude/logger"
	"github.com/kbukum/prelude/puzzles"
	"github.com/kbukum/prelude/version"
)

func newApp(stdin io.Reader, stdout io.Writer) *cli.App {
	var (
		configFile string
		runID      string
		r          *runner
	)

	return &cli.App{
		Name:    serviceName,
		Usage:   "Advent of Code solutions",
		Version: version.Get().String(),
		Suggest: true,
		Writer:  stdout,

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "config file (default: search ./cmd/aoc/config.yml)",
				EnvVars:     []string{"AOC_CONFIG_FILE"},
				Destination: &configFile,
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			r, err = newRunner(c.Context, cfg, stdin, stdout)
			return err
		},
		After: func(c *cli.Context) error {
			if r != nil {
				r.close(c.Context)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "solve a puzzle",
				ArgsUsage: "<year> <day> [input|-]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "run-id",
						Usage:       "UUID tagging the logs and traces of this run (default: random)",
						Destination: &runID,
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() < 2 || c.NArg() > 3 {
						return errors.Validation("usage: aoc run <year> <day> [input|-]")
					}
					id, err := puzzles.ParseID(c.Args().Get(0), c.Args().Get(1))
					if err != nil {
						return err
					}
					rid, err := newRunID(runID)
					if err != nil {
						return err
					}
					return r.solve(c.Context, id, c.Args().Get(2), rid)
				},
			},
			{
				Name:  "list",
				Usage: "list the available puzzles",
				Action: func(_ *cli.Context) error {
					return r.list()
				},
			},
			{
				Name:  "schema",
				Usage: "print the JSON Schema of the config file",
				Action: func(_ *cli.Context) error {
					out, err := config.Schema()
					if err != nil {
						return err
					}
					_, err = fmt.Fprintf(stdout, "%s\n", out)
					return err
				},
			},
		},
	}
}

func main() {
	app := newApp(os.Stdin, os.Stdout)
	if err := app.RunContext(context.Background(), os.Args); err != nil {
		logger.Error("aoc failed", logger.Fields(logger.FieldError, err.Error()))
		os.Exit(1)
	}
}
