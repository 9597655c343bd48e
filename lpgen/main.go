/* Copyright 2021, Arkadiusz Zarychta, arkadiusz.zarychta@h-brs.de */

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"git.solver4all.com/azaryc2s/dropoff"
	"github.com/go-logr/logr"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"
)

func main() {
	inputs := dropoff.StringList()

	app := cli.NewApp()
	app.Name = "lpgen"
	app.Usage = "write the dropoff MILP of every input instance as an LP file"
	app.ArgsUsage = "[instance files...]"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", Usage: "Path to a YAML config file"},
		cli.GenericFlag{Name: "input", Value: inputs, Usage: "Path to an input instance (.in or .json), repeatable"},
		cli.StringFlag{Name: "output-dir", Usage: "Directory for the LP files"},
		cli.StringFlag{Name: "comparator", Usage: "Comparator of the source constraint. gt (default) or ge"},
		cli.StringFlag{Name: "objective", Usage: "Objective of the model. none (default) or cost"},
		cli.IntFlag{Name: "workers", Usage: "Number of instances generated in parallel"},
		cli.BoolFlag{Name: "validate", Usage: "Validate every instance before generating"},
		cli.BoolFlag{Name: "verbose", Usage: "Log every generated section"},
	}
	app.Action = func(c *cli.Context) error {
		log := dropoff.NewLogger(os.Stderr, c.Bool("verbose"))
		cfg, err := dropoff.LoadConfig(c.String("config"))
		if err != nil {
			return err
		}
		if c.IsSet("output-dir") {
			cfg.OutputDir = c.String("output-dir")
		}
		if c.IsSet("comparator") {
			cfg.SourceComparator = c.String("comparator")
		}
		if c.IsSet("objective") {
			cfg.Objective = c.String("objective")
		}
		if c.IsSet("workers") {
			cfg.Workers = c.Int("workers")
		}
		if c.Bool("validate") {
			cfg.Validate = true
		}
		if err = cfg.Check(); err != nil {
			return err
		}

		files := append(inputs.Values, c.Args()...)
		if len(files) == 0 {
			return cli.NewExitError("No input instances passed!", 2)
		}
		return run(context.Background(), log, cfg, files)
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run generates the files independently; the first failure cancels the rest.
func run(ctx context.Context, log logr.Logger, cfg dropoff.Config, files []string) error {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return err
	}
	gen := dropoff.NewGenerator(dropoff.WithLogr(log.WithName("generator")), dropoff.WithConfig(cfg))

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(cfg.Workers)
	for _, file := range files {
		file := file
		grp.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lpName, err := generate(gen, cfg, file)
			if err != nil {
				return fmt.Errorf("At %s: %w", file, err)
			}
			log.Info("LP written", "input", file, "output", lpName)
			return nil
		})
	}
	return grp.Wait()
}

func generate(gen *dropoff.Generator, cfg dropoff.Config, file string) (string, error) {
	inst, err := dropoff.LoadInstance(file)
	if err != nil {
		return "", err
	}
	if cfg.Validate {
		if err = dropoff.Validate(inst); err != nil {
			return "", err
		}
	}
	text, err := gen.Assemble(inst)
	if err != nil {
		return "", err
	}
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	lpName := filepath.Join(cfg.OutputDir, base+".lp")
	return lpName, os.WriteFile(lpName, []byte(text), 0644)
}
