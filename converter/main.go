package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"git.solver4all.com/azaryc2s/dropoff"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "converter"
	app.Usage = "convert every .in instance of a directory into a .json instance"
	app.ArgsUsage = "<dir>"
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "validate", Usage: "Skip instances that fail validation"},
	}
	app.Action = func(c *cli.Context) error {
		log := dropoff.NewLogger(os.Stderr, false)
		targetDir := c.Args().First()
		if targetDir == "" {
			return cli.NewExitError("No directory passed!", 2)
		}
		files, err := os.ReadDir(targetDir)
		if err != nil {
			return err
		}
		for _, f := range files {
			if f.IsDir() || filepath.Ext(f.Name()) != ".in" {
				continue
			}
			fileName := filepath.Join(targetDir, f.Name())
			inst, err := dropoff.LoadInstance(fileName)
			if err != nil {
				log.Error(err, "Skipping file", "input", fileName)
				continue
			}
			if c.Bool("validate") {
				if err = dropoff.Validate(inst); err != nil {
					log.Error(err, "Skipping file", "input", fileName)
					continue
				}
			}
			inst.Comment = fmt.Sprintf("converted from %s", f.Name())
			jsonName := strings.TrimSuffix(fileName, ".in") + ".json"
			if err = dropoff.SaveInstance(jsonName, inst); err != nil {
				return fmt.Errorf("At %s: %w", jsonName, err)
			}
			log.Info("instance converted", "input", fileName, "output", jsonName)
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
