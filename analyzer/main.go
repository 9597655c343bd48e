/* Copyright 2021, Arkadiusz Zarychta, arkadiusz.zarychta@h-brs.de */

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"git.solver4all.com/azaryc2s/dropoff"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "analyzer"
	app.Usage = "decode and check solver solutions of a dropoff instance"
	app.ArgsUsage = "<instance> <solution.sol>..."
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", Usage: "Path to a YAML config file"},
		cli.BoolFlag{Name: "write", Usage: "Attach the last valid solution to the instance and write it next to the input as _sol.json"},
	}
	app.Action = func(c *cli.Context) error {
		log := dropoff.NewLogger(os.Stderr, false)
		if len(c.Args()) < 2 {
			return cli.NewExitError("No arguments passed!", 2)
		}
		cfg, err := dropoff.LoadConfig(c.String("config"))
		if err != nil {
			return err
		}
		instFile := c.Args().First()
		inst, err := dropoff.LoadInstance(instFile)
		if err != nil {
			return err
		}
		system := dropoff.CollectSysInfo()

		fmt.Printf("Name,Solution,Valid,Cost,DrivingCost,WalkingCost,TourLength,Dropoffs,Comment\n")
		for _, solFile := range c.Args().Tail() {
			startTime := time.Now()
			sol, err := analyze(inst, solFile, cfg.DrivingFactor)
			if err != nil {
				log.Error(err, "invalid solution", "instance", instFile, "solution", solFile)
				fmt.Printf("%s,%s,%t,,,,,,%q\n", inst.Name, solFile, false, err.Error())
				continue
			}
			sol.Time = time.Since(startTime).String()
			sol.System = system
			fmt.Printf("%s,%s,%t,%.4f,%.4f,%.4f,%d,%d,%s\n", inst.Name, solFile, true, sol.Cost, sol.DrivingCost, sol.WalkingCost, len(sol.Tour), len(sol.Dropoffs), sol.Comment)
			inst.Solution = sol
		}

		if c.Bool("write") && inst.Solution != nil {
			fileName := strings.TrimSuffix(instFile, filepath.Ext(instFile)) + "_sol.json"
			if err = dropoff.SaveInstance(fileName, inst); err != nil {
				return fmt.Errorf("At %s: %w", fileName, err)
			}
			log.Info("solution written", "output", fileName)
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func analyze(inst *dropoff.Instance, solFile string, drivingFactor float64) (*dropoff.Solution, error) {
	f, err := os.Open(solFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	values, err := dropoff.ReadSolValues(f)
	if err != nil {
		return nil, err
	}
	sol, err := dropoff.DecodeSolution(inst, values)
	if err != nil {
		return nil, err
	}
	if err = dropoff.CheckSolution(inst, sol, drivingFactor); err != nil {
		return nil, err
	}
	sol.Comment = fmt.Sprintf("Decoded from %s", filepath.Base(solFile))
	return sol, nil
}
