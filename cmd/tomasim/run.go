package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/maemo32/tomasulo-sim/internal/engine"
)

func newRunCmd() *cobra.Command {
	var opts loadOptions
	var trace bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a program to completion and print terminal statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := loadEngine(opts)
			if err != nil {
				return err
			}

			for !eng.Finished() {
				if err := eng.Step(); err != nil {
					if trace {
						log.Printf("halted at cycle %d: %v", eng.Cycle(), err)
					}
					printStats(eng)
					return err
				}
				if trace {
					log.Printf("cycle %d: pc=%d", eng.Cycle()-1, eng.CurrentPC())
				}
			}

			printStats(eng)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.programPath, "program", "", "path to the assembly program file (required)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to a TOML hardware configuration file (optional)")
	cmd.Flags().StringVar(&opts.memInitPath, "mem-init", "", "path to an addr:value memory initializer file (optional)")
	cmd.Flags().IntVar(&opts.startPC, "start-pc", 0, "program counter of the first instruction")
	cmd.Flags().BoolVar(&trace, "trace", false, "log a line per cycle to stderr")
	cmd.MarkFlagRequired("program")

	return cmd
}

func printStats(eng *engine.Engine) {
	stats := eng.Stats()
	fmt.Printf("total_cycles=%d completed_instructions=%d ipc=%.3f branches=%d mispredictions=%d misprediction_pct=%.2f\n",
		stats.CyclesExecuted, stats.Completed, stats.IPC(), stats.Branches, stats.Mispredictions, stats.MispredictionRate()*100)
}
