package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tomasim",
		Short: "Cycle-accurate Tomasulo out-of-order scheduler simulator",
		Long: "tomasim loads an assembly program and an optional hardware\n" +
			"configuration, runs it through the reservation-station\n" +
			"pipeline engine, and reports per-cycle snapshots and\n" +
			"terminal statistics.",
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newStepCmd())
	return root
}
