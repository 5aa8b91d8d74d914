package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maemo32/tomasulo-sim/internal/engine"
)

func newStepCmd() *cobra.Command {
	var opts loadOptions
	var cycles int

	cmd := &cobra.Command{
		Use:   "step",
		Short: "Advance a program by a fixed number of cycles and print a snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := loadEngine(opts)
			if err != nil {
				return err
			}

			for i := 0; i < cycles && !eng.Finished(); i++ {
				if err := eng.Step(); err != nil {
					printSnapshot(eng.Snapshot())
					return err
				}
			}

			printSnapshot(eng.Snapshot())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.programPath, "program", "", "path to the assembly program file (required)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to a TOML hardware configuration file (optional)")
	cmd.Flags().StringVar(&opts.memInitPath, "mem-init", "", "path to an addr:value memory initializer file (optional)")
	cmd.Flags().IntVar(&opts.startPC, "start-pc", 0, "program counter of the first instruction")
	cmd.Flags().IntVar(&cycles, "cycles", 1, "number of cycles to advance")
	cmd.MarkFlagRequired("program")

	return cmd
}

func printSnapshot(s engine.Snapshot) {
	fmt.Printf("cycle=%d current_pc=%d\n", s.Cycle, s.CurrentPC)

	fmt.Println("instructions:")
	for _, row := range s.Instructions {
		fmt.Printf("  %-28s issue=%-3s start=%-3s end=%-3s write=%-3s\n",
			row.Text, row.IssueCycle, row.StartExec, row.EndExec, row.WriteCycle)
	}

	fmt.Println("registers:")
	for i, v := range s.Registers {
		status := s.RegisterStatus[i]
		if status == "" {
			status = "-"
		}
		fmt.Printf("  R%d=%d (%s)\n", i, v, status)
	}

	fmt.Println("memory (non-zero):")
	for _, cell := range s.Memory {
		fmt.Printf("  %d: %d\n", cell.Addr, cell.Value)
	}

	fmt.Println("stations:")
	for _, st := range s.Stations {
		if !st.Busy {
			fmt.Printf("  %s: free\n", st.Name)
			continue
		}
		fmt.Printf("  %s: %s Vj=%s Vk=%s A=%d %s cycles_left=%d\n",
			st.Name, st.Opcode, st.Vj, st.Vk, st.A, st.Status, st.CyclesLeft)
	}
}
