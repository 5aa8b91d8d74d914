package engine

import (
	"fmt"

	"github.com/maemo32/tomasulo-sim/internal/isa"
	"github.com/maemo32/tomasulo-sim/internal/memory"
	"github.com/maemo32/tomasulo-sim/internal/regfile"
	"github.com/maemo32/tomasulo-sim/internal/station"
)

// InstructionRow is one line of the instruction timing table (§6
// Snapshot; the original Tkinter UI's "Instruction Timing" tab).
type InstructionRow struct {
	PC                                          int
	Text                                        string
	IssueCycle, StartExec, EndExec, WriteCycle string
}

// StationRow is one reservation station's dump (§6 Snapshot).
type StationRow struct {
	Name       string
	Busy       bool
	Opcode     string
	Vj, Vk     string // either the ready value or the waiting tag
	A          int
	Status     string // "waiting" | "executing" | "wrote"
	CyclesLeft int
}

// Snapshot is the read-only view §6 defines for an external observer
// (a GUI, or cmd/tomasim's step command) to pull after each cycle.
type Snapshot struct {
	Cycle     int
	CurrentPC int

	Instructions []InstructionRow

	Registers      [regfile.Count]uint16
	RegisterStatus [regfile.Count]string

	Memory []memory.Cell

	Stations []StationRow

	Stats Stats
}

func operandDisplay(o station.Operand) string {
	if o.Ready() {
		return fmt.Sprintf("%d", o.Value)
	}
	return o.Tag
}

func stationStatus(s *station.Station) string {
	switch s.State {
	case station.Executing:
		return "executing"
	case station.Wrote:
		return "wrote"
	case station.Waiting:
		return "waiting"
	default:
		return ""
	}
}

// Snapshot renders the engine's entire visible state.
func (e *Engine) Snapshot() Snapshot {
	rows := make([]InstructionRow, len(e.program))
	for i, instr := range e.program {
		issue, start, end, write := instr.Timing()
		rows[i] = InstructionRow{
			PC:         instr.PC,
			Text:       instr.String(),
			IssueCycle: issue,
			StartExec:  start,
			EndExec:    end,
			WriteCycle: write,
		}
	}

	values, status := e.regs.Snapshot()

	var stationRows []StationRow
	for _, t := range isa.AllStationTypes {
		for _, s := range e.pool.Stations(t) {
			row := StationRow{Name: s.Name, Busy: s.Busy(), A: s.A, CyclesLeft: s.CyclesLeft}
			if s.Busy() {
				row.Opcode = s.Instr.Opcode.String()
				row.Vj = operandDisplay(s.Vj)
				row.Vk = operandDisplay(s.Vk)
				row.Status = stationStatus(s)
			}
			stationRows = append(stationRows, row)
		}
	}

	return Snapshot{
		Cycle:          e.cycle,
		CurrentPC:      e.currentPC,
		Instructions:   rows,
		Registers:      values,
		RegisterStatus: status,
		Memory:         e.mem.NonZero(),
		Stations:       stationRows,
		Stats:          e.stats,
	}
}
