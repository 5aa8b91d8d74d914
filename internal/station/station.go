// Package station implements the typed reservation station pool
// (§3, §4.3) and its per-cycle lifecycle (§4.4).
package station

import (
	"fmt"

	"github.com/maemo32/tomasulo-sim/internal/isa"
)

// State replaces the source's three independent booleans
// (executing, wrote_result, just_wrote) with the explicit enum §9
// suggests, plus a side JustWrote bit on Station for the
// same-cycle-forwarding guard that doesn't fit a linear state.
type State int

const (
	Free State = iota
	Waiting
	Executing
	Wrote
)

func (s State) String() string {
	switch s {
	case Free:
		return "free"
	case Waiting:
		return "waiting"
	case Executing:
		return "executing"
	case Wrote:
		return "wrote"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Operand is one operand slot: either ready with a value, or waiting
// on a named producer station. Exactly one of the two holds, per §3.
type Operand struct {
	Value uint16
	Tag   string // "" means ready
}

// Ready reports whether this operand already carries its value.
func (o Operand) Ready() bool { return o.Tag == "" }

// Station is one reservation station: a name, the op-type it is
// restricted to, its configured latency, and the operand/lifecycle
// state of whatever instruction currently occupies it.
type Station struct {
	Name    string
	Type    isa.StationType
	Latency int

	State     State
	JustWrote bool

	Instr *isa.Instruction
	Vj, Vk Operand
	A      int

	CyclesLeft int
}

// Busy reports whether the station currently holds an instruction.
func (s *Station) Busy() bool { return s.State != Free }

// Reset clears the station back to Free, releasing it for reuse.
func (s *Station) Reset() {
	s.State = Free
	s.JustWrote = false
	s.Instr = nil
	s.Vj = Operand{}
	s.Vk = Operand{}
	s.A = 0
	s.CyclesLeft = 0
}

// Bind occupies the station with instr, entering the Waiting state.
// Operand slots must be populated by the caller (the engine's Issue
// sweep) immediately after Bind.
func (s *Station) Bind(instr *isa.Instruction) {
	s.State = Waiting
	s.Instr = instr
	s.JustWrote = false
	s.CyclesLeft = 0
}
