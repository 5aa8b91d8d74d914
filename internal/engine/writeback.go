package engine

import (
	"fmt"

	"github.com/maemo32/tomasulo-sim/internal/isa"
	"github.com/maemo32/tomasulo-sim/internal/simerr"
	"github.com/maemo32/tomasulo-sim/internal/station"
)

// sweepWriteBack is §4.4 Sweep 2: collect every station that is still
// executing with no cycles left (it reached zero in an earlier cycle's
// Execute sweep) and has not yet written, compute and publish
// its result, and handle any control-flow effects.
//
// Stations are visited in the pool's stable order (§5: "at most one
// station per register can be the current producer", so visiting
// order cannot change the outcome — only which line of a tied
// snapshot appears first).
func (e *Engine) sweepWriteBack() error {
	var completed []*station.Station
	for _, s := range e.pool.All() {
		if s.State == station.Executing && s.CyclesLeft <= 0 {
			completed = append(completed, s)
		}
	}
	for _, s := range completed {
		if err := e.writeBackOne(s); err != nil {
			return err
		}
	}
	return nil
}

func aluResult(op isa.Opcode, vj, vk uint16) uint16 {
	switch op {
	case isa.ADD:
		return vj + vk
	case isa.SUB:
		return vj - vk
	case isa.NOR:
		return ^(vj | vk)
	case isa.MUL:
		return vj * vk
	default:
		panic(fmt.Sprintf("engine: aluResult called with non-ALU opcode %v", op))
	}
}

func (e *Engine) writeBackOne(s *station.Station) error {
	instr := s.Instr
	instr.WriteCycle = e.cycle

	var result uint16
	hasResult := false

	switch instr.Opcode {
	case isa.LOAD:
		addr := int(s.Vj.Value) + s.A
		result = e.mem.Load(addr)
		hasResult = true

	case isa.ADD, isa.SUB, isa.NOR, isa.MUL:
		result = aluResult(instr.Opcode, s.Vj.Value, s.Vk.Value)
		hasResult = true

	case isa.STORE:
		addr := int(s.Vj.Value) + s.A
		e.mem.Store(addr, s.Vk.Value)

	case isa.CALL:
		result = uint16(instr.PC + 1)
		hasResult = true
		e.refetch(instr.Immediate())

	case isa.RET:
		e.refetch(int(s.Vj.Value))

	case isa.BEQ:
		e.stats.Branches++
		// target_pc = pc + 1 + (offset - 1), i.e. pc + offset. See
		// §9: this is the source's own formula, preserved as-is
		// rather than "corrected" to the conventional pc+1+offset.
		targetPC := instr.PC + 1 + (instr.Immediate() - 1)
		if targetPC < 0 {
			return fmt.Errorf("%w: BEQ at pc %d computed target %d", simerr.ErrInvalidBranchTarget, instr.PC, targetPC)
		}
		taken := s.Vj.Value == s.Vk.Value
		if taken != e.predictor.Predict(instr.PC) {
			e.stats.Mispredictions++
		}
		e.predictor.Update(instr.PC, taken)
		if taken {
			e.refetch(targetPC)
		} else {
			e.currentPC = instr.PC + 1
			e.pendingControlFlow = false
		}
	}

	if hasResult {
		dest, _ := instr.DestReg()
		e.regs.Write(dest, result, s.Name)
		e.broadcast(s.Name, result)
	}

	instr.Completed = true
	e.stats.Completed++
	s.State = station.Wrote
	return nil
}

// broadcast is the CDB step (§3 GLOSSARY, §9 "CDB as a step, not a
// channel"): every station waiting on producer, in one pass, receives
// the value and is marked just-forwarded so Execute won't start it
// the same cycle.
func (e *Engine) broadcast(producer string, result uint16) {
	for _, other := range e.pool.All() {
		if other.Vj.Tag == producer {
			other.Vj = station.Operand{Value: result}
			other.JustWrote = true
		}
		if other.Vk.Tag == producer {
			other.Vk = station.Operand{Value: result}
			other.JustWrote = true
		}
	}
}
