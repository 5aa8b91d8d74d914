// Package engine implements the pipeline engine (§4.4): the
// per-cycle orchestration of release, write-back, execute, and issue
// sweeps, register renaming, CDB forwarding, and control-flow
// refetch. It is the core the rest of the simulator is built around.
package engine

import (
	"fmt"

	"github.com/maemo32/tomasulo-sim/internal/branch"
	"github.com/maemo32/tomasulo-sim/internal/isa"
	"github.com/maemo32/tomasulo-sim/internal/memory"
	"github.com/maemo32/tomasulo-sim/internal/regfile"
	"github.com/maemo32/tomasulo-sim/internal/simerr"
	"github.com/maemo32/tomasulo-sim/internal/station"
)

// MaxCycles bounds the simulation at 1000 cycles (§4.4, §7).
const MaxCycles = 1000

// Stats holds the live and derived performance counters of §4.5.
type Stats struct {
	CyclesExecuted int
	Completed      int
	Branches       int
	Mispredictions int
}

// IPC returns completed instructions per cycle, or 0 before any cycle
// has executed.
func (s Stats) IPC() float64 {
	if s.CyclesExecuted == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.CyclesExecuted)
}

// MispredictionRate returns mispredictions/branches, or 0 if no
// branch has been encountered yet.
func (s Stats) MispredictionRate() float64 {
	if s.Branches == 0 {
		return 0
	}
	return float64(s.Mispredictions) / float64(s.Branches)
}

// Engine drives one loaded program through the pipeline, one cycle
// per Step call (§5: single-threaded, cooperatively driven).
type Engine struct {
	program []*isa.Instruction
	pcIndex map[int]int
	startPC int

	queue              []*isa.Instruction
	pendingControlFlow bool
	currentPC          int
	cycle              int

	regs      *regfile.RegisterFile
	mem       *memory.Memory
	pool      *station.Pool
	predictor *branch.Predictor

	stats   Stats
	halted  bool
	haltErr error
}

// New builds an engine from a hardware configuration. The engine has
// no program loaded until Load is called.
func New(hc station.HardwareConfig) (*Engine, error) {
	pool, err := station.NewPool(hc)
	if err != nil {
		return nil, err
	}
	return &Engine{
		pool:      pool,
		regs:      regfile.New(),
		mem:       memory.New(),
		predictor: branch.New(),
	}, nil
}

// Load resets the engine to fresh state and loads a program, starting
// at startPC, with the given memory initializer. Running the same
// program twice via two Load calls on the same engine reproduces
// identical timestamps and statistics (§8's round-trip property).
func (e *Engine) Load(program []*isa.Instruction, startPC int, memInit map[int]uint16) {
	e.regs.Reset()
	e.mem.Reset()
	e.pool.ResetAll()

	e.program = program
	e.pcIndex = make(map[int]int, len(program))
	for i, instr := range program {
		e.pcIndex[instr.PC] = i
	}
	e.startPC = startPC
	e.queue = program
	e.pendingControlFlow = false
	e.currentPC = startPC
	e.cycle = 1
	e.stats = Stats{}
	e.halted = false
	e.haltErr = nil

	e.mem.Init(memInit)
}

// Finished reports whether the instruction queue is empty and no
// station is busy (§4.4 Termination).
func (e *Engine) Finished() bool {
	return len(e.queue) == 0 && !e.pool.AnyBusy()
}

// Halted reports whether a runtime failure (CycleLimitExceeded or
// InvalidBranchTarget) has force-drained the simulation.
func (e *Engine) Halted() bool {
	return e.halted
}

// Cycle returns the cycle the next Step will execute. After a Step
// that halts the simulation it is the cycle that halted.
func (e *Engine) Cycle() int { return e.cycle }

// CurrentPC returns the engine's current program-counter bookkeeping
// value (§4.4 Sweep 2, §6 Snapshot).
func (e *Engine) CurrentPC() int { return e.currentPC }

// Stats returns a copy of the live statistics.
func (e *Engine) Stats() Stats { return e.stats }

// Step advances the simulation by exactly one cycle, running the four
// sweeps in their fixed order: release, write-back, execute, issue.
// It returns a non-nil error (ErrCycleLimitExceeded or
// ErrInvalidBranchTarget) if the cycle halts the simulation, after
// first draining the instruction queue and all stations.
func (e *Engine) Step() error {
	if e.halted {
		return e.haltErr
	}
	if e.cycle > MaxCycles {
		e.drain()
		e.haltErr = fmt.Errorf("%w: cycle %d exceeds the maximum of %d", simerr.ErrCycleLimitExceeded, e.cycle, MaxCycles)
		e.halted = true
		return e.haltErr
	}

	e.sweepRelease()
	if err := e.sweepWriteBack(); err != nil {
		e.drain()
		e.haltErr = err
		e.halted = true
		return err
	}
	e.sweepExecute()
	e.sweepIssue()

	e.stats.CyclesExecuted = e.cycle
	e.cycle++
	return nil
}

// Run steps the engine until it finishes or halts, returning whatever
// error Step last produced (nil on normal completion).
func (e *Engine) Run() error {
	for !e.Finished() {
		if err := e.Step(); err != nil {
			return err
		}
	}
	return nil
}

// drain clears the instruction queue and every station, matching
// §7's runtime-failure behavior: statistics freeze at the last
// consistent cycle.
func (e *Engine) drain() {
	e.queue = nil
	e.pendingControlFlow = false
	e.pool.ResetAll()
}

// refetch clears and rebuilds the instruction queue from the linear
// program image starting at newPC (§4.4 "Refetch semantics"). If no
// instruction in the program has pc == newPC, the queue becomes
// empty — a valid way for the program to end (e.g. RET past the last
// instruction).
func (e *Engine) refetch(newPC int) {
	e.currentPC = newPC
	e.pendingControlFlow = false
	if idx, ok := e.pcIndex[newPC]; ok {
		e.queue = e.program[idx:]
	} else {
		e.queue = nil
	}
}

func (e *Engine) sweepRelease() {
	for _, s := range e.pool.All() {
		if s.State == station.Wrote {
			e.pool.Release(s)
		}
	}
}

func (e *Engine) sweepExecute() {
	for _, s := range e.pool.All() {
		switch {
		case s.State == station.Waiting && s.Vj.Ready() && s.Vk.Ready() && !s.JustWrote:
			s.State = station.Executing
			s.Instr.StartExecCycle = e.cycle
			// The cycle a station starts already counts toward its
			// latency, so end_exec - start_exec + 1 lands on the
			// station's effective latency exactly (§8's invariant)
			// instead of one cycle over it.
			if s.Latency <= 1 {
				s.CyclesLeft = 0
				s.Instr.EndExecCycle = e.cycle
			} else {
				s.CyclesLeft = s.Latency - 1
			}
		case s.State == station.Executing && s.CyclesLeft > 0:
			s.CyclesLeft--
			if s.CyclesLeft == 0 {
				s.Instr.EndExecCycle = e.cycle
			}
		}
		s.JustWrote = false
	}
}
