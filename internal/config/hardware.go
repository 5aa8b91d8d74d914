// Package config builds the reservation-station pool's hardware
// configuration (§6) from defaults and optional TOML overrides.
package config

import (
	"github.com/maemo32/tomasulo-sim/internal/isa"
	"github.com/maemo32/tomasulo-sim/internal/station"
)

// Defaults returns §6's hardware configuration defaults: LOAD 2/6,
// STORE 2/6, BEQ 2/1, CALL_RET 1/1, ADD_SUB 4/2, NOR 2/1, MUL 2/10.
func Defaults() station.HardwareConfig {
	return station.HardwareConfig{
		isa.StationLoad:    {Count: 2, Cycles: 6},
		isa.StationStore:   {Count: 2, Cycles: 6},
		isa.StationBEQ:     {Count: 2, Cycles: 1},
		isa.StationCallRet: {Count: 1, Cycles: 1},
		isa.StationAddSub:  {Count: 4, Cycles: 2},
		isa.StationNOR:     {Count: 2, Cycles: 1},
		isa.StationMul:     {Count: 2, Cycles: 10},
	}
}
