package main

import (
	"os"

	"github.com/maemo32/tomasulo-sim/internal/config"
	"github.com/maemo32/tomasulo-sim/internal/engine"
	"github.com/maemo32/tomasulo-sim/internal/isa"
)

type loadOptions struct {
	programPath string
	configPath  string
	memInitPath string
	startPC     int
}

func loadEngine(opts loadOptions) (*engine.Engine, error) {
	hc := config.Defaults()
	if opts.configPath != "" {
		var err error
		hc, err = config.LoadFile(opts.configPath)
		if err != nil {
			return nil, err
		}
	}
	programText, err := os.ReadFile(opts.programPath)
	if err != nil {
		return nil, err
	}
	program, err := isa.ParseProgram(string(programText), opts.startPC)
	if err != nil {
		return nil, err
	}

	memInit := map[int]uint16{}
	if opts.memInitPath != "" {
		memText, err := os.ReadFile(opts.memInitPath)
		if err != nil {
			return nil, err
		}
		memInit, err = isa.ParseMemoryInit(string(memText))
		if err != nil {
			return nil, err
		}
	}

	eng, err := engine.New(hc)
	if err != nil {
		return nil, err
	}
	eng.Load(program, opts.startPC, memInit)
	return eng, nil
}
