package main

import (
	"fmt"
	"os"

	"github.com/mastercactapus/gcview/gcode"
	"github.com/mastercactapus/gcview/path"
)

// loadModel reads and interprets a G-code file. A missing or
// unreadable file is fatal; bad lines inside it are skipped by the
// interpreter.
func loadModel(filename string, trim bool) (*path.Model, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filename, err)
	}
	defer f.Close()

	m, err := path.Build(gcode.NewParser(f))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	if trim {
		m.TrimPriming()
	}
	return m, nil
}
