package main

import (
	"testing"

	"github.com/mastercactapus/gcview/gcode"
	"github.com/mastercactapus/gcview/path"
	"github.com/mastercactapus/gcview/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(t *testing.T) *session {
	t.Helper()
	m, err := path.Build(&gcode.BlocksReader{Blocks: gcode.MustParse(`
		G1 X10 Z0.2 E1
		G1 X20
		G1 X30 Z1.2 E2
	`)})
	require.NoError(t, err)
	return newSession(m)
}

func TestSession_Drag(t *testing.T) {
	s := testSession(t)

	s.Apply(Event{Type: "drag", DX: 10, DY: 5})
	assert.NotEqual(t, view.NewCamera(), s.cam)

	s.Apply(Event{Type: "reset"})
	assert.Equal(t, view.NewCamera(), s.cam)
}

func TestSession_Snapshot(t *testing.T) {
	s := testSession(t)

	st := s.Snapshot()
	assert.Equal(t, 3, st.VisibleCount)
	assert.True(t, st.ShowTravel)
	assert.False(t, st.LayerFilter)

	// hide travel moves
	s.Apply(Event{Type: "travel"})
	st = s.Snapshot()
	assert.Equal(t, 2, st.VisibleCount)

	// peel below the top layer
	s.Apply(Event{Type: "travel"})
	s.Apply(Event{Type: "layers"})
	s.Apply(Event{Type: "step", Up: false})
	st = s.Snapshot()
	assert.True(t, st.LayerFilter)
	assert.Equal(t, 0.7, st.LayerZ)
	assert.Equal(t, 2, st.VisibleCount)
}

func TestSession_UnknownEventIgnored(t *testing.T) {
	s := testSession(t)
	before := s.Snapshot()

	s.Apply(Event{Type: "bogus"})
	assert.Equal(t, before, s.Snapshot())
}
