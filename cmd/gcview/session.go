package main

import (
	"log"
	"sync"

	"github.com/mastercactapus/gcview/coord"
	"github.com/mastercactapus/gcview/path"
	"github.com/mastercactapus/gcview/view"
)

// Event is one interaction message from the viewer front end.
type Event struct {
	Type string  `json:"type"`
	DX   float64 `json:"dx"`
	DY   float64 `json:"dy"`
	Up   bool    `json:"up"`
}

// ViewState is the snapshot published to the renderer after every
// event.
type ViewState struct {
	Eye    coord.Point `json:"eye"`
	Target coord.Point `json:"target"`
	Up     coord.Point `json:"up"`

	LayerFilter  bool    `json:"layerFilter"`
	LayerZ       float64 `json:"layerZ"`
	ShowTravel   bool    `json:"showTravel"`
	VisibleCount int     `json:"visibleCount"`
}

// session holds the interaction state for a loaded model. The
// geometry is read-only after load; camera and filter state is only
// mutated through Apply, and the mutex guards snapshot reads from the
// event publisher.
type session struct {
	mx sync.Mutex

	model  *path.Model
	cam    view.Camera
	filter view.LayerFilter

	showTravel bool
}

func newSession(m *path.Model) *session {
	return &session{
		model:      m,
		cam:        view.NewCamera(),
		filter:     view.NewLayerFilter(m.Bounds),
		showTravel: true,
	}
}

// Apply dispatches one interaction event.
func (s *session) Apply(ev Event) {
	s.mx.Lock()
	defer s.mx.Unlock()

	switch ev.Type {
	case "drag":
		s.cam.Drag(ev.DX, ev.DY)
	case "zoom":
		s.cam.Zoom(ev.DY)
	case "reset":
		s.cam.Reset()
	case "layers":
		s.filter.Toggle()
	case "step":
		s.filter.Step(ev.Up)
	case "travel":
		s.showTravel = !s.showTravel
	default:
		log.Println("ERROR: unknown event type:", ev.Type)
	}
}

// Snapshot returns the current view state, counting the segments the
// renderer should draw.
func (s *session) Snapshot() ViewState {
	s.mx.Lock()
	defer s.mx.Unlock()

	var n int
	for _, seg := range s.model.Segments {
		if !s.showTravel && !seg.Extrude {
			continue
		}
		if !s.filter.Visible(seg) {
			continue
		}
		n++
	}

	return ViewState{
		Eye:    s.cam.Eye(),
		Target: s.cam.Target(),
		Up:     s.cam.Up(),

		LayerFilter:  s.filter.Enabled,
		LayerZ:       s.filter.Z,
		ShowTravel:   s.showTravel,
		VisibleCount: n,
	}
}
