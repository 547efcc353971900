package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	sse "github.com/alexandrevicenzi/go-sse"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/mastercactapus/gcview/coord"
	"github.com/mastercactapus/gcview/footprint"
	"github.com/mastercactapus/gcview/path"
	"github.com/mastercactapus/gcview/view"
)

type api struct {
	http.Handler
	model *path.Model
	fit   view.Transform
	fp    *footprint.Mesh
	sess  *session

	sse *sse.Server
	up  websocket.Upgrader
}

func newAPI(m *path.Model, fp *footprint.Mesh) *api {
	r := mux.NewRouter()

	a := &api{
		Handler: r,
		model:   m,
		fit:     view.Fit(m.Bounds),
		fp:      fp,
		sess:    newSession(m),
		sse: sse.NewServer(&sse.Options{
			Logger: log.New(io.Discard, "", 0),
		}),
		up: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	r.HandleFunc("/api/model", a.serveModel).Methods("GET")
	r.HandleFunc("/api/footprint", a.serveFootprint).Methods("GET")
	r.HandleFunc("/ws", a.serveWS)
	r.PathPrefix("/events/").Handler(a.sse)

	return a
}

type modelStats struct {
	Segments   int     `json:"segments"`
	Extrusions int     `json:"extrusions"`
	Layers     int     `json:"layers"`
	MinZ       float64 `json:"minZ"`
	MaxZ       float64 `json:"maxZ"`
	Skipped    int     `json:"skipped"`
}

type modelPayload struct {
	Segments []path.Segment `json:"segments"`
	Bounds   coord.Box      `json:"bounds"`
	Scale    float64        `json:"scale"`
	Center   coord.Point    `json:"center"`
	Stats    modelStats     `json:"stats"`
}

func (a *api) serveModel(w http.ResponseWriter, req *http.Request) {
	a.writeJSON(w, modelPayload{
		Segments: a.model.Segments,
		Bounds:   a.model.Bounds,
		Scale:    a.fit.Scale,
		Center:   a.fit.Center,
		Stats: modelStats{
			Segments:   a.model.SegmentCount(),
			Extrusions: a.model.ExtrusionCount(),
			Layers:     a.model.LayerCount(),
			MinZ:       a.model.MinZ(),
			MaxZ:       a.model.MaxZ(),
			Skipped:    a.model.Skipped(),
		},
	})
}

type footprintPayload struct {
	Triangles []coord.Triangle `json:"triangles"`
	Area      float64          `json:"area"`
}

func (a *api) serveFootprint(w http.ResponseWriter, req *http.Request) {
	if a.fp == nil {
		http.Error(w, "no footprint", http.StatusNotFound)
		return
	}
	a.writeJSON(w, footprintPayload{Triangles: a.fp.Triangles(), Area: a.fp.Area()})
}

func (a *api) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		log.Println("ERROR: encode:", err)
	}
}

// serveWS consumes interaction events from the front end and
// publishes a view-state snapshot after each one.
func (a *api) serveWS(w http.ResponseWriter, req *http.Request) {
	ws, err := a.up.Upgrade(w, req, nil)
	if err != nil {
		log.Println("ERROR: upgrade:", err)
		return
	}
	defer ws.Close()

	a.publishState()
	for {
		var ev Event
		err = ws.ReadJSON(&ev)
		if err != nil {
			log.Println("ERROR: read:", err)
			return
		}
		a.sess.Apply(ev)
		a.publishState()
	}
}

func (a *api) publishState() {
	data, err := json.Marshal(a.sess.Snapshot())
	if err != nil {
		log.Printf("ERROR: marshal json: %+v", err)
		return
	}
	a.sse.SendMessage("/events/view", sse.SimpleMessage(string(data)))
}
