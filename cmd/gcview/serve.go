package main

import (
	"log"
	"net/http"

	"github.com/mastercactapus/gcview/footprint"
	"github.com/spf13/cobra"
)

var (
	serveAddr string
	serveTrim bool
)

var serveCmd = &cobra.Command{
	Use:   "serve <file>",
	Short: "Serve a G-code file to the browser viewer",
	Long: `Interpret the file once, then serve the precomputed segments, bounds
and fit transform over HTTP. Interaction events arrive on /ws and
view-state snapshots stream from /events/view.`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":9092", "Address to bind the viewer server to.")
	serveCmd.Flags().BoolVar(&serveTrim, "trim-priming", true, "Drop priming/homing moves before serving.")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	m, err := loadModel(args[0], serveTrim)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d segments across %d layers", m.SegmentCount(), m.LayerCount())

	fp, err := footprint.FromModel(m)
	if err != nil {
		log.Println("no footprint:", err)
		fp = nil
	}

	api := newAPI(m, fp)

	return http.ListenAndServe(serveAddr, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		log.Printf("%s %s - %s", req.Method, req.URL.Path, req.RemoteAddr)
		api.ServeHTTP(w, req)
	}))
}
