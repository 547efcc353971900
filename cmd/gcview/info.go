package main

import (
	"fmt"

	"github.com/mastercactapus/gcview/footprint"
	"github.com/mastercactapus/gcview/view"
	"github.com/spf13/cobra"
)

var infoTrim bool

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Summarize a G-code file",
	Long:  "Interpret the file and print segment, layer, bounds and footprint statistics.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&infoTrim, "trim-priming", false, "Drop priming/homing moves before reporting.")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	m, err := loadModel(args[0], infoTrim)
	if err != nil {
		return err
	}

	fmt.Printf("File: %s\n\n", args[0])
	fmt.Printf("Segments:   %d (%d extrusion, %d travel)\n",
		m.SegmentCount(), m.ExtrusionCount(), m.SegmentCount()-m.ExtrusionCount())
	fmt.Printf("Layers:     %d (Z %.2f to %.2f)\n", m.LayerCount(), m.MinZ(), m.MaxZ())
	if m.Skipped() > 0 {
		fmt.Printf("Skipped:    %d unparseable lines\n", m.Skipped())
	}

	if !m.Bounds.Empty() {
		span := m.Bounds.Span()
		fmt.Printf("Bounds:     (%.1f, %.1f, %.1f) to (%.1f, %.1f, %.1f)\n",
			m.Bounds.Min.X, m.Bounds.Min.Y, m.Bounds.Min.Z,
			m.Bounds.Max.X, m.Bounds.Max.Y, m.Bounds.Max.Z)
		fmt.Printf("Size:       %.1f x %.1f x %.1f mm\n", span.X, span.Y, span.Z)
	}

	fit := view.Fit(m.Bounds)
	fmt.Printf("View scale: %.4f\n", fit.Scale)

	fp, err := footprint.FromModel(m)
	if err == nil {
		fmt.Printf("Footprint:  %.1f mm2 over %d triangles\n", fp.Area(), len(fp.Triangles()))
	}

	return nil
}
