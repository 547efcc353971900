package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gcview",
	Short: "G-code toolpath inspector",
	Long: `gcview interprets 3D printer G-code into renderable line segments
and serves them to a browser front end with interactive orbit, zoom
and layer filtering.`,
}

func main() {
	log.SetFlags(log.Lshortfile)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
