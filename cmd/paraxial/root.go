package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "paraxial",
	Short: "Paraxial is an ABCD-matrix optical bench tracer",
	Long: `Paraxial traces rays through a chain of idealized optical components
(free-space gaps, lenses, prisms, gratings, mirrors) using the ABCD matrix
formalism, and serves an interactive workspace over HTTP.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
