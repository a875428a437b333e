// Package cmd implements the coursegen command-line tool, grounded on
// go-detour's cmd/recast/cmd package layout.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "coursegen",
	Short: "generate coverage paths for field boundaries",
	Long: `coursegen turns a field boundary into a full coverage course:
	- offsets the boundary into concentric headland passes,
	- links them into one spiral headland path,
	- picks the scan-line angle that minimizes interior block fragmentation,
	- fills the interior with parallel tracks and sequences them block by block.`,
}

// Execute adds all child commands to the root command and runs it. It is
// called once by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
