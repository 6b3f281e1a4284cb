package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "meshcsg",
	Short: "Boolean operations on triangle meshes",
	Long: `meshcsg computes the union, intersection, or difference of two
triangle meshes loaded from OBJ files, including meshes that are open or
non-watertight, and writes the result back out as an OBJ file.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It is called by main.main() once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
