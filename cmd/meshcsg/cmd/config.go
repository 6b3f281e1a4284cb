package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Settings holds the tunables a meshcsg run reads from its YAML config
// file. The Boolean core's own numerical tolerances stay fixed; what's
// configurable here is limited to the seam
// weld distance, which depends on the scale of the input geometry, and
// a verbosity switch for the run's progress log.
type Settings struct {
	// WeldTolerance is the distance under which two vertices produced
	// independently by the two input meshes are merged into one when
	// the result is welded into an indexed mesh.
	WeldTolerance float64 `yaml:"weld_tolerance"`
	// Verbose prints the run's phase log to standard error when true.
	Verbose bool `yaml:"verbose"`
}

// defaultSettings returns the Settings a fresh config file is seeded
// with.
func defaultSettings() Settings {
	return Settings{
		WeldTolerance: 1e-4,
		Verbose:       false,
	}
}

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "write a default settings file",
	Long: `Write a build settings file in YAML format, prefilled with
default values.

If FILE is not provided, 'meshcsg.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "meshcsg.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		ok, err := confirmIfExists(path,
			fmt.Sprintf("file name %s already exists, overwrite? [y/N]", path))
		if !ok {
			if err == nil {
				fmt.Println("aborted by user")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}
		check(marshalYAMLFile(path, defaultSettings()))
		fmt.Printf("settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
