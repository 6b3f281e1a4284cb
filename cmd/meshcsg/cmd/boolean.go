package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arl/go-meshcsg/meshcsg"
	"github.com/arl/go-meshcsg/meshio"
	"github.com/arl/go-meshcsg/meshrepair"
)

var (
	cfgPathVal string
	outVal     string
)

func init() {
	for _, c := range []*cobra.Command{unionCmd, intersectCmd, subtractCmd} {
		c.Flags().StringVar(&cfgPathVal, "config", "", "settings file (optional)")
		c.Flags().StringVar(&outVal, "out", "out.obj", "output OBJ file")
		RootCmd.AddCommand(c)
	}
}

var unionCmd = &cobra.Command{
	Use:   "union A.obj B.obj",
	Short: "compute the union of two meshes",
	Args:  cobra.ExactArgs(2),
	Run:   runBoolean(meshcsg.OpUnion),
}

var intersectCmd = &cobra.Command{
	Use:   "intersect A.obj B.obj",
	Short: "compute the intersection of two meshes",
	Args:  cobra.ExactArgs(2),
	Run:   runBoolean(meshcsg.OpIntersect),
}

var subtractCmd = &cobra.Command{
	Use:   "subtract A.obj B.obj",
	Short: "subtract mesh B from mesh A",
	Args:  cobra.ExactArgs(2),
	Run:   runBoolean(meshcsg.OpSubtract),
}

func runBoolean(op meshcsg.Operation) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		settings := defaultSettings()
		if cfgPathVal != "" {
			check(unmarshalYAMLFile(cfgPathVal, &settings))
		}

		a, err := meshio.LoadOBJ(args[0])
		check(err)
		b, err := meshio.LoadOBJ(args[1])
		check(err)

		ok, err := confirmIfExists(outVal,
			fmt.Sprintf("file name %s already exists, overwrite? [y/N]", outVal))
		if !ok {
			if err == nil {
				fmt.Println("aborted by user")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}

		ctx := meshrepair.NewContext()
		result, err := meshcsg.BooleanWithOptions(ctx, a, b, op, meshcsg.Options{
			WeldTolerance: settings.WeldTolerance,
		})
		check(err)

		if settings.Verbose {
			for _, msg := range ctx.Log() {
				fmt.Fprintln(os.Stderr, msg)
			}
			fmt.Fprintf(os.Stderr, "weld: %s, dedup: %s\n",
				ctx.AccumulatedTime(meshrepair.TimerWeld),
				ctx.AccumulatedTime(meshrepair.TimerDedup))
		}

		if result == nil {
			fmt.Println("operation produced no output")
			return
		}

		check(meshio.SaveOBJ(outVal, meshcsg.IndexedMesh{
			Points:    result.Points,
			Triangles: result.Triangles,
		}))
		fmt.Printf("%d triangles written to '%s'\n", len(result.Triangles), outVal)
	}
}
