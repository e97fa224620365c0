package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/opticslab/paraxial/pkg/loaders"
	"github.com/opticslab/paraxial/pkg/optics"
)

var traceCmd = &cobra.Command{
	Use:   "trace <bench.yaml>",
	Short: "Trace rays through a bench file",
	Long: `Loads an optical bench description from a YAML file, traces its rays,
and prints the per-element ABCD matrices, the cumulative chain transform,
and the output rays.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bench, err := loaders.LoadBench(args[0])
		if err != nil {
			return err
		}

		rayArgs, _ := cmd.Flags().GetStringSlice("ray")
		extra, err := parseRays(rayArgs)
		if err != nil {
			return err
		}
		rays := append(bench.Rays, extra...)

		result := optics.Trace(bench.Components, rays)
		printResult(cmd, bench.Components, rays, result)
		return nil
	},
}

// parseRays converts --ray height:angle flags into rays.
func parseRays(args []string) ([]optics.Ray, error) {
	rays := make([]optics.Ray, 0, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid ray %q: expected height:angle", arg)
		}
		height, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ray height %q: %w", parts[0], err)
		}
		angle, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ray angle %q: %w", parts[1], err)
		}
		rays = append(rays, optics.Ray{Height: height, Angle: angle})
	}
	return rays, nil
}

func printResult(cmd *cobra.Command, components []optics.ComponentSpec, rays []optics.Ray, result optics.Result) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "#\tELEMENT\tABCD\tOFFSET")
	for i, c := range components {
		m, o := result.Matrices[i], result.Offsets[i]
		fmt.Fprintf(w, "%d\t%s\t[[%g %g] [%g %g]]\t[%g %g]\n",
			i+1, c.Kind, m[0][0], m[0][1], m[1][0], m[1][1], o[0], o[1])
	}
	m, o := result.TotalMatrix, result.TotalOffset
	fmt.Fprintf(w, "\ttotal\t[[%g %g] [%g %g]]\t[%g %g]\n",
		m[0][0], m[0][1], m[1][0], m[1][1], o[0], o[1])
	fmt.Fprintln(w)

	fmt.Fprintln(w, "RAY IN\t\tRAY OUT")
	for i, in := range rays {
		out := result.PropagatedRays[i]
		fmt.Fprintf(w, "h=%g a=%g\t->\th=%g a=%g\n", in.Height, in.Angle, out.Height, out.Angle)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().StringSlice("ray", nil, "Additional ray as height:angle (repeatable)")
}
