package main

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/heat1d/number"
	"github.com/katalvlaran/heat1d/scheme"
	"github.com/spf13/cobra"
)

func newSchemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List the update schemes and precisions",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				type entry struct {
					Name        string `json:"name"`
					Levels      int    `json:"levels"`
					Description string `json:"description"`
				}
				var algs []entry
				for _, a := range scheme.Algorithms() {
					algs = append(algs, entry{Name: a.String(), Levels: a.Levels(), Description: a.Description()})
				}
				var precs []string
				for _, p := range number.Precisions() {
					precs = append(precs, p.String())
				}
				return json.NewEncoder(out).Encode(map[string]any{
					"schemes":    algs,
					"precisions": precs,
				})
			}

			fmt.Fprintln(out, "Schemes (alg=...):")
			for _, a := range scheme.Algorithms() {
				fmt.Fprintf(out, "  %-9s %s\n", a, a.Description())
			}
			fmt.Fprintln(out, "Precisions (prec=...):")
			for _, p := range number.Precisions() {
				fmt.Fprintf(out, "  %-9s %d bits\n", p, p.Bits())
			}
			return nil
		},
	}
}

const icHelp = `Initial condition options...
    ic="const(V)" constant value, V
    ic="ramp(L,R)" linear ramp with value L @ x=0 and R @ x=lenx
    ic="step(L,Mx,R)" a step function with value L for x<Mx and R for x>=Mx
    ic="rand(S,B,A)" random values in the range [B-A,B+A] using seed S
    ic="sin(A,w)" a sin wave with amplitude A and frequency w
    ic="spikes(C,A0,X0,A1,X1,...)" a constant value, C with spikes of amplitude Ai at position Xi
    ic="file(foo.dat)" read one value per grid point from the file foo.dat
Boundary conditions should combine smoothly with the initial condition.
`

func newICCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ic",
		Short: "Describe the initial condition forms",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), icHelp)
		},
	}
}
