package heat_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/heat1d/heat"
	"github.com/katalvlaran/heat1d/number"
)

// ExampleRun integrates the reference problem: u ≡ 1 relaxing towards the
// ramp between u(0)=0 and u(1)=1.
func ExampleRun() {
	res, err := heat.Run(context.Background(), number.PrecisionDouble, heat.DefaultParams())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s: %d steps to t=%g\n", res.Algorithm, res.Steps, res.SimTime)
	fmt.Printf("%.4f\n", res.Final)
	// Output:
	// ftcs: 500 steps to t=2
	// [0.0000 0.1039 0.2073 0.3101 0.4119 0.5125 0.6119 0.7101 0.8073 0.9039 1.0000]
}

// ExampleSimulation_Step drives the state machine by hand until the change
// threshold stops it.
func ExampleSimulation_Step() {
	p := heat.DefaultParams()
	p.MaxTime, p.MinChange = 0, 1e-10

	sim := heat.New[float64](number.Float64{}, p)
	if err := sim.Init(); err != nil {
		fmt.Println("error:", err)
		return
	}
	for {
		done, err := sim.Step()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		if done {
			break
		}
	}
	res, err := sim.Finish()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Stop, res.Converged, res.Steps)
	// Output:
	// threshold true 741
}
