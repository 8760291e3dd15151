package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/flock/engine"
	"github.com/lixenwraith/flock/parameter"
	"github.com/lixenwraith/flock/render"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Scroll through scenes offline and write the final frame as SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			out, _ := cmd.Flags().GetString("out")
			target, _ := cmd.Flags().GetInt("scene")
			ticks, _ := cmd.Flags().GetInt("ticks")

			logger, logFile := setupLogging(debug)
			if logFile != nil {
				defer logFile.Close()
			}

			sim, err := newSimulation(cmd, logger)
			if err != nil {
				return err
			}
			scenes := sim.Scenes()
			if target < 0 {
				target = len(scenes) - 1
			}
			if target >= len(scenes) {
				return fmt.Errorf("scene %d out of range (0..%d)", target, len(scenes)-1)
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return exportScroll(sim, render.NewSVG(w), target, ticks)
		},
	}
	cmd.Flags().StringP("out", "o", "-", "Output file (- for stdout)")
	cmd.Flags().Int("scene", -1, "Last scene to enter (default: final scene)")
	cmd.Flags().Int("ticks", 240, "Ticks to simulate per scene")
	return cmd
}

// exportScroll enters scenes 1..target in order, as a reader scrolling down
// would, stepping ticksPerScene frames after each
func exportScroll(sim *engine.Simulation, adapter render.Adapter, target, ticksPerScene int) error {
	loop := engine.NewLoop(sim, adapter, nil)
	dt := parameter.FrameInterval.Seconds()

	step := func() error {
		for range max(ticksPerScene, 1) {
			if err := loop.Step(dt); err != nil {
				return err
			}
		}
		return nil
	}

	if err := step(); err != nil {
		return err
	}
	scenes := sim.Scenes()
	for i := 1; i <= target; i++ {
		if _, err := sim.Enter(i, scenes[i].ID, scenes[i].Entity); err != nil {
			return err
		}
		if err := step(); err != nil {
			return err
		}
	}
	return loop.Stop()
}
