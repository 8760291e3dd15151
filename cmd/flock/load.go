package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/flock/asset"
	"github.com/lixenwraith/flock/component"
	"github.com/lixenwraith/flock/engine"
	"github.com/lixenwraith/flock/flock"
	"github.com/lixenwraith/flock/scene"
)

func loadScenes(cmd *cobra.Command) (*scene.Config, error) {
	path, _ := cmd.Flags().GetString("scenes")
	if path == "" {
		return asset.DefaultScenes()
	}
	return scene.LoadFile(path)
}

func loadEntities(cmd *cobra.Command) ([]component.Entity, error) {
	path, _ := cmd.Flags().GetString("entities")
	if path == "" {
		return asset.DefaultEntities()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read entities: %w", err)
	}
	return asset.DecodeEntities(data)
}

// newSimulation builds a simulation from the command's flags
func newSimulation(cmd *cobra.Command, logger *slog.Logger) (*engine.Simulation, error) {
	scenes, err := loadScenes(cmd)
	if err != nil {
		return nil, err
	}
	entities, err := loadEntities(cmd)
	if err != nil {
		return nil, err
	}

	opts := flock.DefaultOptions()
	if seed, _ := cmd.Flags().GetUint64("seed"); seed != 0 {
		opts.Seed = seed
	}
	return engine.NewSimulation(engine.Config{
		Entities: entities,
		Scenes:   scenes,
		Options:  opts,
		Logger:   logger,
	})
}
