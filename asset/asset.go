// Package asset embeds the default scene list and sample entity data.
package asset

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/lixenwraith/flock/component"
	"github.com/lixenwraith/flock/scene"
)

//go:embed scenes.yaml
var DefaultScenesYAML []byte

//go:embed entities.json
var DefaultEntitiesJSON []byte

// DefaultScenes parses the embedded scene list
func DefaultScenes() (*scene.Config, error) {
	return scene.Parse(DefaultScenesYAML)
}

// DefaultEntities decodes the embedded sample entities
func DefaultEntities() ([]component.Entity, error) {
	return DecodeEntities(DefaultEntitiesJSON)
}

// DecodeEntities decodes a JSON array of entity records and validates them
func DecodeEntities(data []byte) ([]component.Entity, error) {
	var entities []component.Entity
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&entities); err != nil {
		return nil, fmt.Errorf("decode entities: %w", err)
	}
	if err := component.ValidateAll(entities); err != nil {
		return nil, err
	}
	return entities, nil
}
