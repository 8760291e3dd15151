package component

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/flock/core"
)

// ErrInvalidEntity is returned for malformed entity records
var ErrInvalidEntity = errors.New("invalid entity")

// Entity is one upstream record, already classified into a tier
type Entity struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Engagement float64   `json:"engagement"`
	Tier       core.Tier `json:"tier"`
}

// Validate checks the record is usable for agent construction
func (e Entity) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidEntity)
	}
	if math.IsNaN(e.Engagement) || math.IsInf(e.Engagement, 0) || e.Engagement < 0 {
		return fmt.Errorf("%w: %s engagement %v", ErrInvalidEntity, e.ID, e.Engagement)
	}
	if !e.Tier.Valid() {
		return fmt.Errorf("%w: %s tier %d", ErrInvalidEntity, e.ID, e.Tier)
	}
	return nil
}

// ValidateAll checks every record and id uniqueness
func ValidateAll(entities []Entity) error {
	seen := make(map[string]struct{}, len(entities))
	for i, e := range entities {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("entity %d: %w", i, err)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("entity %d: %w: duplicate id %s", i, ErrInvalidEntity, e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}
