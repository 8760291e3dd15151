package core

import "fmt"

// Mode is the scene-driven behaviour tag an agent follows
type Mode uint8

const (
	ModeRest Mode = iota
	ModeSmall
	ModeMedium
	ModeBig
	ModeExplore
	modeCount
)

var modeNames = [modeCount]string{"rest", "small", "medium", "big", "explore"}

func (m Mode) String() string {
	if m >= modeCount {
		return fmt.Sprintf("mode(%d)", m)
	}
	return modeNames[m]
}

// Valid reports whether m is one of the declared modes
func (m Mode) Valid() bool {
	return m < modeCount
}

// ParseMode resolves a mode tag by name
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid mode %d", m)
	}
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Tier is the upstream size classification of an entity
// Tiers index rings from the outside in: small=0, medium=1, big=2
type Tier uint8

const (
	TierSmall Tier = iota
	TierMedium
	TierBig
	tierCount
)

var tierNames = [tierCount]string{"small", "medium", "big"}

func (t Tier) String() string {
	if t >= tierCount {
		return fmt.Sprintf("tier(%d)", t)
	}
	return tierNames[t]
}

func (t Tier) Valid() bool {
	return t < tierCount
}

// Ring returns the ring index an agent of this tier ultimately settles on
func (t Tier) Ring() int {
	return int(t)
}

func ParseTier(s string) (Tier, error) {
	for i, name := range tierNames {
		if name == s {
			return Tier(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tier %q", s)
}

func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid tier %d", t)
	}
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
