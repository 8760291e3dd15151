package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeRoundTripNames(t *testing.T) {
	for m := ModeRest; m < modeCount; m++ {
		parsed, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}

	_, err := ParseMode("orbit")
	assert.Error(t, err)
	assert.False(t, Mode(42).Valid())
	assert.Equal(t, "mode(42)", Mode(42).String())
}

func TestModeUnmarshalText(t *testing.T) {
	var m Mode
	require.NoError(t, m.UnmarshalText([]byte("explore")))
	assert.Equal(t, ModeExplore, m)
	assert.Error(t, m.UnmarshalText([]byte("EXPLORE")))
	assert.Equal(t, ModeExplore, m, "failed parse leaves value untouched")
}

func TestTierRing(t *testing.T) {
	assert.Equal(t, 0, TierSmall.Ring())
	assert.Equal(t, 1, TierMedium.Ring())
	assert.Equal(t, 2, TierBig.Ring())

	var tier Tier
	require.NoError(t, tier.UnmarshalText([]byte("medium")))
	assert.Equal(t, TierMedium, tier)
	_, err := Tier(9).MarshalText()
	assert.Error(t, err)
}
