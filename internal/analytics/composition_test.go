package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionSignatureOrderIndependent(t *testing.T) {
	assert.Equal(t,
		CompositionSignature([]string{"jett", "omen", "sova"}),
		CompositionSignature([]string{"sova", "jett", "omen"}),
	)
}

func TestCompositionSignatureCaseInsensitive(t *testing.T) {
	assert.Equal(t,
		CompositionSignature([]string{"Jett", "Omen"}),
		CompositionSignature([]string{"omen", "jett"}),
	)
}

func TestCompositionSignatureIsMultiset(t *testing.T) {
	assert.NotEqual(t,
		CompositionSignature([]string{"jett"}),
		CompositionSignature([]string{"jett", "jett"}),
	)
}

func TestTrackCompositions(t *testing.T) {
	matches := []NormalizedMatch{
		valMatch("m1", "Ascent", true, []string{"jett", "omen"}, []string{"raze"}, nil),
		valMatch("m2", "Bind", false, []string{"omen", "jett"}, []string{"raze"}, nil),
		valMatch("m3", "Haven", true, []string{"sova", "viper"}, []string{"raze"}, nil),
	}

	entries := TrackCompositions(matches, "team-a")

	require.Len(t, entries, 2)
	// Most-picked composition first.
	assert.Equal(t, "jett|omen", entries[0].Signature)
	assert.Equal(t, 2, entries[0].PickCount)
	assert.Equal(t, 1, entries[0].WinCount)
	require.NotNil(t, entries[0].WinRate)
	assert.InDelta(t, 0.5, *entries[0].WinRate, 1e-9)
	assert.InDelta(t, 2.0/3.0, entries[0].PickRate, 1e-9)

	assert.Equal(t, "sova|viper", entries[1].Signature)
	require.NotNil(t, entries[1].WinRate)
	assert.InDelta(t, 1.0, *entries[1].WinRate, 1e-9)
}

func TestTrackCompositionsPickCountSum(t *testing.T) {
	matches := []NormalizedMatch{
		valMatch("m1", "Ascent", true, []string{"a", "b"}, []string{"x"}, nil),
		valMatch("m2", "Bind", true, []string{"c", "d"}, []string{"x"}, nil),
		valMatch("m3", "Haven", false, []string{"a", "b"}, []string{"x"}, nil),
		valMatch("m4", "Split", true, []string{"e"}, []string{"x"}, nil),
	}

	entries := TrackCompositions(matches, "team-a")

	total := 0
	for _, e := range entries {
		total += e.PickCount
	}
	assert.Equal(t, len(matches), total)
}

func TestTrackCompositionsNoQualifyingMatches(t *testing.T) {
	matches := []NormalizedMatch{
		valMatch("m1", "Ascent", true, []string{"a"}, []string{"x"}, nil),
	}

	entries := TrackCompositions(matches, "team-z")
	assert.Empty(t, entries)
}

func TestTrackCompositionsDeterministicTieBreak(t *testing.T) {
	// Two compositions, each picked once and won once: equal counts and
	// rates, so ordering falls through to the signature.
	matches := []NormalizedMatch{
		valMatch("m1", "Ascent", true, []string{"zeta"}, []string{"x"}, nil),
		valMatch("m2", "Bind", true, []string{"alpha"}, []string{"x"}, nil),
	}

	entries := TrackCompositions(matches, "team-a")

	require.Len(t, entries, 2)
	assert.Equal(t, "alpha", entries[0].Signature)
	assert.Equal(t, "zeta", entries[1].Signature)
}
