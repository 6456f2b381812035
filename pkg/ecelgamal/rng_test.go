package ecelgamal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeterministicRng_Reproducible(t *testing.T) {
	r1, err := NewDeterministicRng([]byte("seed"))
	require.NoError(t, err)
	r2, err := NewDeterministicRng([]byte("seed"))
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		a, err := r1.NextScalar()
		require.NoError(t, err)
		b, err := r2.NextScalar()
		require.NoError(t, err)
		require.True(t, a.Equal(b), "draw %d diverged", i)
	}
}

func TestDeterministicRng_DistinctSeedsAndDraws(t *testing.T) {
	r1, err := NewDeterministicRng([]byte("seed-a"))
	require.NoError(t, err)
	r2, err := NewDeterministicRng([]byte("seed-b"))
	require.NoError(t, err)

	a, err := r1.NextScalar()
	require.NoError(t, err)
	b, err := r2.NextScalar()
	require.NoError(t, err)
	require.False(t, a.Equal(b))

	// Consecutive draws from one stream differ too.
	c, err := r1.NextScalar()
	require.NoError(t, err)
	require.False(t, a.Equal(c))
}

func TestDeterministicRng_EmptySeed(t *testing.T) {
	_, err := NewDeterministicRng(nil)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestRandomScalar_ReaderInjection(t *testing.T) {
	entropy := make([]byte, 64)
	for i := range entropy {
		entropy[i] = byte(i * 7)
	}

	a, err := RandomScalar(bytes.NewReader(entropy))
	require.NoError(t, err)
	b, err := RandomScalar(bytes.NewReader(entropy))
	require.NoError(t, err)
	require.True(t, a.Equal(b), "same entropy must give the same scalar")

	_, err = RandomScalar(bytes.NewReader(entropy[:10]))
	require.Error(t, err)
}

func TestCryptoRng_IndependentDraws(t *testing.T) {
	var rng CryptoRng
	a, err := rng.NextScalar()
	require.NoError(t, err)
	b, err := rng.NextScalar()
	require.NoError(t, err)
	require.False(t, a.Equal(b))
}

func TestScalarFromUint64_LiftsAdditively(t *testing.T) {
	two := MulBase(ScalarFromUint64(2))
	oneTwice := PointAdd(MulBase(ScalarFromUint64(1)), MulBase(ScalarFromUint64(1)))
	require.True(t, two.Equal(oneTwice))

	require.True(t, MulBase(ScalarZero()).Equal(MulBase(ScalarFromUint64(0))))
}

func TestScalarFromBytesCanonical_Length(t *testing.T) {
	_, err := ScalarFromBytesCanonical(make([]byte, ScalarSize-1))
	require.ErrorIs(t, err, ErrMalformedInput)
	_, err = ScalarFromUniformBytes(make([]byte, 32))
	require.ErrorIs(t, err, ErrMalformedInput)
}
