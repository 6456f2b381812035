package ecelgamal

import (
	"crypto/rand"
	"io"

	"github.com/gtank/ristretto255"
	"github.com/pkg/errors"
)

// ScalarSize is the byte length of a canonically encoded scalar.
const ScalarSize = 32

// Scalar is a ristretto255 scalar (canonical 32-byte little-endian encoding).
// It serves both as a private key and as encryption randomness.
type Scalar struct {
	v ristretto255.Scalar
}

func ScalarZero() Scalar {
	return Scalar{}
}

func ScalarFromUint64(x uint64) Scalar {
	// ristretto255.Scalar expects canonical little-endian encoding.
	var b [32]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(x >> (8 * i))
	}
	var s Scalar
	err := s.v.Decode(b[:])
	if err == nil {
		return s
	}
	// For x >= l (cannot happen for uint64), reduce via uniform bytes.
	var uni [64]byte
	copy(uni[:], b[:])
	s.v.FromUniformBytes(uni[:])
	return s
}

func ScalarFromBytesCanonical(b []byte) (Scalar, error) {
	if len(b) != ScalarSize {
		return Scalar{}, errors.Wrapf(ErrMalformedInput, "scalar: expected %d bytes, got %d", ScalarSize, len(b))
	}
	var s Scalar
	if err := s.v.Decode(b); err != nil {
		return Scalar{}, errors.Wrap(ErrMalformedInput, "scalar: non-canonical encoding")
	}
	return s, nil
}

func ScalarFromUniformBytes(b []byte) (Scalar, error) {
	if len(b) != 64 {
		return Scalar{}, errors.Wrapf(ErrMalformedInput, "scalar: expected 64 uniform bytes, got %d", len(b))
	}
	var s Scalar
	s.v.FromUniformBytes(b)
	return s, nil
}

// RandomScalar draws a uniformly random scalar from rnd, or from
// crypto/rand when rnd is nil. crypto/rand is safe for concurrent
// independent callers; every call reads fresh entropy.
func RandomScalar(rnd io.Reader) (Scalar, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	var uni [64]byte
	if _, err := io.ReadFull(rnd, uni[:]); err != nil {
		return Scalar{}, errors.Wrap(err, "scalar: reading randomness")
	}
	return ScalarFromUniformBytes(uni[:])
}

func (s Scalar) Bytes() []byte {
	return s.v.Encode(nil)
}

func (s Scalar) Equal(t Scalar) bool {
	return s.v.Equal(&t.v) == 1
}

func ScalarAdd(a, b Scalar) Scalar {
	var out Scalar
	out.v.Add(&a.v, &b.v)
	return out
}

func ScalarMul(a, b Scalar) Scalar {
	var out Scalar
	out.v.Multiply(&a.v, &b.v)
	return out
}
