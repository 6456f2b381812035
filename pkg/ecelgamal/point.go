package ecelgamal

import (
	"github.com/gtank/ristretto255"
	"github.com/pkg/errors"
)

// PointSize is the byte length of a canonically encoded group element.
const PointSize = 32

// Point is a ristretto255 group element (canonical 32-byte encoding).
// It serves both as a public key and as a ciphertext component.
type Point struct {
	v ristretto255.Element
}

func PointFromBytesCanonical(b []byte) (Point, error) {
	if len(b) != PointSize {
		return Point{}, errors.Wrapf(ErrMalformedInput, "point: expected %d bytes, got %d", PointSize, len(b))
	}
	var p Point
	if err := p.v.Decode(b); err != nil {
		return Point{}, errors.Wrap(ErrMalformedInput, "point: non-canonical encoding")
	}
	return p, nil
}

// MulBase returns s*G.
func MulBase(s Scalar) Point {
	var p Point
	p.v.ScalarBaseMult(&s.v)
	return p
}

// MulPoint returns s*p.
func MulPoint(p Point, s Scalar) Point {
	var out Point
	out.v.ScalarMult(&s.v, &p.v)
	return out
}

func PointAdd(a, b Point) Point {
	var out Point
	out.v.Add(&a.v, &b.v)
	return out
}

func PointSub(a, b Point) Point {
	var out Point
	out.v.Subtract(&a.v, &b.v)
	return out
}

func (p Point) Bytes() []byte {
	return p.v.Encode(nil)
}

func (p Point) Equal(q Point) bool {
	return p.v.Equal(&q.v) == 1
}
