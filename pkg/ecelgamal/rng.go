package ecelgamal

import (
	"crypto/sha512"
	"encoding/binary"
	"hash"

	"github.com/pkg/errors"
)

// ScalarRng yields encryption randomness, one scalar per draw.
type ScalarRng interface {
	NextScalar() (Scalar, error)
}

// CryptoRng draws every scalar independently from crypto/rand. Safe for
// concurrent callers; there is no shared state.
type CryptoRng struct{}

func (CryptoRng) NextScalar() (Scalar, error) {
	return RandomScalar(nil)
}

var scalarRngPrefix = []byte("EPIRv1|scalar_rng|")

// DeterministicRng derives a reproducible scalar stream from a seed.
// Intended for tests and for reproducing a selector; not safe for
// concurrent use.
type DeterministicRng struct {
	seed    []byte
	counter uint32
}

func NewDeterministicRng(seed []byte) (*DeterministicRng, error) {
	if len(seed) == 0 {
		return nil, errors.Wrap(ErrInvalidParameter, "rng: empty seed")
	}
	return &DeterministicRng{seed: append([]byte(nil), seed...)}, nil
}

func (r *DeterministicRng) NextScalar() (Scalar, error) {
	c := make([]byte, 4)
	binary.LittleEndian.PutUint32(c, r.counter)
	r.counter++
	h := sha512.New()
	h.Write(scalarRngPrefix)
	updateLenBytes(h, r.seed)
	updateLenBytes(h, c)
	return ScalarFromUniformBytes(h.Sum(nil))
}

func updateLenBytes(h hash.Hash, b []byte) {
	var n [4]byte
	binary.LittleEndian.PutUint32(n[:], uint32(len(b)))
	h.Write(n[:])
	h.Write(b)
}
