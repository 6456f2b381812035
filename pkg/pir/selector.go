// Package pir builds encrypted PIR selectors and decodes PIR replies on
// top of the ecelgamal core.
package pir

import (
	"github.com/pkg/errors"

	"ellipticpir/client/pkg/ecelgamal"
)

// CiphersCount returns the total number of ciphertexts a selector shaped
// by indexCounts carries: the sum of the per-dimension counts. The server
// computes the same quantity from the same counts; the two must agree or
// selectors desynchronize from server indexing.
func CiphersCount(indexCounts []uint64) (uint64, error) {
	if err := validateIndexCounts(indexCounts); err != nil {
		return 0, err
	}
	var total uint64
	for _, c := range indexCounts {
		total += c
	}
	return total, nil
}

// ElementsCount returns the number of addressable elements: the product
// of the per-dimension counts.
func ElementsCount(indexCounts []uint64) (uint64, error) {
	if err := validateIndexCounts(indexCounts); err != nil {
		return 0, err
	}
	total := uint64(1)
	for _, c := range indexCounts {
		total *= c
	}
	return total, nil
}

func validateIndexCounts(indexCounts []uint64) error {
	if len(indexCounts) == 0 {
		return errors.Wrap(ecelgamal.ErrInvalidParameter, "selector: empty index counts")
	}
	for i, c := range indexCounts {
		if c == 0 {
			return errors.Wrapf(ecelgamal.ErrInvalidParameter, "selector: dimension %d has zero count", i)
		}
	}
	return nil
}

// CreateSelector encrypts the one-hot encoding of idx across the query
// dimensions and returns the concatenated fixed-size cipher encodings.
// Per dimension, the position equal to that dimension's digit of idx
// encrypts 1 and every other position encrypts 0. Works identically
// through either Encryptor implementation; a nil rng draws from
// crypto/rand.
//
// Digit order is most-significant-dimension-first: dimension 0 carries
// the largest stride (ElementsCount/indexCounts[0]). This is a frozen
// protocol convention shared with the server, not a free choice.
func CreateSelector(enc ecelgamal.Encryptor, indexCounts []uint64, idx uint64, rng ecelgamal.ScalarRng) ([]byte, error) {
	elements, err := ElementsCount(indexCounts)
	if err != nil {
		return nil, err
	}
	if idx >= elements {
		return nil, errors.Wrapf(ecelgamal.ErrInvalidParameter, "selector: idx %d out of range for %d elements", idx, elements)
	}
	if rng == nil {
		rng = ecelgamal.CryptoRng{}
	}
	ciphers, err := CiphersCount(indexCounts)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, int(ciphers)*ecelgamal.CipherSize)
	remaining := elements
	for dim, count := range indexCounts {
		remaining /= count
		digit := idx / remaining
		idx -= digit * remaining
		for pos := uint64(0); pos < count; pos++ {
			var message uint64
			if pos == digit {
				message = 1
			}
			r, err := rng.NextScalar()
			if err != nil {
				return nil, errors.Wrapf(err, "selector: drawing randomness for dimension %d", dim)
			}
			c, err := enc.Encrypt(message, &r)
			if err != nil {
				return nil, errors.Wrapf(err, "selector: encrypting dimension %d position %d", dim, pos)
			}
			out = append(out, c.Bytes()...)
		}
	}
	return out, nil
}
