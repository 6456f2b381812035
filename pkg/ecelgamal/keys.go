package ecelgamal

import "io"

// PrivateKey is a scalar x; the matching public key is Y = x*G.
type PrivateKey struct {
	s Scalar
}

// PublicKey is the point Y = x*G.
type PublicKey struct {
	p Point
}

// GeneratePrivateKey draws a uniformly random private key from rnd, or
// from crypto/rand when rnd is nil.
func GeneratePrivateKey(rnd io.Reader) (PrivateKey, error) {
	s, err := RandomScalar(rnd)
	if err != nil {
		return PrivateKey{}, err
	}
	return PrivateKey{s: s}, nil
}

func PrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	s, err := ScalarFromBytesCanonical(b)
	if err != nil {
		return PrivateKey{}, err
	}
	return PrivateKey{s: s}, nil
}

func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	p, err := PointFromBytesCanonical(b)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKey{p: p}, nil
}

// Public derives the public key Y = x*G.
func (k PrivateKey) Public() PublicKey {
	return PublicKey{p: MulBase(k.s)}
}

func (k PrivateKey) Bytes() []byte {
	return k.s.Bytes()
}

func (k PublicKey) Bytes() []byte {
	return k.p.Bytes()
}
