package ecelgamal

import "github.com/pkg/errors"

// CipherSize is the byte length of a serialized ciphertext.
const CipherSize = 2 * PointSize

// Cipher is an EC-ElGamal ciphertext in additive notation:
//
//	C1 = r*G
//	C2 = m*G + r*Y   where Y = x*G
//
// Both components are always present; a buffer of any other length is a
// malformed cipher.
type Cipher struct {
	C1 Point
	C2 Point
}

func (c Cipher) Bytes() []byte {
	return append(c.C1.Bytes(), c.C2.Bytes()...)
}

func CipherFromBytes(b []byte) (Cipher, error) {
	if len(b) != CipherSize {
		return Cipher{}, errors.Wrapf(ErrMalformedInput, "cipher: expected %d bytes, got %d", CipherSize, len(b))
	}
	c1, err := PointFromBytesCanonical(b[:PointSize])
	if err != nil {
		return Cipher{}, errors.Wrap(err, "cipher: c1")
	}
	c2, err := PointFromBytesCanonical(b[PointSize:CipherSize])
	if err != nil {
		return Cipher{}, errors.Wrap(err, "cipher: c2")
	}
	return Cipher{C1: c1, C2: c2}, nil
}

// Encryptor encrypts a small integer message into a two-point cipher.
// Exactly two implementations exist: PublicKey (the standard path) and
// PrivateKey (the accelerated path, usable only by the key holder).
type Encryptor interface {
	Encrypt(message uint64, r *Scalar) (Cipher, error)
}

func encryptionRandomness(r *Scalar) (Scalar, error) {
	if r != nil {
		return *r, nil
	}
	return RandomScalar(nil)
}

// Encrypt computes C1 = r*G, C2 = m*G + r*Y. A nil r draws fresh
// randomness. The message is not range-checked here; decryptability is
// bounded by the table's mmax.
func (k PublicKey) Encrypt(message uint64, r *Scalar) (Cipher, error) {
	rr, err := encryptionRandomness(r)
	if err != nil {
		return Cipher{}, err
	}
	return Cipher{
		C1: MulBase(rr),
		C2: PointAdd(MulBase(ScalarFromUint64(message)), MulPoint(k.p, rr)),
	}, nil
}

// Encrypt is the accelerated variant. With the private scalar in hand,
// C2 = m*G + r*(x*G) = (m + r*x)*G, a single base multiplication.
func (k PrivateKey) Encrypt(message uint64, r *Scalar) (Cipher, error) {
	rr, err := encryptionRandomness(r)
	if err != nil {
		return Cipher{}, err
	}
	return Cipher{
		C1: MulBase(rr),
		C2: MulBase(ScalarAdd(ScalarFromUint64(message), ScalarMul(rr, k.s))),
	}, nil
}

// Decrypt unmasks c with the private key and resolves the lifted message
// through the table: M = C2 - x*C1 = m*G.
//
// The result is deterministic for fixed inputs. A table miss means the
// message is outside [0, mmax), the key does not match, or the cipher is
// corrupted; which one cannot be told apart locally.
func Decrypt(priv PrivateKey, c Cipher, table *DecryptionTable) (uint32, error) {
	m, ok := table.Lookup(PointSub(c.C2, MulPoint(c.C1, priv.s)))
	if !ok {
		return 0, errors.Wrap(ErrDecryptionFailed, "unmasked point not in table")
	}
	return m, nil
}
