package pir

import (
	"github.com/pkg/errors"

	"ellipticpir/client/pkg/ecelgamal"
)

// maxPacking bounds packing: a decrypted value is a u32 table index, so
// at most 4 bytes per cipher slot can ever be filled.
const maxPacking = 4

// DecryptReply decodes a server reply produced by dimension homomorphic
// reduction rounds with packing plaintext bytes per cipher slot.
//
// The reply is decoded in place on a copy. Each phase decrypts every
// cipher record in the working buffer and rewrites it as packing
// little-endian bytes per record; after a non-final phase those packed
// bytes are re-read as the next phase's cipher stream. The final phase's
// bytes are returned, truncated to exactly records*packing.
//
// Any record that fails to decrypt aborts the whole decode: a reply with
// an undecodable block is not trusted to yield partial data.
func DecryptReply(priv ecelgamal.PrivateKey, reply []byte, dimension, packing int, table *ecelgamal.DecryptionTable) ([]byte, error) {
	if dimension < 1 {
		return nil, errors.Wrapf(ecelgamal.ErrInvalidParameter, "reply: dimension %d", dimension)
	}
	if packing < 1 || packing > maxPacking {
		return nil, errors.Wrapf(ecelgamal.ErrInvalidParameter, "reply: packing %d", packing)
	}
	if len(reply) == 0 || len(reply)%ecelgamal.CipherSize != 0 {
		return nil, errors.Wrapf(ecelgamal.ErrMalformedInput, "reply: %d bytes is not a non-zero multiple of the %d-byte cipher size", len(reply), ecelgamal.CipherSize)
	}
	buf := append([]byte(nil), reply...)
	count := len(buf) / ecelgamal.CipherSize
	for phase := 0; phase < dimension-1; phase++ {
		if err := decryptPhase(priv, buf, count, packing, phase, table); err != nil {
			return nil, err
		}
		count = count * packing / ecelgamal.CipherSize
		if count == 0 {
			return nil, errors.Wrapf(ecelgamal.ErrMalformedInput, "reply: no cipher records left after phase %d", phase)
		}
	}
	if err := decryptPhase(priv, buf, count, packing, dimension-1, table); err != nil {
		return nil, err
	}
	return buf[:count*packing], nil
}

// decryptPhase decrypts the first count cipher records of buf and packs
// the results back into its prefix. The write offset i*packing never
// catches up with the read offset i*CipherSize, so the rewrite is safe
// in place.
func decryptPhase(priv ecelgamal.PrivateKey, buf []byte, count, packing, phase int, table *ecelgamal.DecryptionTable) error {
	for i := 0; i < count; i++ {
		c, err := ecelgamal.CipherFromBytes(buf[i*ecelgamal.CipherSize : (i+1)*ecelgamal.CipherSize])
		if err != nil {
			return errors.Wrapf(err, "reply: record %d (phase %d)", i, phase)
		}
		m, err := ecelgamal.Decrypt(priv, c, table)
		if err != nil {
			return errors.Wrapf(err, "reply: record %d (phase %d)", i, phase)
		}
		for p := 0; p < packing; p++ {
			buf[i*packing+p] = byte(m >> (8 * p))
		}
	}
	return nil
}
