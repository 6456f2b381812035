package ecelgamal

import "github.com/pkg/errors"

// Failure kinds surfaced by this package and pkg/pir. Call sites wrap
// these with record/phase context; match with errors.Is.
var (
	// ErrTableLoad reports a decryption table artifact with a wrong size
	// or an mmax that disagrees with the requested one.
	ErrTableLoad = errors.New("ecelgamal: bad decryption table artifact")

	// ErrDecryptionFailed reports an unmasked point absent from the
	// table: a message outside [0, mmax), a mismatched private key, or a
	// corrupted cipher.
	ErrDecryptionFailed = errors.New("ecelgamal: decryption failed")

	// ErrInvalidParameter reports arguments rejected before any
	// cryptographic work is done.
	ErrInvalidParameter = errors.New("ecelgamal: invalid parameter")

	// ErrMalformedInput reports byte buffers not aligned to the expected
	// fixed record size, or non-canonical encodings.
	ErrMalformedInput = errors.New("ecelgamal: malformed input")
)
