package ecelgamal

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/pkg/errors"
)

const (
	// DefaultMmax is the table range deployed clients and servers agree
	// on out of band.
	DefaultMmax = 1 << 24

	// mgRecordSize is one persisted table record: the canonical point
	// encoding followed by its u32 little-endian message index.
	mgRecordSize = PointSize + 4

	// Stored indices are u32, so a table can never cover more.
	maxMmax = int64(1) << 32
)

type mgEntry struct {
	point [PointSize]byte
	index uint32
}

// DecryptionTable maps i*G back to i for i in [0, mmax). Entries are
// sorted by canonical point encoding in ascending lexicographic order.
// The table is immutable once built or loaded and safe for any number of
// concurrent lookups.
type DecryptionTable struct {
	entries []mgEntry
}

// BuildDecryptionTable computes i*G for i in [0, mmax) by cumulative
// addition of the generator (one point add per entry, not one scalar
// multiplication), then sorts by point encoding. progress, when non-nil,
// is invoked with each index as its point is computed; a caller that
// wants to abort an in-progress build does so between callbacks.
func BuildDecryptionTable(mmax int, progress func(i int)) (*DecryptionTable, error) {
	if mmax <= 0 || int64(mmax) > maxMmax {
		return nil, errors.Wrapf(ErrInvalidParameter, "table: mmax %d out of range", mmax)
	}
	entries := make([]mgEntry, mmax)
	cur := MulBase(ScalarZero())
	gen := MulBase(ScalarFromUint64(1))
	for i := 0; i < mmax; i++ {
		copy(entries[i].point[:], cur.Bytes())
		entries[i].index = uint32(i)
		cur = PointAdd(cur, gen)
		if progress != nil {
			progress(i)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return bytes.Compare(entries[i].point[:], entries[j].point[:]) < 0
	})
	return &DecryptionTable{entries: entries}, nil
}

// LoadDecryptionTable parses a persisted table artifact. The byte length
// must be an exact multiple of the record size, the record count must
// equal mmax, and records must arrive in strictly ascending point order.
func LoadDecryptionTable(b []byte, mmax int) (*DecryptionTable, error) {
	if mmax <= 0 || int64(mmax) > maxMmax {
		return nil, errors.Wrapf(ErrInvalidParameter, "table: mmax %d out of range", mmax)
	}
	if len(b)%mgRecordSize != 0 {
		return nil, errors.Wrapf(ErrTableLoad, "%d bytes is not a multiple of the %d-byte record size", len(b), mgRecordSize)
	}
	count := len(b) / mgRecordSize
	if count != mmax {
		return nil, errors.Wrapf(ErrTableLoad, "artifact holds %d records, want %d", count, mmax)
	}
	entries := make([]mgEntry, count)
	for i := range entries {
		rec := b[i*mgRecordSize : (i+1)*mgRecordSize]
		copy(entries[i].point[:], rec[:PointSize])
		entries[i].index = binary.LittleEndian.Uint32(rec[PointSize:])
		if i > 0 && bytes.Compare(entries[i-1].point[:], entries[i].point[:]) >= 0 {
			return nil, errors.Wrapf(ErrTableLoad, "records not strictly ascending at %d", i)
		}
	}
	return &DecryptionTable{entries: entries}, nil
}

// Bytes serializes the table in its sorted record order; the result is
// the on-disk artifact format.
func (t *DecryptionTable) Bytes() []byte {
	out := make([]byte, 0, len(t.entries)*mgRecordSize)
	var idx [4]byte
	for i := range t.entries {
		out = append(out, t.entries[i].point[:]...)
		binary.LittleEndian.PutUint32(idx[:], t.entries[i].index)
		out = append(out, idx[:]...)
	}
	return out
}

// Mmax reports the table's configured message range.
func (t *DecryptionTable) Mmax() int {
	return len(t.entries)
}

// Lookup binary-searches for p's canonical encoding and returns the
// message it lifts, if covered.
func (t *DecryptionTable) Lookup(p Point) (uint32, bool) {
	enc := p.Bytes()
	i := sort.Search(len(t.entries), func(i int) bool {
		return bytes.Compare(t.entries[i].point[:], enc) >= 0
	})
	if i < len(t.entries) && bytes.Equal(t.entries[i].point[:], enc) {
		return t.entries[i].index, true
	}
	return 0, false
}
