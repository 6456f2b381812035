package ecelgamal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildDecryptionTable_SortedAndComplete(t *testing.T) {
	const mmax = 64
	table, err := BuildDecryptionTable(mmax, nil)
	require.NoError(t, err)
	require.Equal(t, mmax, table.Mmax())

	for i := 1; i < len(table.entries); i++ {
		require.Negative(t,
			bytes.Compare(table.entries[i-1].point[:], table.entries[i].point[:]),
			"entries %d and %d out of order", i-1, i)
	}

	// Every lifted message in [0, mmax) resolves back to itself.
	for i := 0; i < mmax; i++ {
		got, ok := table.Lookup(MulBase(ScalarFromUint64(uint64(i))))
		require.True(t, ok, "i=%d missing", i)
		require.Equal(t, uint32(i), got)
	}

	_, ok := table.Lookup(MulBase(ScalarFromUint64(mmax)))
	require.False(t, ok)
}

func TestBuildDecryptionTable_ProgressCallback(t *testing.T) {
	const mmax = 32
	var seen []int
	_, err := BuildDecryptionTable(mmax, func(i int) {
		seen = append(seen, i)
	})
	require.NoError(t, err)
	require.Len(t, seen, mmax)
	for i, v := range seen {
		require.Equal(t, i, v)
	}
}

func TestBuildDecryptionTable_InvalidMmax(t *testing.T) {
	_, err := BuildDecryptionTable(0, nil)
	require.ErrorIs(t, err, ErrInvalidParameter)
	_, err = BuildDecryptionTable(-5, nil)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestTableArtifact_RoundTrip(t *testing.T) {
	const mmax = 48
	built, err := BuildDecryptionTable(mmax, nil)
	require.NoError(t, err)

	artifact := built.Bytes()
	require.Len(t, artifact, mmax*mgRecordSize)

	loaded, err := LoadDecryptionTable(artifact, mmax)
	require.NoError(t, err)
	require.Equal(t, mmax, loaded.Mmax())
	for i := 0; i < mmax; i++ {
		got, ok := loaded.Lookup(MulBase(ScalarFromUint64(uint64(i))))
		require.True(t, ok)
		require.Equal(t, uint32(i), got)
	}
}

func TestLoadDecryptionTable_RejectsBadArtifacts(t *testing.T) {
	const mmax = 16
	built, err := BuildDecryptionTable(mmax, nil)
	require.NoError(t, err)
	artifact := built.Bytes()

	// Truncated to a non-record boundary.
	_, err = LoadDecryptionTable(artifact[:len(artifact)-1], mmax)
	require.ErrorIs(t, err, ErrTableLoad)

	// Whole records missing.
	_, err = LoadDecryptionTable(artifact[:len(artifact)-mgRecordSize], mmax)
	require.ErrorIs(t, err, ErrTableLoad)

	// mmax disagrees with the record count.
	_, err = LoadDecryptionTable(artifact, mmax+1)
	require.ErrorIs(t, err, ErrTableLoad)

	// Records out of sort order.
	swapped := append([]byte(nil), artifact...)
	copy(swapped[:mgRecordSize], artifact[mgRecordSize:2*mgRecordSize])
	copy(swapped[mgRecordSize:2*mgRecordSize], artifact[:mgRecordSize])
	_, err = LoadDecryptionTable(swapped, mmax)
	require.ErrorIs(t, err, ErrTableLoad)

	_, err = LoadDecryptionTable(artifact, 0)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestDecryptionTable_ConcurrentLookups(t *testing.T) {
	const mmax = 32
	table, err := BuildDecryptionTable(mmax, nil)
	require.NoError(t, err)

	done := make(chan struct{})
	for g := 0; g < 4; g++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for i := 0; i < mmax; i++ {
				got, ok := table.Lookup(MulBase(ScalarFromUint64(uint64(i))))
				if !ok || got != uint32(i) {
					t.Errorf("lookup i=%d: got %d ok=%v", i, got, ok)
					return
				}
			}
		}()
	}
	for g := 0; g < 4; g++ {
		<-done
	}
}
