// Package digest hashes seeds and splits digests into selection indices.
package digest

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/multiformats/go-multihash"

	"github.com/systemshift/robo-identities/internal/errs"
)

const (
	// ChunkCount is the number of slots cut from one digest before the
	// vector is duplicated.
	ChunkCount = 11

	// maxBlockSize is the widest hex chunk that always fits in an int64.
	maxBlockSize = 15
)

// IndexVector is the duplicated sequence of chunk values cut from a digest.
// For a vector built by Split, v[i] == v[i+len(v)/2].
type IndexVector []int64

// Digest hashes seed with the multihash algorithm code and returns the raw
// digest (without the multihash prefix) as lowercase hex.
func Digest(seed string, code uint64) (string, error) {
	if _, ok := multihash.Codes[code]; !ok {
		return "", errs.Errorf(errs.ErrParse, "digest", "unknown hash algorithm %#x", code)
	}
	mh, err := multihash.SumStream(strings.NewReader(seed), code, -1)
	if err != nil {
		return "", errs.New(errs.ErrIO, "digest", err)
	}
	dm, err := multihash.Decode(mh)
	if err != nil {
		return "", errs.New(errs.ErrIO, "digest", err)
	}
	return hex.EncodeToString(dm.Digest), nil
}

// SHA512 is the digest used to seed avatars.
func SHA512(seed string) (string, error) {
	return Digest(seed, multihash.SHA2_512)
}

// SHA256 is the digest used by the nickname rehash chain.
func SHA256(seed string) (string, error) {
	return Digest(seed, multihash.SHA2_256)
}

// AlgorithmByName returns the multihash code for a name like "sha2-512" or
// "blake2b-256".
func AlgorithmByName(name string) (uint64, error) {
	code, ok := multihash.Names[strings.ToLower(name)]
	if !ok {
		return 0, errs.Errorf(errs.ErrParse, "digest", "unknown hash algorithm %q", name)
	}
	return code, nil
}

// AlgorithmName is the inverse of AlgorithmByName.
func AlgorithmName(code uint64) string {
	return multihash.Codes[code]
}

// ValidHex reports whether s is non-empty and made only of hex digits.
// Signs and 0x prefixes are rejected.
func ValidHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// Split cuts hexDigest into chunkCount equal-width chunks, parses each as a
// base-16 integer and appends a copy of the result to itself. Characters past
// chunkCount*blockSize are ignored.
func Split(hexDigest string, chunkCount int) (IndexVector, error) {
	if chunkCount <= 0 {
		return nil, errs.Errorf(errs.ErrMissingRequiredData, "split", "chunk count %d", chunkCount)
	}
	blockSize := len(hexDigest) / chunkCount
	if blockSize == 0 {
		return nil, errs.Errorf(errs.ErrMissingRequiredData, "split",
			"digest of %d chars is too short for %d chunks", len(hexDigest), chunkCount)
	}
	if blockSize > maxBlockSize {
		return nil, errs.Errorf(errs.ErrParse, "split", "chunk width %d overflows int64", blockSize)
	}

	v := make(IndexVector, chunkCount, 2*chunkCount)
	for i := 0; i < chunkCount; i++ {
		chunk := hexDigest[i*blockSize : (i+1)*blockSize]
		if !ValidHex(chunk) {
			return nil, errs.Errorf(errs.ErrParse, "split", "chunk %d %q is not hexadecimal", i, chunk)
		}
		n, err := strconv.ParseUint(chunk, 16, 64)
		if err != nil {
			return nil, errs.New(errs.ErrParse, "split", err)
		}
		v[i] = int64(n)
	}
	return append(v, v...), nil
}

// Mod returns v[slot] mod n, always in [0, n).
func (v IndexVector) Mod(slot, n int) (int, error) {
	if n <= 0 {
		return 0, errs.Errorf(errs.ErrInvalidIndex, "index", "no choices for slot %d", slot)
	}
	if slot < 0 || slot >= len(v) {
		return 0, errs.Errorf(errs.ErrInvalidIndex, "index", "slot %d outside vector of %d", slot, len(v))
	}
	m := v[slot] % int64(n)
	if m < 0 {
		m += int64(n)
	}
	return int(m), nil
}
