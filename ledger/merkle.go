// Package ledger commits a batch of accepted polynomials to a single
// short value, so a search campaign (cmd/gfsearch) can record or verify
// the exact set of accepts without shipping the full list. It is a
// reporting concern, external to the irreducibility/primitivity semantics
// (spec.md §1's "I/O formatting" collaborator), using the teacher's
// SHAKE-256-truncated-digest commitment idea over this package's own
// position-binding leaf scheme.
package ledger

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"gfsearch/gf"
	gfio "gfsearch/gf/io"
)

const (
	leafTag byte = 0xA5
	nodeTag byte = 0x5A
)

// Tree commits a batch of accepted polynomials to a single root value.
// Each leaf digest binds the polynomial's index within the batch, so two
// campaigns that accept the same set of polynomials in a different order
// commit to different roots — a plain content hash alone would conflate
// them.
type Tree struct {
	levels [][][16]byte // levels[0] holds the leaves, levels[last] holds the root
}

// Build constructs the tree over polys, in the order given.
func Build(polys []gf.Poly) *Tree {
	leaves := make([][16]byte, len(polys))
	for i, p := range polys {
		leaves[i] = leafDigest(i, []byte(gfio.Format(p)))
	}
	return fromLeaves(leaves)
}

func fromLeaves(leaves [][16]byte) *Tree {
	width := 1
	for width < len(leaves) {
		width <<= 1
	}
	if width == 0 {
		width = 1
	}
	level := make([][16]byte, width)
	copy(level, leaves)
	for i := len(leaves); i < width; i++ {
		level[i] = leafDigest(i, nil)
	}

	levels := [][][16]byte{level}
	for len(level) > 1 {
		level = pairUp(level)
		levels = append(levels, level)
	}
	return &Tree{levels: levels}
}

// pairUp hashes each adjacent pair of level into the level above it.
func pairUp(level [][16]byte) [][16]byte {
	above := make([][16]byte, len(level)/2)
	for i := range above {
		above[i] = nodeDigest(level[2*i], level[2*i+1])
	}
	return above
}

// Root returns the 16-byte commitment over the whole batch.
func (t *Tree) Root() [16]byte {
	return t.levels[len(t.levels)-1][0]
}

// Path returns the sibling digest at each level on the way from leaf idx
// up to the root, proving idx's membership.
func (t *Tree) Path(idx int) [][]byte {
	path := make([][]byte, len(t.levels)-1)
	for lvl, level := range t.levels[:len(t.levels)-1] {
		sib := level[idx^1]
		path[lvl] = append([]byte(nil), sib[:]...)
		idx >>= 1
	}
	return path
}

// VerifyPath checks that poly, committed at position idx, climbs via path
// to root.
func VerifyPath(poly gf.Poly, path [][]byte, root [16]byte, idx int) bool {
	h := leafDigest(idx, []byte(gfio.Format(poly)))
	for _, sibBytes := range path {
		var sib [16]byte
		copy(sib[:], sibBytes)
		if idx&1 == 0 {
			h = nodeDigest(h, sib)
		} else {
			h = nodeDigest(sib, h)
		}
		idx >>= 1
	}
	return bytes.Equal(h[:], root[:])
}

// leafDigest hashes a leaf's batch position together with its data as
// two separate SHAKE-256 writes, rather than one packed buffer, so the
// position can never be confused with a data byte regardless of data's
// length.
func leafDigest(index int, data []byte) [16]byte {
	h := sha3.NewShake256()
	_, _ = h.Write([]byte{leafTag})
	var idxBuf [8]byte
	binary.BigEndian.PutUint64(idxBuf[:], uint64(index))
	_, _ = h.Write(idxBuf[:])
	_, _ = h.Write(data)
	var out [16]byte
	_, _ = h.Read(out[:])
	return out
}

func nodeDigest(left, right [16]byte) [16]byte {
	h := sha3.NewShake256()
	_, _ = h.Write([]byte{nodeTag})
	_, _ = h.Write(left[:])
	_, _ = h.Write(right[:])
	var out [16]byte
	_, _ = h.Read(out[:])
	return out
}
