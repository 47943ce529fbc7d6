// Copyright 2026 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gram implements pq-gram extraction for ordered labeled trees.
//
// A pq-gram is a fixed-size structural fingerprint of a tree node: the labels of its p nearest
// ancestors (the stem) and a window of q sibling labels starting at the node itself (the base).
// Positions without a label, e.g. ancestors of the root or siblings past the end of a child list,
// are filled with an absent marker so that every gram has exactly p + q entries.
//
// ## References:
//
// Augsten, N., Böhlen, M., Gamper, J. The pq-gram distance between ordered labeled trees. ACM
// Transactions on Database Systems 35, 1 (2010). https://doi.org/10.1145/1670243.1670247
package gram

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Label is an optional tree label. The zero value is absent.
type Label[L comparable] struct {
	Value L
	Valid bool
}

// Of returns a present label.
func Of[L comparable](v L) Label[L] {
	return Label[L]{Value: v, Valid: true}
}

// Gram is the pq-gram of a single node. Stem holds exactly p entries, root-wards with the nearest
// ancestor first; Base holds exactly q entries in sibling order starting at the node itself.
type Gram[L comparable] struct {
	Stem []Label[L]
	Base []Label[L]
}

// New constructs a gram from a stem and a base.
func New[L comparable](stem, base []Label[L]) Gram[L] {
	return Gram[L]{Stem: stem, Base: base}
}

// Sum64 returns the 64-bit hash of the concatenation Stem ++ Base. The hash is deterministic
// across processes. seed is mixed in before any label.
func (g Gram[L]) Sum64(seed uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)
	d.Write(buf[:])
	for _, l := range g.Stem {
		writeLabel(d, l)
	}
	for _, l := range g.Base {
		writeLabel(d, l)
	}
	return d.Sum64()
}

func writeLabel[L comparable](d *xxhash.Digest, l Label[L]) {
	if !l.Valid {
		d.Write([]byte{0})
		return
	}
	d.Write([]byte{1})
	fmt.Fprintf(d, "%v", l.Value)
	d.Write([]byte{0x1f})
}

// padToSize returns the first n elements of xs extended with absent labels, truncating if xs is
// longer. The result never aliases xs.
func padToSize[L comparable](n int, xs []Label[L]) []Label[L] {
	out := make([]Label[L], n)
	copy(out, xs)
	return out
}
