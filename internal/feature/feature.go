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

// Package feature folds bags of pq-grams into fixed-dimension feature vectors by hash-seeded
// random projection.
//
// Every gram contributes one unit vector drawn from a PRNG seeded with the gram's hash, so equal
// grams contribute equal directions and the vector of a subtree summarizes the multiset of grams
// below it. The PRNG is the PCG generator from math/rand/v2; the drawn components are standard
// normal variates, which makes the normalized vector uniform on the unit sphere. Different PRNG
// choices produce different numeric output but the same structural properties.
package feature

import (
	"math"
	"math/rand/v2"

	"znkr.io/treediff/internal/gram"
	"znkr.io/treediff/internal/tree"
)

// pcgStream is the fixed second PCG seed word. The first word is the gram hash.
const pcgStream = 0x9e3779b97f4a7c15

// Unit returns the deterministic unit vector of dimension d for hash h. The result has Euclidean
// magnitude 1.
func Unit(d int, h uint64) []float64 {
	rng := rand.New(rand.NewPCG(h, pcgStream))
	v := make([]float64, d)
	var mag2 float64
	for i := range v {
		v[i] = rng.NormFloat64()
		mag2 += v[i] * v[i]
	}
	if mag2 == 0 {
		// Cannot happen with a sane PRNG, but a zero vector must never escape.
		v[0] = 1
		return v
	}
	mag := math.Sqrt(mag2)
	for i := range v {
		v[i] /= mag
	}
	return v
}

// Sum folds a bag of grams into a feature vector of dimension d, the element-wise sum of the unit
// vectors of all grams in the bag.
func Sum[L comparable](d int, grams []gram.Gram[L], seed uint64) []float64 {
	v := make([]float64, d)
	for _, g := range grams {
		add(v, Unit(d, g.Sum64(seed)))
	}
	return v
}

func add(dst, src []float64) {
	for i := range dst {
		dst[i] += src[i]
	}
}

// Decorated is the annotation of a tree that went through Decorate: the subtree's feature vector
// in front of the original annotation.
type Decorated[A any] struct {
	Vector []float64
	Ann    A
}

// Decorate replaces every node's gram with the feature vector of the subtree rooted at the node.
// The vector equals the sum of the node's children's vectors plus the unit vector of the node's
// own gram, which is the same as folding the bag of all grams in the subtree.
func Decorate[L comparable, A any](t *tree.Tree[gram.Annotated[L, A]], d int, seed uint64) *tree.Tree[Decorated[A]] {
	return tree.Map(t, func(n *tree.Tree[gram.Annotated[L, A]], children []*tree.Tree[Decorated[A]]) Decorated[A] {
		v := Unit(d, n.Value.Gram.Sum64(seed))
		for _, c := range children {
			add(v, c.Value.Vector)
		}
		return Decorated[A]{Vector: v, Ann: n.Value.Ann}
	})
}
