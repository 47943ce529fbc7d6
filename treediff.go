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

package treediff

import (
	"znkr.io/treediff/internal/config"
	"znkr.io/treediff/internal/feature"
	"znkr.io/treediff/internal/gram"
	"znkr.io/treediff/internal/rws"
)

// Op describes the kind of a diff node.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Match   Op = iota // An aligned pair of subtrees
	Insert            // A new-list subtree with no match in the old list
	Delete            // An old-list subtree with no match in the new list
	Replace           // An old subtree substituted by a new one; emitted by comparators only
)

// Diff is a tree-structured edit script.
//
//   - For Match and Replace, X holds the old subtree and Y the new one, and Children holds the
//     sub-diffs of the pair.
//   - For Delete, X holds the deleted subtree and Y is nil.
//   - For Insert, Y holds the inserted subtree and X is nil.
//
// The matching pass in this package emits Match, Insert and Delete; Replace exists for
// comparators that substitute a subtree wholesale instead of descending into it.
type Diff[A any] struct {
	Op       Op
	X, Y     *Tree[A]
	Children []Diff[A]
}

// Comparator decides whether two subtrees align. Returning false means the pair is too different
// to align at this point; returning a diff and true commits the pair. The comparator owns the
// descent into aligned pairs, the matching pass never recurses on its own.
type Comparator[A any] func(x, y *Tree[A]) (Diff[A], bool)

// PQGrams returns the bag of pq-grams summarizing t, one gram per node in pre-order.
//
// The following options are supported: [P], [Q]
func PQGrams[A any, L comparable](t *Tree[A], label LabelFunc[A, L], opts ...Option) []Gram[L] {
	cfg := config.FromOptions(opts, config.P|config.Q)
	return gram.Bag(gram.Decorate(gram.Labelize(t, label), cfg.P, cfg.Q))
}

// FeatureVector folds a bag of grams into a feature vector: the element-wise sum of one
// hash-seeded unit vector per gram. See [znkr.io/treediff/internal/feature] for the PRNG choice.
//
// The following option is supported: [Dimension]
func FeatureVector[L comparable](grams []Gram[L], opts ...Option) []float64 {
	cfg := config.FromOptions(opts, config.Dim|config.Seed)
	return feature.Sum(cfg.Dim, grams, cfg.Seed)
}

// FeatureVectorDecorator runs the full decoration pipeline: it labels every node of t with label,
// replaces the labels with pq-grams, and folds the grams into per-subtree feature vectors. The
// result has the same shape as t; every node's annotation carries the feature vector of its
// subtree in front of the original annotation.
//
// The decoration is deterministic: structurally equal trees produce equal vectors.
//
// The following options are supported: [P], [Q], [Dimension]
func FeatureVectorDecorator[A any, L comparable](t *Tree[A], label LabelFunc[A, L], opts ...Option) *Tree[Decorated[A]] {
	cfg := config.FromOptions(opts, config.P|config.Q|config.Dim|config.Seed)
	return feature.Decorate(gram.Decorate(gram.Labelize(t, label), cfg.P, cfg.Q), cfg.Dim, cfg.Seed)
}

// RWS aligns the ordered subtree lists as and bs by random-walk similarity and returns one diff
// per input subtree: a comparator-produced diff for every aligned pair, an Insert for every
// unmatched element of bs, and a Delete for every unmatched element of as.
//
// Matches respect the order of both lists: read by old index, the aligned pairs form a
// non-decreasing sequence. Insertions appear where the walk over bs produced them and deletions
// are merged in by old index.
//
// Both input lists must be decorated by [FeatureVectorDecorator] with a single set of options;
// the matching is only meaningful between vectors from one decoration configuration.
func RWS[A any](cmp Comparator[Decorated[A]], as, bs []*Tree[Decorated[A]]) []Diff[Decorated[A]] {
	return rws.Diffs[*Tree[Decorated[A]], Diff[Decorated[A]]](
		cmp,
		as, bs,
		func(t *Tree[Decorated[A]]) []float64 { return t.Value.Vector },
		func(t *Tree[Decorated[A]]) Diff[Decorated[A]] { return Diff[Decorated[A]]{Op: Insert, Y: t} },
		func(t *Tree[Decorated[A]]) Diff[Decorated[A]] { return Diff[Decorated[A]]{Op: Delete, X: t} },
	)
}

// EqualityComparator returns a comparator that aligns two subtrees when eq accepts their
// annotations and descends into aligned pairs by matching their children with [RWS]. It is a
// reasonable default when no language-specific comparator is available.
func EqualityComparator[A any](eq func(x, y Decorated[A]) bool) Comparator[Decorated[A]] {
	var cmp Comparator[Decorated[A]]
	cmp = func(x, y *Tree[Decorated[A]]) (Diff[Decorated[A]], bool) {
		if !eq(x.Value, y.Value) {
			return Diff[Decorated[A]]{}, false
		}
		return Diff[Decorated[A]]{Op: Match, X: x, Y: y, Children: RWS(cmp, x.Children, y.Children)}, true
	}
	return cmp
}
