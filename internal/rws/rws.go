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

// Package rws contains an implementation of the random-walk similarity matching pass.
//
// The pass aligns two ordered lists of subtrees, the old list as and the new list bs, by nearest
// neighbor search in feature-vector space. Every subtree carries a fixed-dimension feature vector
// that summarizes the multiset of pq-grams below its root; structurally similar subtrees have
// nearby vectors. A static k-d tree over the old list's vectors answers nearest-neighbor queries
// in logarithmic time, giving the whole pass log-linear complexity in the number of subtrees.
//
// # Matching
//
// The driver walks bs in order and threads two pieces of state:
//
//   - previous, the largest old index matched so far (-1 before the first match), and
//   - unmapped, the set of old indices not yet matched.
//
// For every b the k-d tree proposes the old subtree a* with the nearest vector. The proposal is
// committed only if a* is still unmapped, its index does not precede previous, and the comparator
// accepts the pair. Otherwise b becomes an insertion. Old subtrees that are never matched become
// deletions, merged into the output in old-index order: each goes directly in front of the first
// committed match with a larger old index, or at the end.
//
// The index constraint is what makes the result an edit script for ordered trees: committed
// matches read in old-index order follow the walk order of bs, so matched pairs never cross.
// The cost is that a similarity match whose index precedes an earlier commitment is rejected
// even when the similarity is high.
//
// The matching is a heuristic. It is greedy, it never revisits a commitment, and a rejected
// proposal does not trigger a search for the second-nearest neighbor. Both sides of every
// trade-off were chosen by the paper below in favor of speed.
//
// ## References:
//
// Finis, J.P., Raiber, M., Augsten, N., Brunel, R., Kemper, A., Färber, F. RWS-Diff: flexible and
// efficient change detection in hierarchical data. CIKM '13, 339-348 (2013).
// https://doi.org/10.1145/2505515.2505660
package rws

import (
	"slices"

	"znkr.io/treediff/internal/knn"
)

// Diffs aligns the ordered subtree lists as and bs and returns one diff per input subtree.
//
// cmp decides whether a proposed pair aligns and produces its diff. feat projects a subtree to
// its feature vector. ins and del wrap an unmatched subtree into an insertion or deletion diff.
//
// Every element of as and bs contributes to the output exactly once: as a committed pair, an
// insertion, or a deletion. Committed pairs appear in walk order over bs, which is also
// non-decreasing old-index order; each deletion is placed directly in front of the first
// committed pair with a larger old index, or at the end if there is none.
func Diffs[T, D any](cmp func(a, b T) (D, bool), as, bs []T, feat func(T) []float64, ins, del func(T) D) []D {
	switch {
	case len(as) == 0 && len(bs) == 0:
		return nil
	case len(as) == 0:
		out := make([]D, len(bs))
		for i, b := range bs {
			out[i] = ins(b)
		}
		return out
	case len(bs) == 0:
		out := make([]D, len(as))
		for i, a := range as {
			out[i] = del(a)
		}
		return out
	}

	features := make([][]float64, len(as))
	for i, a := range as {
		features[i] = feat(a)
	}
	index := knn.New(features)

	unmapped := make(map[int]struct{}, len(as))
	for i := range as {
		unmapped[i] = struct{}{}
	}

	type pair struct {
		index int // old index of a committed pair, -1 for insertions
		diff  D
	}
	walked := make([]pair, 0, len(bs))
	previous := -1
	for _, b := range bs {
		if i, ok := index.Nearest(feat(b)); ok {
			if _, open := unmapped[i]; open && i >= previous {
				if d, aligned := cmp(as[i], b); aligned {
					walked = append(walked, pair{index: i, diff: d})
					previous = i
					delete(unmapped, i)
					continue
				}
			}
		}
		walked = append(walked, pair{index: -1, diff: ins(b)})
	}

	// Merge the deletions back in ascending old-index order. A deletion for index i goes in
	// front of the first element whose old index exceeds i; insertions carry index -1 and so
	// never push a deletion back.
	deleted := make([]int, 0, len(unmapped))
	for i := range unmapped {
		deleted = append(deleted, i)
	}
	slices.Sort(deleted)

	out := make([]D, 0, len(walked)+len(deleted))
	next := 0
	for _, p := range walked {
		if p.index >= 0 {
			for next < len(deleted) && deleted[next] < p.index {
				out = append(out, del(as[deleted[next]]))
				next++
			}
		}
		out = append(out, p.diff)
	}
	for ; next < len(deleted); next++ {
		out = append(out, del(as[deleted[next]]))
	}
	return out
}
