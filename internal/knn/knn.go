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

// Package knn provides the static nearest-neighbor index used by the matching driver. It is a
// thin adapter around github.com/kyroy/kdtree that identifies points by their position in the
// input slice.
package knn

import (
	"math"

	"github.com/kyroy/kdtree"
)

type point struct {
	id     int
	coords []float64
}

func (p *point) Dimensions() int { return len(p.coords) }

func (p *point) Dimension(i int) float64 { return p.coords[i] }

// Index is a static k-d tree over a set of equal-dimension vectors. Queries return the position
// of the Euclidean nearest neighbor in the slice the index was built from.
type Index struct {
	tree *kdtree.KDTree
	n    int
}

// New builds an index over vectors. The vectors are indexed by position; they must all have the
// same length and are not copied.
func New(vectors [][]float64) *Index {
	if len(vectors) == 0 {
		return &Index{}
	}
	points := make([]kdtree.Point, len(vectors))
	for i, v := range vectors {
		points[i] = &point{id: i, coords: v}
	}
	return &Index{tree: kdtree.New(points), n: len(vectors)}
}

// Nearest returns the position of the vector closest to query and true, or 0 and false if the
// index is empty. NaN components of the query are clamped to zero so that a degenerate query
// still produces a deterministic answer.
func (ix *Index) Nearest(query []float64) (int, bool) {
	if ix.n == 0 {
		return 0, false
	}
	q := query
	for _, x := range q {
		if math.IsNaN(x) {
			q = clamp(query)
			break
		}
	}
	nn := ix.tree.KNN(&point{id: -1, coords: q}, 1)
	if len(nn) == 0 {
		return 0, false
	}
	return nn[0].(*point).id, true
}

func clamp(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		if !math.IsNaN(x) {
			out[i] = x
		}
	}
	return out
}
