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
	"znkr.io/treediff/internal/feature"
	"znkr.io/treediff/internal/gram"
	"znkr.io/treediff/internal/tree"
)

// Tree is an ordered tree node carrying an annotation of type A. Trees are treated as immutable
// inputs by every function in this package; each pipeline stage returns a new tree.
type Tree[A any] = tree.Tree[A]

// New constructs a tree node.
func New[A any](value A, children ...*Tree[A]) *Tree[A] {
	return tree.New(value, children...)
}

// Label is an optional tree label of type L. The zero value is absent.
type Label[L comparable] = gram.Label[L]

// LabelOf returns a present label.
func LabelOf[L comparable](v L) Label[L] {
	return gram.Of(v)
}

// Gram is the pq-gram of a tree node: the labels of its p nearest ancestors (Stem, nearest first)
// and a window of q sibling labels starting at the node itself (Base). Both sides are padded with
// absent labels to their exact size.
type Gram[L comparable] = gram.Gram[L]

// NewGram constructs a gram from a stem and a base.
func NewGram[L comparable](stem, base []Label[L]) Gram[L] {
	return gram.New(stem, base)
}

// LabelFunc computes the label of a tree node. It must be pure and may inspect the node's
// annotation and the shape of its children, but not the children's annotations.
type LabelFunc[A any, L comparable] func(*Tree[A]) L

// Decorated is the annotation type produced by [FeatureVectorDecorator]: the feature vector of
// the subtree rooted at the node, in front of the node's original annotation.
type Decorated[A any] = feature.Decorated[A]
