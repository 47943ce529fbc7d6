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

package gram

import "znkr.io/treediff/internal/tree"

// Labeled is the annotation of a tree that went through Labelize.
type Labeled[L comparable, A any] struct {
	Label L
	Ann   A
}

// Annotated is the annotation of a tree that went through Decorate. The gram replaces the raw
// label.
type Annotated[L comparable, A any] struct {
	Gram Gram[L]
	Ann  A
}

// Labelize decorates every node of t with the label computed by label. The label function must be
// pure; it may inspect the node's annotation and the shape of its children, but not the children's
// annotations. Children are labeled before their parent.
func Labelize[A any, L comparable](t *tree.Tree[A], label func(*tree.Tree[A]) L) *tree.Tree[Labeled[L, A]] {
	return tree.Map(t, func(n *tree.Tree[A], _ []*tree.Tree[Labeled[L, A]]) Labeled[L, A] {
		return Labeled[L, A]{Label: label(n), Ann: n.Value}
	})
}

// Decorate replaces every node's label with its pq-gram.
//
// The decoration runs in two passes. The first pass threads the list of ancestor labels from the
// root down and leaves each node with a stem of its p nearest ancestors and a provisional base
// holding only the node's own label. The second pass completes the bases: for each node, the
// provisional single-label bases of its children are concatenated in child order, and each child
// receives a base of q labels starting at its own position in that list. The root has no siblings,
// so its base is its own provisional base padded to q.
func Decorate[A any, L comparable](t *tree.Tree[Labeled[L, A]], p, q int) *tree.Tree[Annotated[L, A]] {
	out := stems(t, nil, p)
	out.Value.Gram.Base = padToSize(q, out.Value.Gram.Base)
	bases(out, q)
	return out
}

// stems builds the output tree top-down. ancestors holds the labels of the nodes above t, most
// recent first.
func stems[A any, L comparable](t *tree.Tree[Labeled[L, A]], ancestors []Label[L], p int) *tree.Tree[Annotated[L, A]] {
	label := Of(t.Value.Label)
	below := append([]Label[L]{label}, ancestors...)
	children := make([]*tree.Tree[Annotated[L, A]], len(t.Children))
	for i, c := range t.Children {
		children[i] = stems(c, below, p)
	}
	return &tree.Tree[Annotated[L, A]]{
		Value: Annotated[L, A]{
			Gram: Gram[L]{
				Stem: padToSize(p, ancestors),
				Base: []Label[L]{label},
			},
			Ann: t.Value.Ann,
		},
		Children: children,
	}
}

// bases completes the q-gram bases of t's descendants. When bases visits a node, the node's own
// base is already final and every child still carries its provisional single-label base.
func bases[A any, L comparable](t *tree.Tree[Annotated[L, A]], q int) {
	siblings := make([]Label[L], 0, len(t.Children))
	for _, c := range t.Children {
		siblings = append(siblings, c.Value.Gram.Base[0])
	}
	remaining := siblings
	for _, c := range t.Children {
		c.Value.Gram.Base = padToSize(q, remaining)
		remaining = remaining[1:]
	}
	for _, c := range t.Children {
		bases(c, q)
	}
}

// Bag collects the grams of every node in t in pre-order.
func Bag[A any, L comparable](t *tree.Tree[Annotated[L, A]]) []Gram[L] {
	grams := make([]Gram[L], 0, tree.Size(t))
	tree.Walk(t, func(n *tree.Tree[Annotated[L, A]]) {
		grams = append(grams, n.Value.Gram)
	})
	return grams
}
