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

// Package tree provides the ordered, annotated tree that all pipeline stages
// operate on. Each stage produces a new tree with an extended annotation
// type; input trees are never modified.
package tree

// Tree is a node carrying an annotation and an ordered list of children.
type Tree[A any] struct {
	Value    A
	Children []*Tree[A]
}

// New constructs a tree node.
func New[A any](value A, children ...*Tree[A]) *Tree[A] {
	return &Tree[A]{Value: value, Children: children}
}

// Walk visits every node of t in pre-order.
func Walk[A any](t *Tree[A], visit func(*Tree[A])) {
	visit(t)
	for _, c := range t.Children {
		Walk(c, visit)
	}
}

// Map produces a new tree with the same shape as t with every annotation
// transformed by f. Children are visited before their parent so that f can
// rely on fully transformed subtrees.
func Map[A, B any](t *Tree[A], f func(*Tree[A], []*Tree[B]) B) *Tree[B] {
	var children []*Tree[B]
	if t.Children != nil {
		children = make([]*Tree[B], len(t.Children))
	}
	for i, c := range t.Children {
		children[i] = Map(c, f)
	}
	return &Tree[B]{Value: f(t, children), Children: children}
}

// Size returns the number of nodes in t.
func Size[A any](t *Tree[A]) int {
	n := 1
	for _, c := range t.Children {
		n += Size(c)
	}
	return n
}
