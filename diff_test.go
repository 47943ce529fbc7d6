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
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// node builds a test tree whose annotations are their own labels.
func node(label string, children ...*Tree[string]) *Tree[string] {
	return New(label, children...)
}

func selfLabel(t *Tree[string]) string { return t.Value }

// decorate decorates a list of test trees with one option set.
func decorate(ts []*Tree[string], opts ...Option) []*Tree[Decorated[string]] {
	out := make([]*Tree[Decorated[string]], len(ts))
	for i, t := range ts {
		out[i] = FeatureVectorDecorator(t, selfLabel, opts...)
	}
	return out
}

// labelEq aligns two subtrees iff their labels are equal.
var labelEq = EqualityComparator(func(x, y Decorated[string]) bool { return x.Ann == y.Ann })

// summarize flattens a diff list into op/label strings for compact comparisons, recursing into
// matched pairs.
func summarize(diffs []Diff[Decorated[string]]) []string {
	var out []string
	for _, d := range diffs {
		switch d.Op {
		case Match:
			out = append(out, fmt.Sprintf("match %s", d.X.Value.Ann))
			out = append(out, summarize(d.Children)...)
		case Delete:
			out = append(out, fmt.Sprintf("delete %s", d.X.Value.Ann))
		case Insert:
			out = append(out, fmt.Sprintf("insert %s", d.Y.Value.Ann))
		default:
			panic("never reached")
		}
	}
	return out
}

func TestPQGrams(t *testing.T) {
	in := node("a", node("b"), node("c"))
	got := PQGrams(in, selfLabel, P(2), Q(2))
	want := []Gram[string]{
		NewGram([]Label[string]{{}, {}}, []Label[string]{LabelOf("a"), {}}),
		NewGram([]Label[string]{LabelOf("a"), {}}, []Label[string]{LabelOf("b"), LabelOf("c")}),
		NewGram([]Label[string]{LabelOf("a"), {}}, []Label[string]{LabelOf("c"), {}}),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PQGrams result is different (-want, +got):\n%s", diff)
	}
}

func TestFeatureVector(t *testing.T) {
	in := node("a", node("b"), node("c"))
	grams := PQGrams(in, selfLabel)
	got := FeatureVector(grams, Dimension(10))
	if len(got) != 10 {
		t.Fatalf("len(FeatureVector(...)) = %d, want 10", len(got))
	}
	// The root vector of a decorated tree summarizes the same bag.
	root := FeatureVectorDecorator(in, selfLabel, Dimension(10))
	if diff := cmp.Diff(root.Value.Vector, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("FeatureVector and decorated root vector disagree (-decorated, +bag):\n%s", diff)
	}
}

func TestFeatureVectorDecorator(t *testing.T) {
	in := node("a", node("b", node("c")), node("d"))
	got := FeatureVectorDecorator(in, selfLabel, P(2), Q(2), Dimension(6))

	var walk func(orig *Tree[string], dec *Tree[Decorated[string]])
	walk = func(orig *Tree[string], dec *Tree[Decorated[string]]) {
		if dec.Value.Ann != orig.Value {
			t.Fatalf("annotation %q lost, got %q", orig.Value, dec.Value.Ann)
		}
		if len(dec.Value.Vector) != 6 {
			t.Fatalf("node %q vector has length %d, want 6", orig.Value, len(dec.Value.Vector))
		}
		if len(dec.Children) != len(orig.Children) {
			t.Fatalf("node %q has %d children, want %d", orig.Value, len(dec.Children), len(orig.Children))
		}
		for i := range orig.Children {
			walk(orig.Children[i], dec.Children[i])
		}
	}
	walk(in, got)

	again := FeatureVectorDecorator(node("a", node("b", node("c")), node("d")), selfLabel, P(2), Q(2), Dimension(6))
	if diff := cmp.Diff(got, again); diff != "" {
		t.Errorf("decoration is not deterministic (-first, +second):\n%s", diff)
	}
}

func TestRWS(t *testing.T) {
	// Scenario outcomes are pinned where the nearest-neighbor proposal is forced by an exact
	// vector match; where proposals are ambiguous, properties are checked instead (see
	// TestRWSSwappedPair).
	opts := []Option{P(2), Q(2), Dimension(4)}
	tests := []struct {
		name   string
		as, bs []*Tree[string]
		want   []string
	}{
		{
			name: "both-empty",
			want: nil,
		},
		{
			name: "as-empty",
			bs:   []*Tree[string]{node("x"), node("y"), node("z")},
			want: []string{"insert x", "insert y", "insert z"},
		},
		{
			name: "bs-empty",
			as:   []*Tree[string]{node("x"), node("y"), node("z")},
			want: []string{"delete x", "delete y", "delete z"},
		},
		{
			name: "single-match",
			as:   []*Tree[string]{node("a")},
			bs:   []*Tree[string]{node("a")},
			want: []string{"match a"},
		},
		{
			name: "pair-match",
			as:   []*Tree[string]{node("a"), node("b")},
			bs:   []*Tree[string]{node("a"), node("b")},
			want: []string{"match a", "match b"},
		},
		{
			name: "middle-deletion",
			as:   []*Tree[string]{node("a"), node("b"), node("c")},
			bs:   []*Tree[string]{node("a"), node("c")},
			want: []string{"match a", "delete b", "match c"},
		},
		{
			// The comparator rejects the only proposal: the new subtree is inserted where the
			// walk produced it and the deletion is appended behind it.
			name: "comparator-rejects",
			as:   []*Tree[string]{node("a")},
			bs:   []*Tree[string]{node("a2")},
			want: []string{"insert a2", "delete a"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarize(RWS(labelEq, decorate(tt.as, opts...), decorate(tt.bs, opts...)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("RWS result is different (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestRWSSwappedPair(t *testing.T) {
	// as = [a, b], bs = [b, a]: which element survives depends on which proposal commits first,
	// but the output always conserves both inputs with exactly one match and never crosses.
	opts := []Option{P(2), Q(2), Dimension(4)}
	as := []*Tree[string]{node("a"), node("b")}
	bs := []*Tree[string]{node("b"), node("a")}
	got := RWS(labelEq, decorate(as, opts...), decorate(bs, opts...))

	matches, inserts, deletes := tally(t, got)
	if matches != 1 || inserts != 1 || deletes != 1 {
		t.Errorf("got %d matches, %d inserts, %d deletes, want 1 of each:\n%v", matches, inserts, deletes, summarize(got))
	}
}

// tally counts top-level ops and fails the test on an op the matching pass must not emit.
func tally(t *testing.T, diffs []Diff[Decorated[string]]) (matches, inserts, deletes int) {
	t.Helper()
	for _, d := range diffs {
		switch d.Op {
		case Match:
			matches++
		case Insert:
			inserts++
		case Delete:
			deletes++
		default:
			t.Fatalf("unexpected op %v", d.Op)
		}
	}
	return matches, inserts, deletes
}

// randomTree builds a tree with n nodes and random shape over a small label alphabet.
func randomTree(rng *rand.Rand, n int) *Tree[string] {
	root := node(fmt.Sprintf("l%d", rng.IntN(6)))
	nodes := []*Tree[string]{root}
	for i := 1; i < n; i++ {
		parent := nodes[rng.IntN(len(nodes))]
		child := node(fmt.Sprintf("l%d", rng.IntN(6)))
		parent.Children = append(parent.Children, child)
		nodes = append(nodes, child)
	}
	return root
}

func TestRWSRandom(t *testing.T) {
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(t.Name()))))
	for range 50 {
		n, m := rng.IntN(12), rng.IntN(12)
		as := make([]*Tree[string], n)
		for i := range as {
			as[i] = randomTree(rng, 1+rng.IntN(15))
		}
		bs := make([]*Tree[string], m)
		for i := range bs {
			bs[i] = randomTree(rng, 1+rng.IntN(15))
		}

		got := RWS(labelEq, decorate(as), decorate(bs))

		matches, inserts, deletes := tally(t, got)
		if deletes != n-matches {
			t.Fatalf("conservation violated: %d deletes, want %d", deletes, n-matches)
		}
		if inserts != m-matches {
			t.Fatalf("conservation violated: %d inserts, want %d", inserts, m-matches)
		}
	}
}

func TestRWSIdentityLists(t *testing.T) {
	// Matching a decorated list against itself produces only matches.
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(t.Name()))))
	for range 20 {
		n := 1 + rng.IntN(10)
		ts := make([]*Tree[string], n)
		for i := range ts {
			// Distinct root labels keep the nearest-neighbor proposals unambiguous.
			ts[i] = node(fmt.Sprintf("root%d", i), randomTree(rng, 1+rng.IntN(10)))
		}
		ds := decorate(ts)
		got := RWS(labelEq, ds, ds)
		if len(got) != n {
			t.Fatalf("got %d diffs, want %d", len(got), n)
		}
		for _, d := range got {
			if d.Op != Match {
				t.Fatalf("self-matching produced %v:\n%v", d.Op, summarize(got))
			}
		}
	}
}

func TestRWSDegenerateParameters(t *testing.T) {
	// p = 0 and q = 0 make all grams equal; the matching is unhelpful but must stay well-formed.
	as := []*Tree[string]{node("a"), node("b")}
	bs := []*Tree[string]{node("b"), node("c")}
	got := RWS(labelEq, decorate(as, P(0), Q(0)), decorate(bs, P(0), Q(0)))
	matches, inserts, deletes := tally(t, got)
	if deletes != 2-matches || inserts != 2-matches {
		t.Errorf("conservation violated: %d matches, %d inserts, %d deletes", matches, inserts, deletes)
	}
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{Match, "Match"},
		{Insert, "Insert"},
		{Delete, "Delete"},
		{Replace, "Replace"},
		{Op(42), "Op(42)"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", int(tt.op), got, tt.want)
		}
	}
}

func BenchmarkFeatureVectorDecorator(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		name := fmt.Sprintf("N=%d", n)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(name))))
			t := randomTree(rng, n)
			for b.Loop() {
				_ = FeatureVectorDecorator(t, selfLabel)
			}
		})
	}
}

func BenchmarkRWS(b *testing.B) {
	params := []struct {
		N, M int // number of subtrees on each side
	}{
		{10, 10},
		{100, 100},
		{100, 1000},
		{1000, 1000},
	}
	for _, p := range params {
		name := fmt.Sprintf("N=%d_M=%d", p.N, p.M)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(name))))
			as := make([]*Tree[string], p.N)
			for i := range as {
				as[i] = randomTree(rng, 1+rng.IntN(10))
			}
			bs := make([]*Tree[string], p.M)
			for i := range bs {
				bs[i] = randomTree(rng, 1+rng.IntN(10))
			}
			das, dbs := decorate(as), decorate(bs)
			for b.Loop() {
				_ = RWS(labelEq, das, dbs)
			}
		})
	}
}
