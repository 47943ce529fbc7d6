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

// Package treediff aligns two ordered labeled trees, the old and new versions of a parsed source
// file, into a tree-structured edit script using random-walk similarity matching.
//
// The main functions are [FeatureVectorDecorator], which summarizes every subtree of a tree as a
// fixed-dimension feature vector, and [RWS], which matches the subtrees of two decorated lists by
// nearest-neighbor search over those vectors and emits one diff per subtree. A caller-supplied
// [Comparator] decides whether a proposed pair really aligns and produces the sub-diff of aligned
// pairs; [EqualityComparator] is a default that descends recursively.
//
// The matching is a heuristic: it is greedy and order-constrained, and trades optimality for
// speed. Its output is always a valid edit script: every input subtree appears exactly once and
// matched pairs never cross. Complexity is O(n log n) in the total number of subtrees.
//
// Note: To render an edit script as text, please see [znkr.io/treediff/render].
//
// [znkr.io/treediff/render]: https://pkg.go.dev/znkr.io/treediff/render
package treediff
