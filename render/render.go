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

// Package render provides functions to render tree-structured edit scripts as text.
package render

import (
	"strings"

	"znkr.io/treediff"
	"znkr.io/treediff/internal/config"
	"znkr.io/treediff/render/color"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

// Unified renders a diff sequence line by line, one node per line. Matched nodes are prefixed
// with a space, deleted nodes with "-" and inserted nodes with "+"; children are indented below
// their parent. A replaced pair renders as a deletion directly followed by an insertion.
//
// format turns a node annotation into the text of its line. It must not return strings
// containing newlines.
func Unified[A any](diffs []treediff.Diff[A], format func(A) string) string {
	var sb strings.Builder
	render(&sb, diffs, format, 0, config.ColorConfig{})
	return sb.String()
}

// Colorized renders a diff sequence like [Unified] with ANSI escape sequences around every line.
// The default colors matches in the terminal's default color, deletions in red, and insertions
// in green; see [znkr.io/treediff/render/color] to customize.
func Colorized[A any](diffs []treediff.Diff[A], format func(A) string, opts ...color.Option) string {
	cc := config.DefaultColors
	for _, opt := range opts {
		opt(&cc)
	}
	var sb strings.Builder
	render(&sb, diffs, format, 0, cc)
	return sb.String()
}

func render[A any](sb *strings.Builder, diffs []treediff.Diff[A], format func(A) string, depth int, cc config.ColorConfig) {
	for _, d := range diffs {
		switch d.Op {
		case treediff.Match:
			line(sb, prefixMatch, cc.Match, cc.Reset, depth, format(d.X.Value))
			render(sb, d.Children, format, depth+1, cc)
		case treediff.Delete:
			subtree(sb, prefixDelete, cc.Delete, cc.Reset, depth, d.X, format)
		case treediff.Insert:
			subtree(sb, prefixInsert, cc.Insert, cc.Reset, depth, d.Y, format)
		case treediff.Replace:
			line(sb, prefixDelete, cc.Delete, cc.Reset, depth, format(d.X.Value))
			line(sb, prefixInsert, cc.Insert, cc.Reset, depth, format(d.Y.Value))
			render(sb, d.Children, format, depth+1, cc)
		default:
			panic("never reached")
		}
	}
}

// subtree renders every node below t with the same prefix, a whole inserted or deleted subtree.
func subtree[A any](sb *strings.Builder, prefix, color, reset string, depth int, t *treediff.Tree[A], format func(A) string) {
	line(sb, prefix, color, reset, depth, format(t.Value))
	for _, c := range t.Children {
		subtree(sb, prefix, color, reset, depth+1, c, format)
	}
}

func line(sb *strings.Builder, prefix, color, reset string, depth int, text string) {
	if color == "" {
		reset = ""
	}
	sb.WriteString(color)
	sb.WriteString(prefix)
	for range depth {
		sb.WriteString("  ")
	}
	sb.WriteString(text)
	sb.WriteString(reset)
	sb.WriteByte('\n')
}
