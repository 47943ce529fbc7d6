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

// yamldiff is a demo tool that diffs two YAML files structurally.
//
// It parses both files into YAML node trees, runs the feature vector decoration pipeline and the
// random-walk similarity matching over them, and prints the resulting edit script with one node
// per line. It exists to exercise the whole module end to end; the output format is not stable.
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"znkr.io/treediff"
	"znkr.io/treediff/render"
)

var useColor = flag.Bool("color", false, "colorize the output")

func main() {
	flag.Parse()
	if err := run(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected 2 args, got %d: usage: yamldiff [-color] <old> <new>", len(args))
	}

	old, err := load(args[0])
	if err != nil {
		return err
	}
	new, err := load(args[1])
	if err != nil {
		return err
	}

	label := func(t *treediff.Tree[*yaml.Node]) string {
		n := t.Value
		return fmt.Sprintf("%d\x1f%s\x1f%s", n.Kind, n.Tag, n.Value)
	}
	as := []*treediff.Tree[treediff.Decorated[*yaml.Node]]{treediff.FeatureVectorDecorator(old, label)}
	bs := []*treediff.Tree[treediff.Decorated[*yaml.Node]]{treediff.FeatureVectorDecorator(new, label)}

	cmp := treediff.EqualityComparator(func(x, y treediff.Decorated[*yaml.Node]) bool {
		a, b := x.Ann, y.Ann
		return a.Kind == b.Kind && a.Tag == b.Tag && a.Value == b.Value
	})
	diffs := treediff.RWS(cmp, as, bs)

	format := func(d treediff.Decorated[*yaml.Node]) string {
		n := d.Ann
		if n.Kind == yaml.ScalarNode {
			return n.Value
		}
		return n.Tag
	}
	if *useColor {
		fmt.Print(render.Colorized(diffs, format))
	} else {
		fmt.Print(render.Unified(diffs, format))
	}
	return nil
}

// load parses a YAML file into a tree over its node structure. The returned tree is rooted at
// the document node.
func load(path string) (*treediff.Tree[*yaml.Node], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %v", path, err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %v", path, err)
	}
	return toTree(&doc), nil
}

func toTree(n *yaml.Node) *treediff.Tree[*yaml.Node] {
	children := make([]*treediff.Tree[*yaml.Node], len(n.Content))
	for i, c := range n.Content {
		children[i] = toTree(c)
	}
	return treediff.New(n, children...)
}
