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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// treediff.Option.
package config

// Config collects all configurable parameters for the decoration and matching functions in this
// module.
type Config struct {
	// P is the number of ancestor labels in a gram's stem.
	P int

	// Q is the number of sibling labels in a gram's base.
	Q int

	// Dim is the length of feature vectors.
	Dim int

	// Seed is mixed into every gram hash before the hash seeds the unit vector PRNG. Only exposed
	// via an experimental option, the zero value is always valid.
	Seed uint64
}

// Default is the default configuration. P, Q and Dim default to values the RWS-Diff paper reports
// as effective for source trees.
var Default = Config{
	P:    2,
	Q:    3,
	Dim:  15,
	Seed: 0,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by an operation.
type Flag int

const (
	P Flag = 1 << iota
	Q
	Dim
	Seed
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case P:
		return "treediff.P"
	case Q:
		return "treediff.Q"
	case Dim:
		return "treediff.Dimension"
	case Seed:
		return "treediff.Seed"
	default:
		panic("never reached")
	}
}
