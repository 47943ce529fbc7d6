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

//go:build experimental

package treediff

import "znkr.io/treediff/internal/config"

// Seed mixes an additional seed into every gram hash before the hash seeds the unit vector PRNG.
//
// Two decorations with different seeds produce unrelated vectors, so changing the seed re-rolls
// the random projection. This is occasionally useful to check how sensitive a matching is to the
// projection, but the output under one seed carries no guarantees about the output under another.
//
// It's experimental because re-rolling the projection has not been useful outside of debugging
// sessions so far and the option may go away again.
func Seed(seed uint64) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Seed = seed
		return config.Seed
	}
}
