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

import "znkr.io/treediff/internal/config"

// Option configures the behavior of the decoration and matching functions.
type Option = config.Option

// P sets the number of ancestor labels in every gram's stem. The default is 2. Zero is valid and
// produces grams without stems.
func P(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.P = max(0, n)
		return config.P
	}
}

// Q sets the number of sibling labels in every gram's base. The default is 3. Zero is valid and
// produces grams without bases.
func Q(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Q = max(0, n)
		return config.Q
	}
}

// Dimension sets the length of feature vectors. The default is 15. Larger dimensions reduce the
// chance that unrelated subtrees end up with nearby vectors at a linear cost in time and space.
func Dimension(d int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Dim = max(1, d)
		return config.Dim
	}
}
