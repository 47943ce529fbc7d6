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

package config

// ColorConfig collects the ANSI escape sequences used by colorized rendering. An empty sequence
// renders the corresponding lines unstyled.
type ColorConfig struct {
	Match  string
	Delete string
	Insert string
	Reset  string
}

// DefaultColors matches the colors git uses for diffs.
var DefaultColors = ColorConfig{
	Match:  "",
	Delete: "\033[31m",
	Insert: "\033[32m",
	Reset:  "\033[0m",
}
