/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package strategy

import (
	"dirpx.dev/efx/apis"
)

// NewStaticStrategy creates an apis.Strategy over a prebuilt lookup table.
func NewStaticStrategy(lookup apis.Lookup) apis.Strategy {
	return staticStrategy{lookup: lookup}
}

// staticStrategy is the zero-allocation fast path: it only returns names
// that were stored when the table was built.
type staticStrategy struct {
	lookup apis.Lookup
}

// Ensure staticStrategy implements apis.Strategy.
var _ apis.Strategy = staticStrategy{}

// TryResolve probes the table.
func (s staticStrategy) TryResolve(value uint64) (string, bool) {
	switch l := s.lookup.(type) {
	case apis.Conditionals:
		for _, m := range l.Members {
			if m.Value == value {
				return m.Name, true
			}
		}
	case apis.Array:
		if value >= l.Base && value-l.Base < uint64(len(l.Entries)) {
			return l.Entries[value-l.Base], true
		}
	case apis.Dictionary:
		name, ok := l.Entries[value]
		return name, ok
	}
	return "", false
}
