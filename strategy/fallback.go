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
	"dirpx.dev/efx/descriptor"
	"dirpx.dev/efx/flags"
)

// NewFallbackStrategy creates the terminal apis.Strategy for d.
// It computes the name from the full member set and offers it to c.
func NewFallbackStrategy(d apis.Descriptor, c apis.Cache) apis.Strategy {
	return &fallbackStrategy{d: d, c: c}
}

// fallbackStrategy always handles the value: flags enumerations are
// decomposed, others print as a decimal number.
type fallbackStrategy struct {
	d apis.Descriptor
	c apis.Cache
}

// Ensure fallbackStrategy implements apis.Strategy.
var _ apis.Strategy = (*fallbackStrategy)(nil)

// TryResolve computes and caches the name for value.
func (s *fallbackStrategy) TryResolve(value uint64) (string, bool) {
	name := Fallback(s.d, value)
	if s.c != nil {
		s.c.Offer(s.d.Name, value, name)
	}
	return name, true
}

// Fallback returns the name the platform would print for a value that has
// no precomputed entry.
func Fallback(d apis.Descriptor, value uint64) string {
	if d.Flags {
		return flags.Decompose(d, value)
	}
	for _, m := range d.Members {
		if m.Value == value {
			return m.Name
		}
	}
	return descriptor.Decimal(d, value)
}
