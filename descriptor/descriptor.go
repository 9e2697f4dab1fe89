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

// Package descriptor validates and normalizes enumeration descriptors.
//
// A normalized descriptor has its members sorted ascending by widened value
// and unique by value. When several members share a value, a non-flags
// enumeration keeps the first declared one and a flags enumeration keeps the
// last declared one, so that the last name is what appears in decompositions.
package descriptor

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"dirpx.dev/efx/apis"
)

// ErrInvalidDescriptor is returned for descriptors that cannot back a resolver.
var ErrInvalidDescriptor = errors.New("efx(descriptor): invalid descriptor")

// Normalize validates d and returns a copy with sorted, de-duplicated members.
// The input slice is never modified. Normalize is idempotent.
func Normalize(d apis.Descriptor) (apis.Descriptor, error) {
	if d.Name == "" {
		return apis.Descriptor{}, fmt.Errorf("%w: empty enum name", ErrInvalidDescriptor)
	}
	if len(d.Members) == 0 {
		return apis.Descriptor{}, fmt.Errorf("%w: %s has no members", ErrInvalidDescriptor, d.Name)
	}
	for i, m := range d.Members {
		if m.Name == "" {
			return apis.Descriptor{}, fmt.Errorf("%w: %s member #%d has an empty name", ErrInvalidDescriptor, d.Name, i)
		}
	}

	sorted := slices.Clone(d.Members)
	slices.SortStableFunc(sorted, func(a, b apis.Member) int {
		return cmp.Compare(a.Value, b.Value)
	})

	out := d
	out.Members = dedup(sorted, d.Flags)
	return out, nil
}

// dedup collapses runs of equal values. Stable sorting keeps declaration
// order inside a run, so the head is the first declared and the tail the last.
func dedup(sorted []apis.Member, keepLast bool) []apis.Member {
	out := sorted[:0]
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j].Value == sorted[i].Value {
			j++
		}
		if keepLast {
			out = append(out, sorted[j-1])
		} else {
			out = append(out, sorted[i])
		}
		i = j
	}
	return slices.Clip(out)
}

// Decimal formats a widened value the way the enumeration's underlying type
// prints it: signed enumerations print negative numbers for sign-extended values.
func Decimal(d apis.Descriptor, v uint64) string {
	if d.Signed {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(v, 10)
}

// Equal reports whether a and b describe the same enumeration.
func Equal(a, b apis.Descriptor) bool {
	return a.Name == b.Name &&
		a.Flags == b.Flags &&
		a.Wide == b.Wide &&
		a.Signed == b.Signed &&
		slices.Equal(a.Members, b.Members)
}

// Bounds returns the smallest and largest member values of a normalized descriptor.
func Bounds(d apis.Descriptor) (lo, hi uint64) {
	return d.Members[0].Value, d.Members[len(d.Members)-1].Value
}
