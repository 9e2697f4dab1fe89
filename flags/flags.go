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

// Package flags turns bit-flags values into their canonical textual form.
//
// The output follows the common platform contract for flags enumerations:
// zero prints the zero-valued member (or "0"), an exact member match prints
// that member, any other value is decomposed greedily from the highest member
// down and printed in ascending value order joined by ", ". Values whose bits
// cannot be fully covered by members print as a decimal number.
package flags

import (
	"cmp"
	"slices"
	"strings"

	"dirpx.dev/efx/apis"
	"dirpx.dev/efx/descriptor"
)

// Separator joins decomposed member names.
const Separator = ", "

// Decompose returns the canonical name of v for the normalized descriptor d.
func Decompose(d apis.Descriptor, v uint64) string {
	ms := d.Members
	if len(ms) == 0 {
		return descriptor.Decimal(d, v)
	}

	if v == 0 {
		if ms[0].Value == 0 {
			return ms[0].Name
		}
		return "0"
	}

	if i, ok := slices.BinarySearchFunc(ms, v, func(m apis.Member, t uint64) int {
		return cmp.Compare(m.Value, t)
	}); ok {
		return ms[i].Name
	}

	remaining := v
	var picked [8]int
	idx := picked[:0]
	size := 0
	for i := len(ms) - 1; i >= 0; i-- {
		mv := ms[i].Value
		if mv == 0 {
			// Sorted ascending: only the first member can be zero.
			break
		}
		if remaining&mv == mv {
			remaining &^= mv
			idx = append(idx, i)
			size += len(ms[i].Name)
		}
	}
	if remaining != 0 {
		return descriptor.Decimal(d, v)
	}

	var b strings.Builder
	b.Grow(size + (len(idx)-1)*len(Separator))
	for k := len(idx) - 1; k >= 0; k-- {
		b.WriteString(ms[idx[k]].Name)
		if k > 0 {
			b.WriteString(Separator)
		}
	}
	return b.String()
}

// Range returns the OR of all member values, the largest value a
// decomposition can cover.
func Range(d apis.Descriptor) uint64 {
	var r uint64
	for _, m := range d.Members {
		r |= m.Value
	}
	return r
}
