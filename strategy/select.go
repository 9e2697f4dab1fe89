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
	"math/bits"

	"dirpx.dev/efx/apis"
	"dirpx.dev/efx/config"
	"dirpx.dev/efx/descriptor"
	"dirpx.dev/efx/flags"
)

// Select picks the static lookup for a normalized descriptor.
// It is a pure function of (d, cfg).
//
// Flags enumerations:
//   - a single member uses Conditionals;
//   - an OR-range below ArrayLookupThreshold uses an Array holding the
//     decomposition of every value in [0, range];
//   - otherwise a Dictionary holds the decompositions of [0, threshold) plus
//     every member at or above the threshold verbatim.
//
// Other enumerations:
//   - fewer than three members use Conditionals;
//   - contiguous values use an Array based at the smallest value;
//   - values with more than MaxSparsePercent unused slots use a Dictionary;
//   - otherwise a gap-filled Array is used, indexed directly by value when the
//     largest value is below ArrayLookupThreshold. Gaps hold the decimal
//     string of the slot.
//
// ArrayLookupThreshold is clamped to config.MaxArrayLookupThreshold, and a
// gap-filled Array never holds more than MaxArrayLookupThreshold filler slots;
// past that the Dictionary is used. Table size is thus bounded by the member
// count plus a constant, whatever cfg holds.
func Select(d apis.Descriptor, cfg apis.Config) apis.Lookup {
	cfg.ArrayLookupThreshold = config.ClampArrayLookupThreshold(cfg.ArrayLookupThreshold)
	if d.Flags {
		return selectFlags(d, cfg)
	}
	return selectPlain(d, cfg)
}

func selectFlags(d apis.Descriptor, cfg apis.Config) apis.Lookup {
	if len(d.Members) == 1 {
		return apis.Conditionals{Members: d.Members}
	}

	r := flags.Range(d)
	if r < cfg.ArrayLookupThreshold {
		entries := make([]string, r+1)
		for i := range entries {
			entries[i] = flags.Decompose(d, uint64(i))
		}
		return apis.Array{Entries: entries}
	}

	hint := len(d.Members)
	if cfg.ArrayLookupThreshold <= maxSizeHint {
		hint += int(cfg.ArrayLookupThreshold)
	}
	entries := make(map[uint64]string, hint)
	for i := uint64(0); i < cfg.ArrayLookupThreshold; i++ {
		entries[i] = flags.Decompose(d, i)
	}
	for _, m := range d.Members {
		if m.Value >= cfg.ArrayLookupThreshold {
			entries[m.Value] = m.Name
		}
	}
	return apis.Dictionary{Entries: entries}
}

func selectPlain(d apis.Descriptor, cfg apis.Config) apis.Lookup {
	n := uint64(len(d.Members))
	if n < 3 {
		return apis.Conditionals{Members: d.Members}
	}

	lo, hi := descriptor.Bounds(d)
	span := hi - lo // delta-1; cannot overflow
	if span == n-1 {
		entries := make([]string, n)
		for i, m := range d.Members {
			entries[i] = m.Name
		}
		return apis.Array{Base: lo, Entries: entries}
	}

	if tooSparse(span-(n-1), n, cfg.MaxSparsePercent) || span-(n-1) > config.MaxArrayLookupThreshold {
		entries := make(map[uint64]string, n)
		for _, m := range d.Members {
			entries[m.Value] = m.Name
		}
		return apis.Dictionary{Entries: entries}
	}

	base := lo
	if hi < cfg.ArrayLookupThreshold {
		// hi < MaxArrayLookupThreshold, so the extra [0, lo) slots are bounded too.
		base = 0
	}
	entries := make([]string, hi-base+1)
	j := 0
	for i := range entries {
		v := base + uint64(i)
		if j < len(d.Members) && d.Members[j].Value == v {
			entries[i] = d.Members[j].Name
			j++
			continue
		}
		entries[i] = descriptor.Decimal(d, v)
	}
	return apis.Array{Base: base, Entries: entries}
}

// maxSizeHint caps the capacity hint handed to make for flags dictionaries.
const maxSizeHint = 1 << 16

// tooSparse reports whether gaps*100/count exceeds maxPercent, without overflow.
func tooSparse(gaps, count, maxPercent uint64) bool {
	hi, lo := bits.Mul64(gaps, 100)
	if hi != 0 {
		return true
	}
	return lo/count > maxPercent
}
