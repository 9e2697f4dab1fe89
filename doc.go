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

// Package efx provides a global, process-wide enumeration name resolver.
//
// efx turns a value of an enumeration type into its canonical textual
// representation, following the usual platform rules for enumerations:
// declared values print their name, undeclared values print as decimal
// numbers, and values of bit-flags enumerations print as the ", "-joined list
// of the members that make them up (or as a number when no exact cover
// exists).
//
// # Design
//
// Each enumeration is described once by an apis.Descriptor (its name, its
// members in declaration order, and whether it is a flags enumeration). From
// the descriptor a Resolver is built:
//
//  1. The descriptor is normalized: members are sorted by value and values
//     declared twice are collapsed (first name wins, last name for flags).
//
//  2. A strategy selector picks the static table: plain comparisons for tiny
//     enumerations, a direct-indexed array for dense value ranges, or a
//     dictionary for sparse ones. Flags tables are filled with decompositions.
//
//  3. At call time the resolver tries the static table, then a shared
//     bounded cache, then computes the name and offers it to the cache.
//
// Resolution is total: it never fails and never blocks.
//
// The core of the package is a read-mostly global snapshot (state) holding:
//
//   - Config: thresholds for strategy selection and the cache capacity.
//   - Cache: the shared fallback cache (see package cache).
//   - Registry: enumeration name -> Resolver.
//   - Builder: the factory that builds caches, resolvers and registries.
//
// All of these live inside a single immutable struct published through an
// atomic pointer. Readers load the pointer and never lock:
//
//	name := efx.Of(color)
//	name := efx.Resolve("example.com/pkg.Color", 2)
//
// Writers (SetConfig, SetCache, SetBuilder, SetRegistry, Register, ...) take
// a short build mutex, assemble a new snapshot and swap it in.
//
// # Declaring enumerations
//
//	type Perm uint8
//
//	const (
//		Read Perm = 1 << iota
//		Write
//		Exec
//	)
//
//	func init() {
//		_ = efx.Define[Perm](true,
//			efx.Member("Read", Read),
//			efx.Member("Write", Write),
//			efx.Member("Exec", Exec),
//		)
//	}
//
//	func (p Perm) String() string { return efx.Of(p) } // Perm(5) -> "Read, Exec"
//
// Descriptors can also be extracted from source code with package source,
// which is what the efx command does.
//
// # Pinning
//
// SetRegistry pins the given registry: configuration, cache or builder
// changes no longer rebuild it until UnpinRegistry is called.
package efx
