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

package apis

// Registry maps enumeration names to their resolvers.
// Keep it minimal so implementations can be lock-free or sync.Map-backed.
type Registry interface {
	// Register stores res under res.Descriptor().Name.
	// Re-registering an equivalent descriptor is a no-op.
	Register(res Resolver) error
	// Lookup returns the resolver registered for name if present.
	Lookup(name string) (res Resolver, ok bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// Entry is a single (name, resolver) association in a Registry snapshot.
type Entry struct {
	// Name is the enumeration name.
	Name string
	// Resolver is the associated resolver.
	Resolver Resolver
}
