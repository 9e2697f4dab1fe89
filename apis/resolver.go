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

// Resolver maps values of one enumeration type to their canonical names.
type Resolver interface {
	// Resolve returns the canonical name of value. It is total: undeclared
	// values resolve to a flags decomposition or a decimal string.
	Resolve(value uint64) string

	// Descriptor returns the normalized descriptor the resolver was built from.
	Descriptor() Descriptor

	// Lookup returns the static table selected for the enumeration.
	Lookup() Lookup
}
