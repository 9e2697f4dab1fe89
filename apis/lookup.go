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

// Lookup is the static table chosen for an enumeration at build time.
// It is a closed set: Conditionals, Array or Dictionary.
// Lookups are immutable once built and may be shared across goroutines.
type Lookup interface {
	// Kind reports which of the three shapes this lookup is.
	Kind() Kind
	// Len reports the number of stored names.
	Len() int

	lookup()
}

// Conditionals resolves by a linear equality test over the declared members.
type Conditionals struct {
	Members []Member
}

// Array resolves values in [Base, Base+len(Entries)) by direct index.
type Array struct {
	Base    uint64
	Entries []string
}

// Dictionary resolves values by key lookup.
type Dictionary struct {
	Entries map[uint64]string
}

var (
	_ Lookup = Conditionals{}
	_ Lookup = Array{}
	_ Lookup = Dictionary{}
)

func (Conditionals) Kind() Kind { return KindConditionals }
func (Array) Kind() Kind        { return KindArray }
func (Dictionary) Kind() Kind   { return KindDictionary }

func (l Conditionals) Len() int { return len(l.Members) }
func (l Array) Len() int        { return len(l.Entries) }
func (l Dictionary) Len() int   { return len(l.Entries) }

func (Conditionals) lookup() {}
func (Array) lookup()        {}
func (Dictionary) lookup()   {}
