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

// Member is a single declared enumeration constant.
// Value is always widened to uint64; signed values are sign-extended.
type Member struct {
	// Name is the declared identifier.
	Name string
	// Value is the widened constant value.
	Value uint64
}

// Descriptor is the normalized input the resolver is built from.
//
// Members are given in declaration order. Normalization (see package
// descriptor) sorts them ascending by Value and removes duplicate values.
type Descriptor struct {
	// Name is the stable key of the enumeration type, e.g. "example.com/pkg.Color".
	Name string
	// Members lists the declared constants.
	Members []Member
	// Flags marks a bit-flags enumeration.
	Flags bool
	// Wide is true when the underlying representation needs 64 bits.
	Wide bool
	// Signed is true when the underlying integer type is signed.
	Signed bool
}
